package process_webhook

import "errors"

var (
	// ErrInvalidSignature возвращается, когда подпись уведомления не сошлась
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidEvent возвращается для неразбираемого или неизвестного события
	ErrInvalidEvent = errors.New("invalid webhook event")

	// ErrPaymentNotFound возвращается, когда платеж с такой транзакцией неизвестен
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
