package create_payment

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationNotPending возвращается, когда бронирование уже не ожидает оплаты
	ErrReservationNotPending = errors.New("reservation is not awaiting payment")

	// ErrPaymentExists возвращается, когда у бронирования уже есть платеж
	ErrPaymentExists = errors.New("payment for reservation already exists")

	// ErrPaymentDeclined возвращается, когда шлюз отказал в авторизации
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrGatewayUnavailable возвращается при сетевой ошибке или ошибке 5xx шлюза
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
