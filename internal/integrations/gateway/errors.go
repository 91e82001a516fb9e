package gateway

import "errors"

var (
	// ErrDeclined возвращается, когда шлюз отклонил платеж
	ErrDeclined = errors.New("gateway: payment declined")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("gateway client: invalid response")

	// ErrUnavailable возвращается, когда шлюз недоступен (сеть, таймаут, 5xx)
	ErrUnavailable = errors.New("gateway client: gateway unavailable")

	// ErrInvalidSignature возвращается при неверной подписи вебхука
	ErrInvalidSignature = errors.New("gateway: invalid webhook signature")

	// ErrInvalidEvent возвращается при некорректном теле вебхука
	ErrInvalidEvent = errors.New("gateway: invalid webhook event")
)
