package closeddates

import "errors"

var (
	// ErrClosedDateNotFound возвращается, когда закрытый день не найден
	ErrClosedDateNotFound = errors.New("closed date not found")

	// ErrAlreadyClosed возвращается, когда день уже закрыт
	ErrAlreadyClosed = errors.New("date is already closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
