package get_availability

import "errors"

var (
	// ErrCabinNotFound возвращается, когда кабина не найдена или неактивна
	ErrCabinNotFound = errors.New("cabin not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
