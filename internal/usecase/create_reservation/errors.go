package create_reservation

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда интервал пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrCabinNotFound возвращается, когда кабина не найдена или неактивна
	ErrCabinNotFound = errors.New("cabin not found")

	// ErrClubClosed возвращается, когда клуб закрыт в выбранную дату
	ErrClubClosed = errors.New("club is closed on this date")

	// ErrInvalidTimeRange возвращается, когда интервал вне рабочего окна или не выровнен по слотам
	ErrInvalidTimeRange = errors.New("invalid reservation time range")

	// ErrTooLateToBook возвращается, когда начало бронирования уже в прошлом
	ErrTooLateToBook = errors.New("check-in time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
