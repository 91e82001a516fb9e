package domain

import "time"

// Рабочее окно по умолчанию: 14 часовых слотов с 08:00 до 22:00
const (
	DefaultOpeningHour  = 8
	DefaultClosingHour  = 22
	DefaultSlotDuration = time.Hour
	DefaultTimezone     = "Europe/Istanbul"
	DefaultCurrency     = "TRY"
)

// Ограничения бизнес-валидации
const (
	MinInstallments             = 1
	MaxInstallments             = 12
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCabinNameLength          = 100
	DefaultListLimit            = 50
	MaxListLimit                = 200
)

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// ActiveStatuses статусы бронирований, занимающих кабину
// Используется при расчете доступности слотов и проверке пересечений
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusInProgress,
}

// TerminalStatuses конечные статусы бронирований
var TerminalStatuses = []ReservationStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
