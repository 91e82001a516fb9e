package domain

import "time"

// ReservationStatus статус бронирования кабины
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "PENDING"
	StatusConfirmed  ReservationStatus = "CONFIRMED"
	StatusCheckedIn  ReservationStatus = "CHECKED_IN"
	StatusInProgress ReservationStatus = "IN_PROGRESS"
	StatusCompleted  ReservationStatus = "COMPLETED"
	StatusCancelled  ReservationStatus = "CANCELLED"
	StatusNoShow     ReservationStatus = "NO_SHOW"
)

// Reservation бронирование кабины на интервал [CheckIn, CheckOut)
type Reservation struct {
	ID      int64
	CabinID int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	CheckIn         time.Time
	CheckOut        time.Time
	Status          ReservationStatus
	TotalPriceCents int64
	Notes           *string

	CancellationReason *string
	CheckedInAt        *time.Time
	CheckedOutAt       *time.Time
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Payment заполняется только при чтении с деталями
	Payment *Payment
}

// IsActive возвращает true, если бронирование занимает кабину
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// IsTerminal возвращает true, если бронирование в конечном статусе
func (r *Reservation) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// Overlaps проверяет пересечение открытых интервалов
// Бронирования, граничащие по времени (конец одного = начало другого), не пересекаются
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return start.Before(r.CheckOut) && end.After(r.CheckIn)
}

// Duration длительность бронирования
func (r *Reservation) Duration() time.Duration {
	return r.CheckOut.Sub(r.CheckIn)
}

func (s ReservationStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// IsValid проверяет, что статус известен
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ReservationFilter фильтр для списка бронирований
type ReservationFilter struct {
	CabinID    *int64             // Фильтр по кабине (nil - все кабины)
	From       *time.Time         // Бронирования, заканчивающиеся после From
	To         *time.Time         // Бронирования, начинающиеся до To
	Status     *ReservationStatus // Фильтр по статусу
	OnlyActive bool               // Только активные (занимающие кабину)
	Limit      uint64
	Offset     uint64
}
