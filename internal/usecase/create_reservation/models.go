package create_reservation

import (
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

// Request модель запроса на бронирование кабины
type Request struct {
	CabinID       int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CheckIn       time.Time
	CheckOut      time.Time
	Notes         *string
}

// Response созданное бронирование в статусе PENDING
type Response = domain.Reservation
