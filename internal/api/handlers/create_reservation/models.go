package create_reservation

import (
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
// Телефон принимается в свободной записи ("+90 532 ...", "0532 123 45 67"), проверяется только длина
type CreateReservationRequest struct {
	CabinID       int64     `json:"cabinId" validate:"gt=0"`
	CustomerName  string    `json:"customerName" validate:"required,max=100"`
	CustomerEmail string    `json:"customerEmail" validate:"required,email"`
	CustomerPhone string    `json:"customerPhone" validate:"required,min=7,max=20"`
	CheckIn       time.Time `json:"checkIn" validate:"required"`  // RFC3339
	CheckOut      time.Time `json:"checkOut" validate:"required"` // RFC3339
	Notes         *string   `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreateReservationRequest) ToUseCaseRequest() *create_reservation.Request {
	return &create_reservation.Request{
		CabinID:       r.CabinID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует созданное бронирование в HTTP модель
func FromUseCaseResponse(resp *create_reservation.Response) *models.ReservationResponse {
	return models.FromDomainReservation(resp)
}
