package create_payment

import (
	"github.com/m04kA/BeachClub-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/create_payment"
)

// CreatePaymentRequest HTTP request model
// CardToken выдает платежная форма шлюза; номер карты в API не передается
type CreatePaymentRequest struct {
	CardToken    string `json:"cardToken" validate:"required"`
	Installments int    `json:"installments" validate:"omitempty,min=1,max=12"` // По умолчанию 1
}

// PaymentResultResponse HTTP response model
type PaymentResultResponse struct {
	Payment           *models.PaymentResponse `json:"payment"`
	ReservationStatus string                  `json:"reservationStatus"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreatePaymentRequest) ToUseCaseRequest(reservationID int64) *create_payment.Request {
	installments := r.Installments
	if installments == 0 {
		installments = 1
	}

	return &create_payment.Request{
		ReservationID: reservationID,
		CardToken:     r.CardToken,
		Installments:  installments,
	}
}

// FromUseCaseResponse конвертирует результат авторизации в HTTP модель
func FromUseCaseResponse(resp *create_payment.Response) *PaymentResultResponse {
	return &PaymentResultResponse{
		Payment:           models.FromDomainPayment(resp.Payment),
		ReservationStatus: string(resp.ReservationStatus),
	}
}
