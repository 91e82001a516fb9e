package models

import (
	"errors"
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// TransitionRequest тело запроса действия администратора
type TransitionRequest struct {
	Reason *string `json:"reason,omitempty"` // Используется только при отмене
}

// ListReservationsRequest фильтры списка бронирований для администратора
type ListReservationsRequest struct {
	CabinID *int64     // Фильтр по кабине (опционально)
	From    *time.Time // Начало периода (опционально)
	To      *time.Time // Конец периода (опционально)
	Status  *string    // Фильтр по статусу (опционально)
	Limit   uint64
	Offset  uint64
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		CabinID: r.CabinID,
		From:    r.From,
		To:      r.To,
		Limit:   r.Limit,
		Offset:  r.Offset,
	}

	if filter.Limit == 0 {
		filter.Limit = domain.DefaultListLimit
	}
	if filter.Limit > domain.MaxListLimit {
		filter.Limit = domain.MaxListLimit
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// PaymentResponse платеж бронирования
type PaymentResponse struct {
	ID                   int64      `json:"id"`
	AmountCents          int64      `json:"amountCents"`
	Currency             string     `json:"currency"`
	Installments         int        `json:"installments"`
	ConversationID       string     `json:"conversationId"`
	GatewayTransactionID *string    `json:"gatewayTransactionId,omitempty"`
	Status               string     `json:"status"`
	FailureReason        *string    `json:"failureReason,omitempty"`
	WebhookReceived      bool       `json:"webhookReceived"`
	AuthorizedAt         *time.Time `json:"authorizedAt,omitempty"`
	CapturedAt           *time.Time `json:"capturedAt,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64     `json:"id"`
	CabinID         int64     `json:"cabinId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Notes           *string   `json:"notes,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CheckedInAt        *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt       *time.Time `json:"checkedOutAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	Payment *PaymentResponse `json:"payment,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:                   p.ID,
		AmountCents:          p.AmountCents,
		Currency:             p.Currency,
		Installments:         p.Installments,
		ConversationID:       p.ConversationID,
		GatewayTransactionID: p.GatewayTransactionID,
		Status:               string(p.Status),
		FailureReason:        p.FailureReason,
		WebhookReceived:      p.WebhookReceived,
		AuthorizedAt:         p.AuthorizedAt,
		CapturedAt:           p.CapturedAt,
		CreatedAt:            p.CreatedAt,
	}
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:                 r.ID,
		CabinID:            r.CabinID,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		CheckIn:            r.CheckIn,
		CheckOut:           r.CheckOut,
		Status:             string(r.Status),
		TotalPriceCents:    r.TotalPriceCents,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CheckedInAt:        r.CheckedInAt,
		CheckedOutAt:       r.CheckedOutAt,
		CancelledAt:        r.CancelledAt,
		Payment:            FromDomainPayment(r.Payment),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
