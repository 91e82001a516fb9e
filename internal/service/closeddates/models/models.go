package models

import (
	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

// CreateClosedDateRequest запрос на закрытие дня
type CreateClosedDateRequest struct {
	Date   string  `json:"date" validate:"required"` // YYYY-MM-DD
	Reason *string `json:"reason,omitempty"`
}

// ClosedDateResponse закрытый день
type ClosedDateResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Reason *string `json:"reason,omitempty"`
}

// ClosedDateListResponse список закрытых дней
type ClosedDateListResponse struct {
	ClosedDates []ClosedDateResponse `json:"closedDates"`
}

// FromDomainClosedDate конвертирует domain модель в DTO
func FromDomainClosedDate(cd *domain.ClosedDate) *ClosedDateResponse {
	if cd == nil {
		return nil
	}

	return &ClosedDateResponse{
		ID:     cd.ID,
		Date:   cd.Date.Format(domain.DateFormat),
		Reason: cd.Reason,
	}
}

// FromDomainClosedDateList конвертирует список domain моделей в DTO
func FromDomainClosedDateList(dates []*domain.ClosedDate) *ClosedDateListResponse {
	resp := &ClosedDateListResponse{
		ClosedDates: make([]ClosedDateResponse, 0, len(dates)),
	}

	for _, cd := range dates {
		if dto := FromDomainClosedDate(cd); dto != nil {
			resp.ClosedDates = append(resp.ClosedDates, *dto)
		}
	}

	return resp
}
