package get_availability

import (
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/internal/usecase/get_availability"
)

// SlotResponse часовой слот в ответе
type SlotResponse struct {
	StartTime string    `json:"startTime"` // HH:MM в часовом поясе клуба
	EndTime   string    `json:"endTime"`   // HH:MM в часовом поясе клуба
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Available bool      `json:"available"`
}

// AvailabilityResponse сетка слотов кабины на день
type AvailabilityResponse struct {
	CabinID int64          `json:"cabinId"`
	Date    string         `json:"date"` // YYYY-MM-DD
	Closed  bool           `json:"closed"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *get_availability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		CabinID: resp.CabinID,
		Date:    resp.Date.Format(domain.DateFormat),
		Closed:  resp.Closed,
		Slots:   make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			StartTime: slot.Start.Format(domain.TimeFormat),
			EndTime:   slot.End.Format(domain.TimeFormat),
			StartsAt:  slot.Start,
			EndsAt:    slot.End,
			Available: !slot.Occupied,
		})
	}

	return result
}
