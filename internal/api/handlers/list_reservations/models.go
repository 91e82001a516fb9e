package list_reservations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
	"github.com/m04kA/BeachClub-ReservationService/internal/service/reservations/models"
)

type queryParams struct {
	cabinID string
	from    string
	to      string
	status  string
	limit   string
	offset  string
}

// ToServiceRequest разбирает query параметры списка бронирований
// from и to - даты YYYY-MM-DD в часовом поясе клуба; to включительно
func ToServiceRequest(q queryParams, location *time.Location) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if q.cabinID != "" {
		cabinID, err := strconv.ParseInt(q.cabinID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cabinId: %w", err)
		}
		req.CabinID = &cabinID
	}

	if q.from != "" {
		from, err := time.ParseInLocation(domain.DateFormat, q.from, location)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		req.From = &from
	}

	if q.to != "" {
		to, err := time.ParseInLocation(domain.DateFormat, q.to, location)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	if q.status != "" {
		status := q.status
		req.Status = &status
	}

	if q.limit != "" {
		limit, err := strconv.ParseUint(q.limit, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid limit: %w", err)
		}
		req.Limit = limit
	}

	if q.offset != "" {
		offset, err := strconv.ParseUint(q.offset, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset: %w", err)
		}
		req.Offset = offset
	}

	return req, nil
}
