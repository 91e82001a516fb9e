package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CabinID <= 0 {
		return fmt.Errorf("%w: cabinID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateTimeRange проверяет рабочее окно, выравнивание по слотам и то, что начало не в прошлом
func validateTimeRange(hours domain.BusinessHours, checkIn, checkOut, now time.Time) error {
	if err := hours.ValidateInterval(checkIn, checkOut); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	if checkIn.Before(now) {
		return ErrTooLateToBook
	}

	return nil
}

// hasOverlap проверяет пересечение интервала с активными бронированиями
func hasOverlap(reservations []*domain.Reservation, checkIn, checkOut time.Time) bool {
	for _, res := range reservations {
		if res.IsActive() && res.Overlaps(checkIn, checkOut) {
			return true
		}
	}
	return false
}
