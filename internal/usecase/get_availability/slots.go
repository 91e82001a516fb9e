package get_availability

import (
	"time"

	"github.com/m04kA/BeachClub-ReservationService/internal/domain"
)

// markOccupancy отмечает занятые слоты
// Слот занят, если уже начался (начало раньше now) или пересекается с активным бронированием.
// Пересечение строгое: бронирование, которое заканчивается ровно в начале слота, его не занимает
//
// Примеры для слота 10:00-11:00:
// - бронирование 10:00-11:00 → занят
// - бронирование 09:00-10:00 → свободен (граничат)
// - бронирование 09:30-10:30 → занят
func markOccupancy(slots []domain.Slot, reservations []*domain.Reservation, now time.Time) []domain.Slot {
	for i := range slots {
		if slots[i].Start.Before(now) {
			slots[i].Occupied = true
			continue
		}

		for _, res := range reservations {
			if !res.IsActive() {
				continue
			}
			if res.Overlaps(slots[i].Start, slots[i].End) {
				slots[i].Occupied = true
				break
			}
		}
	}

	return slots
}

// markAllOccupied используется для закрытых дней
func markAllOccupied(slots []domain.Slot) []domain.Slot {
	for i := range slots {
		slots[i].Occupied = true
	}
	return slots
}
