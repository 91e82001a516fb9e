package domain

import "time"

// Slot часовой интервал рабочего дня кабины
type Slot struct {
	Start    time.Time
	End      time.Time
	Occupied bool
}

// Contains проверяет, что момент t попадает в слот
func (s *Slot) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}
