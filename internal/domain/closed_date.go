package domain

import "time"

// ClosedDate день, в который клуб не принимает бронирования
type ClosedDate struct {
	ID        int64
	Date      time.Time // Всегда 12:00 UTC, см. NormalizeClosedDate
	Reason    *string
	CreatedAt time.Time
}

// NormalizeClosedDate приводит календарную дату к 12:00 UTC
// Полдень UTC остается тем же календарным днем в любом часовом поясе от UTC-11 до UTC+11
func NormalizeClosedDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// SameDay проверяет, что закрытый день совпадает с календарной датой t (в её часовом поясе)
func (c *ClosedDate) SameDay(t time.Time) bool {
	return c.Date.Equal(NormalizeClosedDate(t))
}
