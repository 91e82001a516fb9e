package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrOutsideBusinessHours интервал выходит за рабочее окно клуба
	ErrOutsideBusinessHours = errors.New("domain: interval is outside business hours")

	// ErrNotOnSlotBoundary границы интервала не совпадают с границами слотов
	ErrNotOnSlotBoundary = errors.New("domain: interval is not aligned to slot boundaries")
)

// BusinessHours рабочее окно клуба и сетка слотов в часовом поясе клуба
type BusinessHours struct {
	Location     *time.Location
	OpeningHour  int
	ClosingHour  int
	SlotDuration time.Duration
}

// DefaultBusinessHours окно 08:00-22:00 с часовыми слотами
func DefaultBusinessHours(loc *time.Location) BusinessHours {
	return BusinessHours{
		Location:     loc,
		OpeningHour:  DefaultOpeningHour,
		ClosingHour:  DefaultClosingHour,
		SlotDuration: DefaultSlotDuration,
	}
}

// Window начало и конец рабочего дня для календарной даты date
// Используются только год, месяц и день date; время и часовой пояс игнорируются
func (b BusinessHours) Window(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	open := time.Date(y, m, d, b.OpeningHour, 0, 0, 0, b.Location)
	closing := time.Date(y, m, d, b.ClosingHour, 0, 0, 0, b.Location)
	return open, closing
}

// SlotCount количество слотов в рабочем дне
func (b BusinessHours) SlotCount() int {
	return int(time.Duration(b.ClosingHour-b.OpeningHour) * time.Hour / b.SlotDuration)
}

// Slots все слоты рабочего дня в хронологическом порядке, без отметки занятости
func (b BusinessHours) Slots(date time.Time) []Slot {
	open, _ := b.Window(date)

	slots := make([]Slot, b.SlotCount())
	for i := range slots {
		start := open.Add(time.Duration(i) * b.SlotDuration)
		slots[i] = Slot{Start: start, End: start.Add(b.SlotDuration)}
	}
	return slots
}

// LocalDate календарный день момента t в часовом поясе клуба
func (b BusinessHours) LocalDate(t time.Time) time.Time {
	y, m, d := t.In(b.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, b.Location)
}

// ValidateInterval проверяет, что [start, end) лежит в одном рабочем дне и выровнен по слотам
func (b BusinessHours) ValidateInterval(start, end time.Time) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: check-in must be before check-out", ErrOutsideBusinessHours)
	}

	open, closing := b.Window(start.In(b.Location))
	if start.Before(open) || end.After(closing) {
		return fmt.Errorf("%w: allowed %02d:00-%02d:00", ErrOutsideBusinessHours, b.OpeningHour, b.ClosingHour)
	}

	if start.Sub(open)%b.SlotDuration != 0 || end.Sub(open)%b.SlotDuration != 0 {
		return fmt.Errorf("%w: slot length is %s", ErrNotOnSlotBoundary, b.SlotDuration)
	}

	return nil
}
