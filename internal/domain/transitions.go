package domain

import (
	"errors"
	"fmt"
)

// ReservationAction действие администратора над бронированием
type ReservationAction string

const (
	ActionConfirm  ReservationAction = "confirm"
	ActionCheckIn  ReservationAction = "check-in"
	ActionStart    ReservationAction = "start"
	ActionCheckOut ReservationAction = "check-out"
	ActionNoShow   ReservationAction = "no-show"
	ActionCancel   ReservationAction = "cancel"
)

// ErrInvalidTransition возвращается при недопустимой смене статуса
var ErrInvalidTransition = errors.New("domain: invalid reservation status transition")

// transitions допустимые исходные статусы для каждого действия
var transitions = map[ReservationAction]struct {
	from []ReservationStatus
	to   ReservationStatus
}{
	ActionConfirm:  {from: []ReservationStatus{StatusPending}, to: StatusConfirmed},
	ActionCheckIn:  {from: []ReservationStatus{StatusPending, StatusConfirmed}, to: StatusCheckedIn},
	ActionStart:    {from: []ReservationStatus{StatusCheckedIn}, to: StatusInProgress},
	ActionCheckOut: {from: []ReservationStatus{StatusCheckedIn, StatusInProgress}, to: StatusCompleted},
	ActionNoShow:   {from: []ReservationStatus{StatusPending, StatusConfirmed}, to: StatusNoShow},
	ActionCancel:   {from: []ReservationStatus{StatusPending, StatusConfirmed, StatusCheckedIn, StatusInProgress}, to: StatusCancelled},
}

// IsValid проверяет, что действие известно
func (a ReservationAction) IsValid() bool {
	_, ok := transitions[a]
	return ok
}

// Target статус, в который переводит действие
func (a ReservationAction) Target() ReservationStatus {
	return transitions[a].to
}

// NextStatus вычисляет новый статус бронирования для действия
// Возвращает ErrInvalidTransition с описанием, если действие недопустимо в текущем статусе
func (r *Reservation) NextStatus(action ReservationAction) (ReservationStatus, error) {
	t, ok := transitions[action]
	if !ok {
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}

	for _, from := range t.from {
		if r.Status == from {
			return t.to, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidTransition, describeRejection(action, r.Status))
}

func describeRejection(action ReservationAction, status ReservationStatus) string {
	switch action {
	case ActionCheckIn:
		if status == StatusCheckedIn || status == StatusInProgress {
			return "reservation is already checked in"
		}
	case ActionCheckOut:
		if status == StatusPending || status == StatusConfirmed {
			return "reservation is not checked in"
		}
	case ActionCancel:
		if status == StatusCancelled {
			return "reservation is already cancelled"
		}
		if status == StatusCompleted {
			return "completed reservation cannot be cancelled"
		}
	}
	return fmt.Sprintf("cannot %s reservation in status %s", action, status)
}
