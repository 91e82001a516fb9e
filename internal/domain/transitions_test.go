package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		from   ReservationStatus
		action ReservationAction
		want   ReservationStatus
	}{
		{StatusPending, ActionConfirm, StatusConfirmed},
		{StatusConfirmed, ActionCheckIn, StatusCheckedIn},
		{StatusPending, ActionCheckIn, StatusCheckedIn},
		{StatusCheckedIn, ActionStart, StatusInProgress},
		{StatusCheckedIn, ActionCheckOut, StatusCompleted},
		{StatusInProgress, ActionCheckOut, StatusCompleted},
		{StatusConfirmed, ActionNoShow, StatusNoShow},
		{StatusPending, ActionCancel, StatusCancelled},
		{StatusConfirmed, ActionCancel, StatusCancelled},
		{StatusCheckedIn, ActionCancel, StatusCancelled},
		{StatusInProgress, ActionCancel, StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			r := &Reservation{Status: tt.from}
			got, err := r.NextStatus(tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		from    ReservationStatus
		action  ReservationAction
		message string
	}{
		{StatusCheckedIn, ActionCheckIn, "already checked in"},
		{StatusInProgress, ActionCheckIn, "already checked in"},
		{StatusConfirmed, ActionCheckOut, "not checked in"},
		{StatusPending, ActionCheckOut, "not checked in"},
		{StatusCancelled, ActionCancel, "already cancelled"},
		{StatusCompleted, ActionCancel, "completed reservation cannot be cancelled"},
		{StatusNoShow, ActionCancel, "cannot cancel"},
		{StatusCheckedIn, ActionNoShow, "cannot no-show"},
		{StatusCompleted, ActionCheckIn, "cannot check-in"},
		{StatusConfirmed, ActionConfirm, "cannot confirm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			r := &Reservation{Status: tt.from}
			_, err := r.NextStatus(tt.action)
			require.ErrorIs(t, err, ErrInvalidTransition)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNextStatus_UnknownAction(t *testing.T) {
	r := &Reservation{Status: StatusPending}
	_, err := r.NextStatus("teleport")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, ReservationAction("teleport").IsValid())
	assert.True(t, ActionCheckIn.IsValid())
	assert.Equal(t, StatusCheckedIn, ActionCheckIn.Target())
}

func TestStatusHelpers(t *testing.T) {
	for _, s := range ActiveStatuses {
		assert.True(t, s.IsActive(), s)
		assert.False(t, s.IsTerminal(), s)
	}
	for _, s := range TerminalStatuses {
		assert.False(t, s.IsActive(), s)
		assert.True(t, s.IsTerminal(), s)
	}
	assert.False(t, ReservationStatus("LOST").IsValid())
}

func TestReservation_Overlaps(t *testing.T) {
	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	r := &Reservation{CheckIn: day.Add(10 * time.Hour), CheckOut: day.Add(11 * time.Hour)}

	assert.True(t, r.Overlaps(day.Add(10*time.Hour), day.Add(11*time.Hour)))
	assert.True(t, r.Overlaps(day.Add(9*time.Hour+30*time.Minute), day.Add(10*time.Hour+30*time.Minute)))
	assert.False(t, r.Overlaps(day.Add(9*time.Hour), day.Add(10*time.Hour)))
	assert.False(t, r.Overlaps(day.Add(11*time.Hour), day.Add(12*time.Hour)))
	assert.Equal(t, time.Hour, r.Duration())
}

func TestNormalizeClosedDate(t *testing.T) {
	ist := time.FixedZone("TRT", 3*3600)
	lateEvening := time.Date(2025, 8, 15, 23, 30, 0, 0, ist)

	got := NormalizeClosedDate(lateEvening)
	assert.Equal(t, time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC), got)

	cd := &ClosedDate{Date: got}
	assert.True(t, cd.SameDay(lateEvening))
	assert.False(t, cd.SameDay(lateEvening.Add(time.Hour)))
}

func TestCabinPriceFor(t *testing.T) {
	c := &Cabin{HourlyPriceCents: 25000}
	assert.Equal(t, int64(75000), c.PriceFor(3*time.Hour))
	assert.Equal(t, int64(37500), c.PriceFor(90*time.Minute))
}
