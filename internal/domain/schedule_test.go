package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func istanbul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	return loc
}

func TestBusinessHours_Slots(t *testing.T) {
	loc := istanbul(t)
	hours := DefaultBusinessHours(loc)

	slots := hours.Slots(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, slots, 14)

	assert.Equal(t, time.Date(2025, 7, 1, 8, 0, 0, 0, loc), slots[0].Start)
	assert.Equal(t, time.Date(2025, 7, 1, 9, 0, 0, 0, loc), slots[0].End)
	assert.Equal(t, time.Date(2025, 7, 1, 21, 0, 0, 0, loc), slots[13].Start)
	assert.Equal(t, time.Date(2025, 7, 1, 22, 0, 0, 0, loc), slots[13].End)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func TestBusinessHours_HalfHourSlots(t *testing.T) {
	hours := BusinessHours{Location: time.UTC, OpeningHour: 10, ClosingHour: 12, SlotDuration: 30 * time.Minute}
	assert.Equal(t, 4, hours.SlotCount())
	assert.Len(t, hours.Slots(time.Now()), 4)
}

func TestBusinessHours_ValidateInterval(t *testing.T) {
	loc := istanbul(t)
	hours := DefaultBusinessHours(loc)
	at := func(h, m int) time.Time { return time.Date(2025, 7, 1, h, m, 0, 0, loc) }

	assert.NoError(t, hours.ValidateInterval(at(8, 0), at(22, 0)))
	assert.NoError(t, hours.ValidateInterval(at(10, 0), at(11, 0)))
	assert.NoError(t, hours.ValidateInterval(at(7, 0).UTC().Add(time.Hour), at(12, 0).UTC()))

	assert.ErrorIs(t, hours.ValidateInterval(at(11, 0), at(10, 0)), ErrOutsideBusinessHours)
	assert.ErrorIs(t, hours.ValidateInterval(at(10, 0), at(10, 0)), ErrOutsideBusinessHours)
	assert.ErrorIs(t, hours.ValidateInterval(at(7, 0), at(9, 0)), ErrOutsideBusinessHours)
	assert.ErrorIs(t, hours.ValidateInterval(at(21, 0), at(23, 0)), ErrOutsideBusinessHours)
	assert.ErrorIs(t, hours.ValidateInterval(at(21, 0), at(21, 0).Add(12*time.Hour)), ErrOutsideBusinessHours)
	assert.ErrorIs(t, hours.ValidateInterval(at(10, 30), at(11, 30)), ErrNotOnSlotBoundary)
}

func TestBusinessHours_LocalDate(t *testing.T) {
	loc := istanbul(t)
	hours := DefaultBusinessHours(loc)

	// 22:30 UTC это уже следующий день в Стамбуле (UTC+3)
	lateUTC := time.Date(2025, 7, 1, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, loc), hours.LocalDate(lateUTC))
}
