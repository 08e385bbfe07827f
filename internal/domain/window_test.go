package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	w, err := NewWindow(time.UTC, DefaultHorizonDays, DefaultFirstSlotHour, DefaultLastSlotHour)
	require.NoError(t, err)
	return w
}

func TestWindow_ListDates(t *testing.T) {
	w := newTestWindow(t)
	now := time.Date(2024, time.December, 28, 15, 30, 0, 0, time.UTC)

	dates := w.ListDates(now)

	require.Len(t, dates, 7)
	got := make([]string, len(dates))
	for i, d := range dates {
		got[i] = d.String()
	}
	assert.Equal(t, []string{
		"28-12-2024", "29-12-2024", "30-12-2024", "31-12-2024",
		"01-01-2025", "02-01-2025", "03-01-2025",
	}, got)
}

func TestWindow_ListHourSlots(t *testing.T) {
	w := newTestWindow(t)

	slots := SlotStrings(w.ListHourSlots())

	assert.Equal(t, []string{
		"11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
		"17:00", "18:00", "19:00", "20:00", "21:00",
	}, slots)
}

func TestWindow_Contains(t *testing.T) {
	w := newTestWindow(t)
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	today := w.Today(now)

	assert.False(t, w.Contains(today.AddDays(-1), now), "yesterday")
	assert.True(t, w.Contains(today, now), "today")
	assert.True(t, w.Contains(today.AddDays(6), now), "last day is inclusive")
	assert.False(t, w.Contains(today.AddDays(7), now), "beyond horizon")
}

func TestWindow_IsElapsed(t *testing.T) {
	w := newTestWindow(t)
	now := time.Date(2024, time.June, 1, 14, 20, 0, 0, time.UTC)
	today := w.Today(now)

	assert.True(t, w.IsElapsed(today, HourSlot(13), now))
	assert.True(t, w.IsElapsed(today, HourSlot(14), now), "current hour has started")
	assert.False(t, w.IsElapsed(today, HourSlot(15), now))
	assert.False(t, w.IsElapsed(today.AddDays(1), HourSlot(11), now))
	assert.True(t, w.IsElapsed(today.AddDays(-1), HourSlot(21), now))
}

func TestNewWindow_Validation(t *testing.T) {
	_, err := NewWindow(nil, 6, 11, 21)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewWindow(time.UTC, -1, 11, 21)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewWindow(time.UTC, 6, 21, 11)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewWindow(time.UTC, 6, 11, 24)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
