package domain

import (
	"fmt"
	"time"
)

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Window describes the booking horizon and the daily slot set.
// The horizon is [today, today+HorizonDays] in the window's location,
// recomputed from the supplied instant on every call.
type Window struct {
	location    *time.Location
	horizonDays int
	firstSlot   HourSlot
	lastSlot    HourSlot
}

// NewWindow validates and builds a booking window
func NewWindow(loc *time.Location, horizonDays, firstHour, lastHour int) (*Window, error) {
	if loc == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidWindow)
	}
	if horizonDays < 0 || horizonDays > MaxHorizonDays {
		return nil, fmt.Errorf("%w: horizon days must be within [0, %d]", ErrInvalidWindow, MaxHorizonDays)
	}
	first, err := NewHourSlot(firstHour)
	if err != nil {
		return nil, fmt.Errorf("%w: first hour: %v", ErrInvalidWindow, err)
	}
	last, err := NewHourSlot(lastHour)
	if err != nil {
		return nil, fmt.Errorf("%w: last hour: %v", ErrInvalidWindow, err)
	}
	if last < first {
		return nil, fmt.Errorf("%w: last hour %s is before first hour %s", ErrInvalidWindow, last, first)
	}

	return &Window{
		location:    loc,
		horizonDays: horizonDays,
		firstSlot:   first,
		lastSlot:    last,
	}, nil
}

// Location returns the booking timezone
func (w *Window) Location() *time.Location {
	return w.location
}

// HorizonDays returns how many days after today are bookable
func (w *Window) HorizonDays() int {
	return w.horizonDays
}

// Today returns the current calendar day in the booking timezone
func (w *Window) Today(now time.Time) Date {
	return DateOf(now, w.location)
}

// LastDate returns the last bookable day
func (w *Window) LastDate(now time.Time) Date {
	return w.Today(now).AddDays(w.horizonDays)
}

// ListDates returns today and the following HorizonDays days in order
func (w *Window) ListDates(now time.Time) []Date {
	today := w.Today(now)
	dates := make([]Date, 0, w.horizonDays+1)
	for i := 0; i <= w.horizonDays; i++ {
		dates = append(dates, today.AddDays(i))
	}
	return dates
}

// ListHourSlots returns the fixed daily slot set in order
func (w *Window) ListHourSlots() []HourSlot {
	slots := make([]HourSlot, 0, int(w.lastSlot-w.firstSlot)+1)
	for s := w.firstSlot; s <= w.lastSlot; s++ {
		slots = append(slots, s)
	}
	return slots
}

// HasSlot reports whether s belongs to the daily slot set
func (w *Window) HasSlot(s HourSlot) bool {
	return s >= w.firstSlot && s <= w.lastSlot
}

// Contains reports whether d lies within [today, today+HorizonDays]
func (w *Window) Contains(d Date, now time.Time) bool {
	today := w.Today(now)
	return !d.Before(today) && !d.After(today.AddDays(w.horizonDays))
}

// IsElapsed reports whether slot s on d has already started:
// on today every slot at or before the current hour is elapsed
func (w *Window) IsElapsed(d Date, s HourSlot, now time.Time) bool {
	local := now.In(w.location)
	today := DateOf(local, w.location)
	switch {
	case d.Before(today):
		return true
	case d.After(today):
		return false
	default:
		return s.Hour() <= local.Hour()
	}
}
