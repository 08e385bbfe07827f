package domain

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day. It carries no time of day and no location:
// it is always derived from an instant in the booking timezone (see DateOf).
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns a normalized date. Out-of-range values roll over the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// DateOf returns the calendar day of t as observed in loc
func DateOf(t time.Time, loc *time.Location) Date {
	if loc != nil {
		t = t.In(loc)
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDate parses the wire form DD-MM-YYYY
func ParseDate(s string) (Date, error) {
	return parseDate(s, DateFormat)
}

// ParseStorageDate parses the persisted form YYYY-MM-DD
func ParseStorageDate(s string) (Date, error) {
	return parseDate(s, StorageDateFormat)
}

func parseDate(s, layout string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// String returns the wire form DD-MM-YYYY
func (d Date) String() string {
	return d.midnight(time.UTC).Format(DateFormat)
}

// Storage returns the persisted form YYYY-MM-DD
func (d Date) Storage() string {
	return d.midnight(time.UTC).Format(StorageDateFormat)
}

// AddDays moves the date by n calendar days
func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month) - int(other.month))
	default:
		return sign(d.day - other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d.Compare(other) == 0 }

// In returns the start of the day in loc
func (d Date) In(loc *time.Location) time.Time {
	return d.midnight(loc)
}

func (d Date) midnight(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
