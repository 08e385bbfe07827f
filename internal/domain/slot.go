package domain

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var hourSlotRegex = regexp.MustCompile(`^([01]\d|2[0-3]):00$`)

// HourSlot is an hour-long bookable unit identified by its starting hour (HH:00)
type HourSlot int

// NewHourSlot returns the slot starting at hour
func NewHourSlot(hour int) (HourSlot, error) {
	if hour < MinSlotHour || hour > MaxSlotHour {
		return 0, fmt.Errorf("%w: hour %d out of range", ErrInvalidHourSlot, hour)
	}
	return HourSlot(hour), nil
}

// ParseHourSlot parses the HH:00 form
func ParseHourSlot(s string) (HourSlot, error) {
	s = strings.TrimSpace(s)
	if !hourSlotRegex.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourSlot, s)
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourSlot, s)
	}
	return HourSlot(hour), nil
}

// Hour returns the starting hour of the slot
func (s HourSlot) Hour() int {
	return int(s)
}

// String returns the HH:00 form
func (s HourSlot) String() string {
	return fmt.Sprintf(SlotFormat, int(s))
}

// Value implements driver.Valuer; slots are persisted in HH:00 form
func (s HourSlot) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner
func (s *HourSlot) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidHourSlot, src)
	}

	parsed, err := ParseHourSlot(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SortSlots sorts slots in ascending order in place
func SortSlots(slots []HourSlot) {
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
}

// SlotStrings converts slots to their HH:00 form
func SlotStrings(slots []HourSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

// IntersectSlots returns the slots of requested that are present in taken, sorted
func IntersectSlots(requested, taken []HourSlot) []HourSlot {
	takenSet := make(map[HourSlot]struct{}, len(taken))
	for _, s := range taken {
		takenSet[s] = struct{}{}
	}

	result := make([]HourSlot, 0)
	for _, s := range requested {
		if _, ok := takenSet[s]; ok {
			result = append(result, s)
		}
	}
	SortSlots(result)
	return result
}
