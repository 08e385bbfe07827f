package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHourSlot(t *testing.T) {
	valid := map[string]HourSlot{"00:00": 0, "09:00": 9, "11:00": 11, "21:00": 21, "23:00": 23}
	for in, want := range valid {
		got, err := ParseHourSlot(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	for _, in := range []string{"", "9:00", "24:00", "11:30", "11", "11:00:00", "ab:00"} {
		_, err := ParseHourSlot(in)
		assert.ErrorIs(t, err, ErrInvalidHourSlot, in)
	}
}

func TestHourSlot_Scan(t *testing.T) {
	var s HourSlot

	require.NoError(t, s.Scan("12:00"))
	assert.Equal(t, HourSlot(12), s)

	require.NoError(t, s.Scan([]byte("13:00")))
	assert.Equal(t, HourSlot(13), s)

	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan("noon"))
}

func TestIntersectSlots(t *testing.T) {
	requested := []HourSlot{15, 12, 13}
	taken := []HourSlot{12, 15, 20}

	assert.Equal(t, []HourSlot{12, 15}, IntersectSlots(requested, taken))
	assert.Empty(t, IntersectSlots(requested, nil))
}

func TestContact_Masked(t *testing.T) {
	assert.Equal(t, "98******10", Contact("9876543210").Masked())
	assert.Equal(t, "a****@example.com", Contact("alice@example.com").Masked())
	assert.Equal(t, "***", Contact("abc").Masked())
}

func TestParseContactMode(t *testing.T) {
	mode, err := ParseContactMode(" Email ")
	require.NoError(t, err)
	assert.Equal(t, ContactModeEmail, mode)

	_, err = ParseContactMode("fax")
	assert.ErrorIs(t, err, ErrInvalidContactMode)
}
