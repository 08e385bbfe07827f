package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "canonical", input: "01-06-2024", want: NewDate(2024, time.June, 1)},
		{name: "surrounding spaces", input: " 31-12-2024 ", want: NewDate(2024, time.December, 31)},
		{name: "leap day", input: "29-02-2024", want: NewDate(2024, time.February, 29)},
		{name: "not a leap year", input: "29-02-2023", wantErr: true},
		{name: "unpadded day", input: "1-06-2024", wantErr: true},
		{name: "iso form", input: "2024-06-01", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDate_Formats(t *testing.T) {
	d := NewDate(2024, time.June, 5)

	assert.Equal(t, "05-06-2024", d.String())
	assert.Equal(t, "2024-06-05", d.Storage())

	back, err := ParseStorageDate(d.Storage())
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestDate_AddDaysUsesCalendarArithmetic(t *testing.T) {
	assert.Equal(t, "01-07-2024", NewDate(2024, time.June, 30).AddDays(1).String())
	assert.Equal(t, "01-01-2025", NewDate(2024, time.December, 28).AddDays(4).String())
	assert.Equal(t, "01-03-2024", NewDate(2024, time.February, 28).AddDays(2).String())
	assert.Equal(t, "31-05-2024", NewDate(2024, time.June, 1).AddDays(-1).String())
}

func TestDate_CompareByCalendarValue(t *testing.T) {
	// "02-01-2025" < "31-12-2024" as strings, but not as dates
	a := NewDate(2024, time.December, 31)
	b := NewDate(2025, time.January, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(NewDate(2024, time.December, 31)))
}

func TestDateOf_UsesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on 31 May is already 1 June in IST
	instant := time.Date(2024, time.May, 31, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "01-06-2024", DateOf(instant, loc).String())
	assert.Equal(t, "31-05-2024", DateOf(instant, time.UTC).String())
}
