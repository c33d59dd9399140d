package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetersToMiles(t *testing.T) {
	assert.InDelta(t, 1.0, MetersToMiles(1609.34), 1e-6)
	assert.InDelta(t, 3.10686, MetersToMiles(5000), 1e-4)
	assert.Zero(t, MetersToMiles(0))
}

func TestSecondsToHoursMinutes(t *testing.T) {
	tests := []struct {
		in      int64
		hours   int64
		minutes int64
	}{
		{0, 0, 0},
		{59, 0, 0},
		{60, 0, 1},
		{3599, 0, 59},
		{3600, 1, 0},
		{5400, 1, 30},
		{90061, 25, 1},
		{-10, 0, 0},
	}
	for _, tt := range tests {
		h, m := SecondsToHoursMinutes(tt.in)
		assert.Equal(t, tt.hours, h, "hours for %d", tt.in)
		assert.Equal(t, tt.minutes, m, "minutes for %d", tt.in)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatDuration(0))
	assert.Equal(t, "00:00:09", FormatDuration(9))
	assert.Equal(t, "01:01:01", FormatDuration(3661))
	assert.Equal(t, "125:00:00", FormatDuration(450000))
	assert.Equal(t, "00:00:00", FormatDuration(-3))
}

func TestSecondsToHours(t *testing.T) {
	assert.InDelta(t, 1.5, SecondsToHours(5400), 1e-9)
}
