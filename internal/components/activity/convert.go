package activity

import "fmt"

const metersPerMile = 1609.34

// MetersToMiles converts a distance in meters to statute miles.
func MetersToMiles(m float64) float64 {
	return m / metersPerMile
}

// SecondsToHoursMinutes splits a duration into whole hours and remaining whole minutes.
// Negative input is treated as zero.
func SecondsToHoursMinutes(s int64) (hours, minutes int64) {
	if s < 0 {
		s = 0
	}
	return s / 3600, (s % 3600) / 60
}

// FormatDuration renders seconds as zero padded hh:mm:ss.
func FormatDuration(s int64) string {
	if s < 0 {
		s = 0
	}
	h, m := SecondsToHoursMinutes(s)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s%60)
}

// SecondsToHours converts seconds to fractional hours.
func SecondsToHours(s float64) float64 {
	return s / 3600
}
