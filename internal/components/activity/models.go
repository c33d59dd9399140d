package activity

import "time"

const (
	WindowWeek Window = "week"
	WindowYear Window = "year"
)

type (
	// Window names a calendar window anchored to a reference time.
	Window string

	// Record is one logged exercise session as delivered by an activity source.
	// A zero StartDate marks a record whose date could not be parsed.
	Record struct {
		ID                string    `json:"id"`
		Name              string    `json:"name"`
		Type              string    `json:"type"`
		StartDate         time.Time `json:"start_date"`
		DistanceMeters    float64   `json:"distance_meters"`
		MovingTimeSeconds int64     `json:"moving_time_seconds"`
		AverageHeartRate  *float64  `json:"average_heartrate,omitempty"`
	}

	// Rollup holds totals over every record inside a window.
	Rollup struct {
		ActivityCount          int     `json:"activity_count"`
		TotalDistanceMeters    float64 `json:"total_distance_meters"`
		TotalMovingTimeSeconds float64 `json:"total_moving_time_seconds"`
	}
)

// HasDate reports whether the record carries a usable start date.
func (r Record) HasDate() bool {
	return !r.StartDate.IsZero()
}
