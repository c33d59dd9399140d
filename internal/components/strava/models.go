package strava

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/andrasnagy-data/strideboard/internal/components/activity"
)

// MaxPerPage is the largest page size Strava accepts.
const MaxPerPage = 200

type (
	// ListParams mirrors the query accepted by GET /athlete/activities.
	// Zero Before/After are omitted, zero Page/PerPage fall back to client defaults.
	ListParams struct {
		Before  time.Time
		After   time.Time
		Page    int
		PerPage int
	}

	// summaryActivity is the subset of Strava's SummaryActivity the dashboard reads.
	summaryActivity struct {
		ID               json.RawMessage `json:"id"`
		Name             string          `json:"name"`
		Type             string          `json:"type"`
		SportType        string          `json:"sport_type"`
		StartDate        string          `json:"start_date"`
		Distance         lenientFloat    `json:"distance"`
		MovingTime       lenientFloat    `json:"moving_time"`
		AverageHeartrate *lenientFloat   `json:"average_heartrate"`
	}

	// lenientFloat decodes numbers, numeric strings and null. Anything else decodes to zero.
	lenientFloat struct {
		value float64
		valid bool
	}

	ActivityOut struct {
		activity.Record
		Date          string  `json:"date"`
		DistanceMiles float64 `json:"distance_miles"`
		MovingTime    string  `json:"moving_time"`
	}

	RollupOut struct {
		activity.Rollup
		WindowStart   time.Time `json:"window_start"`
		DistanceMiles float64   `json:"distance_miles"`
		MovingHours   float64   `json:"moving_hours"`
	}

	DashboardOut struct {
		Recent      []ActivityOut `json:"recent"`
		Week        RollupOut     `json:"week"`
		Year        RollupOut     `json:"year"`
		Truncated   bool          `json:"truncated"`
		GeneratedAt time.Time     `json:"generated_at"`
	}
)

func (f *lenientFloat) UnmarshalJSON(data []byte) error {
	*f = lenientFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(s)
	}
	v, err := strconv.ParseFloat(string(bytes.TrimSpace(data)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	*f = lenientFloat{value: v, valid: true}
	return nil
}

// toRecord normalizes a decoded Strava activity. Bad numbers become zero and an
// unparseable start date becomes the zero time.
func (a summaryActivity) toRecord() activity.Record {
	rec := activity.Record{
		ID:                rawID(a.ID),
		Name:              a.Name,
		Type:              a.Type,
		DistanceMeters:    a.Distance.value,
		MovingTimeSeconds: wholeSeconds(a.MovingTime.value),
	}
	if rec.Type == "" {
		rec.Type = a.SportType
	}
	if start, err := time.Parse(time.RFC3339, a.StartDate); err == nil {
		rec.StartDate = start
	}
	if a.AverageHeartrate != nil && a.AverageHeartrate.valid {
		hr := a.AverageHeartrate.value
		rec.AverageHeartRate = &hr
	}
	return rec
}

// wholeSeconds truncates to int64. Values outside the int64 range become 0.
func wholeSeconds(v float64) int64 {
	if math.IsNaN(v) || v < 0 || v >= math.MaxInt64 {
		return 0
	}
	return int64(v)
}

// rawID keeps numeric ids as their literal text so large ids survive untouched.
func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func newActivityOut(rec activity.Record, loc *time.Location) ActivityOut {
	out := ActivityOut{
		Record:        rec,
		DistanceMiles: round(activity.MetersToMiles(rec.DistanceMeters), 2),
		MovingTime:    activity.FormatDuration(rec.MovingTimeSeconds),
	}
	if rec.HasDate() {
		out.Date = rec.StartDate.In(loc).Format(time.DateOnly)
	}
	return out
}

func newRollupOut(r activity.Rollup, start time.Time) RollupOut {
	return RollupOut{
		Rollup:        r,
		WindowStart:   start,
		DistanceMiles: round(activity.MetersToMiles(r.TotalDistanceMeters), 1),
		MovingHours:   round(activity.SecondsToHours(r.TotalMovingTimeSeconds), 1),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
