package activity

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"
)

var (
	ErrUnknownWindow = errors.New("unknown window")
)

// SelectTopRecent returns the n most recent records, newest first.
// Records sharing a start date keep their input order. The input slice is not modified.
func SelectTopRecent(records []Record, n int) []Record {
	if n <= 0 || len(records) == 0 {
		return []Record{}
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		// undated records sort last
		switch {
		case !a.HasDate() && !b.HasDate():
			return 0
		case !a.HasDate():
			return 1
		case !b.HasDate():
			return -1
		}
		return b.StartDate.Compare(a.StartDate)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n:n]
}

// WindowStart returns the inclusive lower bound of the window containing now,
// computed in now's location.
func WindowStart(now time.Time, kind Window) (time.Time, error) {
	year, month, day := now.Date()
	switch kind {
	case WindowWeek:
		return time.Date(year, month, day-int(now.Weekday()), 0, 0, 0, 0, now.Location()), nil
	case WindowYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownWindow, kind)
	}
}

// ComputeRollup folds every record starting at or after the window start into a Rollup.
func ComputeRollup(records []Record, now time.Time, kind Window) (Rollup, error) {
	start, err := WindowStart(now, kind)
	if err != nil {
		return Rollup{}, err
	}

	var out Rollup
	for _, r := range records {
		if !r.HasDate() || r.StartDate.Before(start) {
			continue
		}
		out.ActivityCount++
		out.TotalDistanceMeters += nonNegative(r.DistanceMeters)
		out.TotalMovingTimeSeconds += nonNegative(float64(r.MovingTimeSeconds))
	}
	return out, nil
}

// ComputeRollups computes one Rollup per window kind against the same reference time.
func ComputeRollups(records []Record, now time.Time, kinds ...Window) (map[Window]Rollup, error) {
	out := make(map[Window]Rollup, len(kinds))
	for _, kind := range kinds {
		rollup, err := ComputeRollup(records, now, kind)
		if err != nil {
			return nil, err
		}
		out[kind] = rollup
	}
	return out, nil
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
