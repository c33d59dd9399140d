package strava

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/andrasnagy-data/strideboard/internal/components/activity"
	"github.com/andrasnagy-data/strideboard/internal/shared/config"
)

type (
	servicer interface {
		Dashboard(ctx context.Context) (*DashboardOut, error)
		RecentActivities(ctx context.Context, params ListParams, limit int) ([]ActivityOut, error)
		TopN() int
	}

	service struct {
		source ActivitySource
		logger zerolog.Logger
		topN   int
		loc    *time.Location
		now    func() time.Time
	}
)

func NewService(source ActivitySource, cfg *config.Config, logger zerolog.Logger) servicer {
	loc := cfg.Location()
	return &service{
		source: source,
		logger: logger.With().Str("component", "dashboard").Logger(),
		topN:   cfg.TopN,
		loc:    loc,
		now:    func() time.Time { return time.Now().In(loc) },
	}
}

func (s *service) TopN() int {
	return s.topN
}

// Dashboard derives the top-N list together with this week's and this year's rollups.
// Both windows share one reference time. Rollups come from a single page of at most
// MaxPerPage activities started inside the windows; Truncated is set when that page is full.
// The top-N list comes from the default page, which Strava orders newest first.
func (s *service) Dashboard(ctx context.Context) (*DashboardOut, error) {
	now := s.now()
	weekStart, err := activity.WindowStart(now, activity.WindowWeek)
	if err != nil {
		return nil, err
	}
	yearStart, err := activity.WindowStart(now, activity.WindowYear)
	if err != nil {
		return nil, err
	}

	// the week can start in the previous year
	earliest := yearStart
	if weekStart.Before(earliest) {
		earliest = weekStart
	}
	// Strava's after bound is exclusive
	inWindow, err := s.source.ListActivities(ctx, ListParams{
		After:   earliest.Add(-time.Second),
		PerPage: MaxPerPage,
	})
	if err != nil {
		return nil, err
	}

	latest, err := s.source.ListActivities(ctx, ListParams{})
	if err != nil {
		return nil, err
	}

	rollups, err := activity.ComputeRollups(inWindow, now, activity.WindowWeek, activity.WindowYear)
	if err != nil {
		return nil, err
	}
	truncated := len(inWindow) >= MaxPerPage

	s.logger.Debug().
		Int("records", len(inWindow)).
		Int("week_count", rollups[activity.WindowWeek].ActivityCount).
		Int("year_count", rollups[activity.WindowYear].ActivityCount).
		Bool("truncated", truncated).
		Msg("Dashboard computed")

	return &DashboardOut{
		Recent:      s.toActivityOuts(activity.SelectTopRecent(latest, s.topN)),
		Week:        newRollupOut(rollups[activity.WindowWeek], weekStart),
		Year:        newRollupOut(rollups[activity.WindowYear], yearStart),
		Truncated:   truncated,
		GeneratedAt: now,
	}, nil
}

// RecentActivities fetches one page and returns its limit most recent entries.
func (s *service) RecentActivities(ctx context.Context, params ListParams, limit int) ([]ActivityOut, error) {
	records, err := s.source.ListActivities(ctx, params)
	if err != nil {
		return nil, err
	}
	return s.toActivityOuts(activity.SelectTopRecent(records, limit)), nil
}

func (s *service) toActivityOuts(records []activity.Record) []ActivityOut {
	out := make([]ActivityOut, 0, len(records))
	for _, rec := range records {
		out = append(out, newActivityOut(rec, s.loc))
	}
	return out
}
