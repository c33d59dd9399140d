package strava

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/strideboard/internal/shared/respond"
)

const maxLimit = 200

type (
	Router struct {
		service servicer
	}
)

func NewRouter(service servicer) chi.Router {
	router := &Router{service: service}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/dashboard", r.GetDashboard)
	router.Get("/activities", r.GetActivities)

	return router
}

// GetDashboard returns the top recent activities with week and year rollups.
// An upstream failure is reported as 502 so clients can tell it apart from an empty history.
func (r *Router) GetDashboard(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	dashboard, err := r.service.Dashboard(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error building dashboard")
		respond.Error(w, http.StatusBadGateway, "failed to load activities")
		return
	}

	respond.JSON(w, http.StatusOK, dashboard)
}

// GetActivities returns the most recent activities of one Strava page.
func (r *Router) GetActivities(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)
	q := req.URL.Query()

	limit := r.service.TopN()
	params := ListParams{}

	ints := []struct {
		name string
		dst  *int
		max  int
	}{
		{"limit", &limit, maxLimit},
		{"page", &params.Page, math.MaxInt32},
		{"per_page", &params.PerPage, MaxPerPage},
	}
	for _, p := range ints {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > p.max {
			logger.Warn().Str(p.name, raw).Msg("Invalid query parameter")
			respond.Error(w, http.StatusBadRequest, "invalid "+p.name)
			return
		}
		*p.dst = v
	}

	times := []struct {
		name string
		dst  *time.Time
	}{
		{"before", &params.Before},
		{"after", &params.After},
	}
	for _, p := range times {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		t, err := parseTimeParam(raw)
		if err != nil {
			logger.Warn().Str(p.name, raw).Msg("Invalid query parameter")
			respond.Error(w, http.StatusBadRequest, "invalid "+p.name)
			return
		}
		*p.dst = t
	}

	activities, err := r.service.RecentActivities(ctx, params, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting activities")
		respond.Error(w, http.StatusBadGateway, "failed to load activities")
		return
	}

	respond.JSON(w, http.StatusOK, activities)
}

// parseTimeParam accepts epoch seconds, RFC3339 or a plain date.
func parseTimeParam(raw string) (time.Time, error) {
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("unrecognised time format")
}
