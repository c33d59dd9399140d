package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/andrasnagy-data/strideboard/internal/components/activity"
	"github.com/andrasnagy-data/strideboard/internal/shared/config"
	"github.com/andrasnagy-data/strideboard/internal/shared/observability"
)

const activitiesPath = "/athlete/activities"

type (
	// ActivitySource lists activity records from a remote tracker.
	ActivitySource interface {
		ListActivities(ctx context.Context, params ListParams) ([]activity.Record, error)
	}

	// APIError is returned when Strava answers with a non-2xx status.
	APIError struct {
		StatusCode int
		Body       string
	}

	Client struct {
		http           *resty.Client
		logger         zerolog.Logger
		defaultPerPage int
	}
)

func (e *APIError) Error() string {
	return fmt.Sprintf("strava: unexpected status %d: %s", e.StatusCode, e.Body)
}

// NewClient builds a Strava client authenticated with the configured access token.
func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.StravaBaseURL).
		SetAuthToken(cfg.StravaAccessToken).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.HTTPTimeout)

	return &Client{
		http:           httpClient,
		logger:         logger.With().Str("component", "strava").Logger(),
		defaultPerPage: cfg.StravaPerPage,
	}
}

// ListActivities fetches one page of the authenticated athlete's activities.
// Transport failures, non-2xx responses and undecodable bodies are all returned as errors.
func (c *Client) ListActivities(ctx context.Context, params ListParams) ([]activity.Record, error) {
	query := c.queryParams(params)
	started := time.Now()

	c.logger.Debug().Interface("query", query).Msg("Fetching Strava activities")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(activitiesPath)
	if err != nil {
		observability.RecordStravaFetch(observability.OutcomeFailure, time.Since(started), 0)
		c.logger.Error().Err(err).Msg("Strava request failed")
		return nil, fmt.Errorf("strava: list activities: %w", err)
	}

	if !resp.IsSuccess() {
		observability.RecordStravaFetch(observability.OutcomeFailure, time.Since(started), 0)
		c.logger.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("Strava API response error")
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var raw []summaryActivity
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		observability.RecordStravaFetch(observability.OutcomeFailure, time.Since(started), 0)
		c.logger.Error().Err(err).Msg("Failed to decode Strava activities")
		return nil, fmt.Errorf("strava: decode activities: %w", err)
	}

	records := make([]activity.Record, 0, len(raw))
	for _, a := range raw {
		rec := a.toRecord()
		if !rec.HasDate() {
			c.logger.Warn().Str("id", rec.ID).Str("start_date", a.StartDate).Msg("Activity has unparseable start date")
		}
		records = append(records, rec)
	}

	observability.RecordStravaFetch(observability.OutcomeSuccess, time.Since(started), len(records))
	c.logger.Debug().Int("count", len(records)).Dur("duration", time.Since(started)).Msg("Fetched Strava activities")
	return records, nil
}

func (c *Client) queryParams(params ListParams) map[string]string {
	page := params.Page
	if page <= 0 {
		page = 1
	}
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = c.defaultPerPage
	}

	query := map[string]string{
		"page":     strconv.Itoa(page),
		"per_page": strconv.Itoa(perPage),
	}
	if !params.Before.IsZero() {
		query["before"] = strconv.FormatInt(params.Before.Unix(), 10)
	}
	if !params.After.IsZero() {
		query["after"] = strconv.FormatInt(params.After.Unix(), 10)
	}
	return query
}
