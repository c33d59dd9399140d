package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrasnagy-data/strideboard/internal/components/activity"
	"github.com/andrasnagy-data/strideboard/internal/components/strava"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := render(&buf, &strava.DashboardOut{
		Recent: []strava.ActivityOut{{
			Record:        activity.Record{Name: "Morning Run", Type: "Run"},
			Date:          "2024-06-11",
			DistanceMiles: 3.11,
			MovingTime:    "00:25:00",
		}},
		Week: strava.RollupOut{Rollup: activity.Rollup{ActivityCount: 2}, DistanceMiles: 6.2, MovingHours: 1.1},
		Year: strava.RollupOut{Rollup: activity.Rollup{ActivityCount: 40}, DistanceMiles: 210.4, MovingHours: 35},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Top 1 recent activities")
	assert.Contains(t, out, "Morning Run")
	assert.Contains(t, out, "3.11 mi")
	assert.Contains(t, out, "00:25:00")
	assert.Regexp(t, `This week\s+2\s+6\.2\s+1\.1`, out)
	assert.Regexp(t, `This year\s+40\s+210\.4\s+35\.0`, out)
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, &strava.DashboardOut{}))
	assert.Contains(t, buf.String(), "(none)")
}

func TestRunAgainstStubbedStrava(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Ride", "type": "Ride", "start_date": "2020-01-01T10:00:00Z", "distance": 1000, "moving_time": 60}]`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("STRAVA_ACCESS_TOKEN", "t")
	t.Setenv("STRAVA_BASE_URL", srv.URL)
	t.Setenv("TIMEZONE", "UTC")

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, &options{asJSON: true}))
	assert.Contains(t, buf.String(), `"name": "Ride"`)
}

func TestRunSurfacesUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("STRAVA_ACCESS_TOKEN", "t")
	t.Setenv("STRAVA_BASE_URL", srv.URL)

	err := run(context.Background(), &bytes.Buffer{}, &options{})
	assert.ErrorContains(t, err, "could not load activities")
}

func TestRenderTruncatedNote(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, &strava.DashboardOut{Truncated: true}))
	assert.Contains(t, buf.String(), "first 200 activities of the window only")

	buf.Reset()
	require.NoError(t, render(&buf, &strava.DashboardOut{}))
	assert.NotContains(t, buf.String(), "window only")
}

func stubStrava(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Ride", "type": "Ride", "start_date": "2020-01-01T10:00:00Z", "distance": 1000, "moving_time": 60}]`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("STRAVA_ACCESS_TOKEN", "t")
	t.Setenv("STRAVA_BASE_URL", srv.URL)
	t.Setenv("TIMEZONE", "UTC")
}

func TestRunTopZero(t *testing.T) {
	stubStrava(t)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, &options{top: 0, topSet: true, asJSON: true}))
	assert.Contains(t, buf.String(), `"recent": []`)
	assert.NotContains(t, buf.String(), `"name": "Ride"`)
}

func TestRunTopNegative(t *testing.T) {
	stubStrava(t)

	err := run(context.Background(), &bytes.Buffer{}, &options{top: -1, topSet: true})
	assert.ErrorContains(t, err, "--top must not be negative")
}

func TestTopFlagMarksChanged(t *testing.T) {
	stubStrava(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--top", "0", "--json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"recent": []`)
}
