package telemetry

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, svc servicer, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	NewRouter(svc).ServeHTTP(rr, req)
	return rr
}

func TestTrackEventRoute(t *testing.T) {
	svc := newTestService(&fakeSink{})

	rr := do(t, svc, http.MethodPost, "/events", `{"type":"button_press"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var event Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &event))
	assert.Equal(t, "button_press", event.Type)

	rr = do(t, svc, http.MethodGet, "/events", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list ListEventsOut
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)

	rr = do(t, svc, http.MethodGet, "/events/hourly", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var hourly HourlyOut
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hourly))
	assert.Equal(t, 1, hourly.Hours[14])
}

func TestTrackEventRouteErrors(t *testing.T) {
	tests := []struct {
		name string
		sink *fakeSink
		body string
		code int
	}{
		{name: "bad json", sink: &fakeSink{}, body: `{`, code: http.StatusBadRequest},
		{name: "missing type", sink: &fakeSink{}, body: `{}`, code: http.StatusBadRequest},
		{name: "oversized body", sink: &fakeSink{}, body: `{"type":"` + strings.Repeat("x", maxEventBytes) + `"}`, code: http.StatusRequestEntityTooLarge},
		{name: "sink failure", sink: &fakeSink{err: errors.New("down")}, body: `{"type":"tap"}`, code: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, newTestService(tt.sink), http.MethodPost, "/events", tt.body)
			assert.Equal(t, tt.code, rr.Code)
		})
	}
}
