package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrasnagy-data/strideboard/internal/shared/config"
)

func TestHTTPSinkPostsEvent(t *testing.T) {
	var got Event
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 101}`))
	}))
	t.Cleanup(srv.Close)

	sink := NewSink(&config.Config{TelemetryEndpoint: srv.URL + "/posts", HTTPTimeout: time.Second})
	event := Event{
		ID:        uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"),
		Type:      "button_press",
		Timestamp: time.Date(2024, time.June, 12, 9, 30, 0, 0, time.UTC),
	}

	require.NoError(t, sink.Send(context.Background(), event))
	assert.Equal(t, event, got)
	assert.Equal(t, "application/json", contentType)
}

func TestHTTPSinkRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	sink := NewSink(&config.Config{TelemetryEndpoint: srv.URL, HTTPTimeout: time.Second})
	err := sink.Send(context.Background(), Event{ID: uuid.New(), Type: "x", Timestamp: time.Now()})

	var sinkErr *SinkError
	require.ErrorAs(t, err, &sinkErr)
	assert.Equal(t, http.StatusServiceUnavailable, sinkErr.StatusCode)
}

func TestHTTPSinkTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	sink := NewSink(&config.Config{TelemetryEndpoint: srv.URL, HTTPTimeout: time.Second})
	err := sink.Send(context.Background(), Event{ID: uuid.New(), Type: "x"})

	assert.ErrorContains(t, err, "send event")
}
