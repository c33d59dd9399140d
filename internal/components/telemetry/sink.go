package telemetry

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/andrasnagy-data/strideboard/internal/shared/config"
)

type (
	// Sink delivers a single event to a remote collector.
	Sink interface {
		Send(ctx context.Context, event Event) error
	}

	// SinkError is returned when the collector answers with a non-2xx status.
	SinkError struct {
		StatusCode int
	}

	httpSink struct {
		http     *resty.Client
		endpoint string
	}
)

func (e *SinkError) Error() string {
	return fmt.Sprintf("telemetry: sink responded with status %d", e.StatusCode)
}

func NewSink(cfg *config.Config) Sink {
	return &httpSink{
		http: resty.New().
			SetHeader("Content-Type", "application/json").
			SetTimeout(cfg.HTTPTimeout),
		endpoint: cfg.TelemetryEndpoint,
	}
}

func (s *httpSink) Send(ctx context.Context, event Event) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(event).
		Post(s.endpoint)
	if err != nil {
		return fmt.Errorf("telemetry: send event: %w", err)
	}
	if !resp.IsSuccess() {
		return &SinkError{StatusCode: resp.StatusCode()}
	}
	return nil
}
