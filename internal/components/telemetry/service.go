package telemetry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andrasnagy-data/strideboard/internal/shared/config"
	"github.com/andrasnagy-data/strideboard/internal/shared/observability"
)

var (
	ErrEmptyType = errors.New("event type is required")
)

type (
	servicer interface {
		Track(ctx context.Context, req TrackEventIn) (*Event, error)
		ListEvents() ListEventsOut
		Hourly() HourlyOut
	}

	service struct {
		sink    Sink
		journal *journal
		logger  zerolog.Logger
		loc     *time.Location
		now     func() time.Time
		newID   func() uuid.UUID
	}
)

func NewService(sink Sink, cfg *config.Config, logger zerolog.Logger) servicer {
	return &service{
		sink:    sink,
		journal: newJournal(cfg.TelemetryJournalSize),
		logger:  logger.With().Str("component", "telemetry").Logger(),
		loc:     cfg.Location(),
		now:     time.Now,
		newID:   uuid.New,
	}
}

// Track stamps a new event, posts it to the sink and journals it once delivered.
// Events the sink rejects are not journaled.
func (s *service) Track(ctx context.Context, req TrackEventIn) (*Event, error) {
	eventType := strings.TrimSpace(req.Type)
	if eventType == "" {
		return nil, ErrEmptyType
	}

	event := Event{
		ID:        s.newID(),
		Type:      eventType,
		Timestamp: s.now().UTC(),
	}

	if err := s.sink.Send(ctx, event); err != nil {
		observability.RecordTelemetryEvent(observability.OutcomeFailure)
		s.logger.Error().Err(err).Str("event_id", event.ID.String()).Str("type", event.Type).Msg("Failed to send event")
		return nil, err
	}

	observability.RecordTelemetryEvent(observability.OutcomeSuccess)
	s.journal.add(event)
	s.logger.Debug().Str("event_id", event.ID.String()).Str("type", event.Type).Msg("Event sent")
	return &event, nil
}

func (s *service) ListEvents() ListEventsOut {
	events := s.journal.recent()
	return ListEventsOut{Events: events, Count: len(events)}
}

func (s *service) Hourly() HourlyOut {
	return HourlyOut{
		Hours:    HourlyCounts(s.journal.recent(), s.loc),
		Timezone: s.loc.String(),
	}
}
