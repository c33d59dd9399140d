package telemetry

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Event is the record posted to the event sink.
	Event struct {
		ID        uuid.UUID `json:"id"`
		Type      string    `json:"type"`
		Timestamp time.Time `json:"timestamp"`
	}

	TrackEventIn struct {
		Type string `json:"type"`
	}

	ListEventsOut struct {
		Events []Event `json:"events"`
		Count  int     `json:"count"`
	}

	HourlyOut struct {
		Hours    [24]int `json:"hours"`
		Timezone string  `json:"timezone"`
	}
)
