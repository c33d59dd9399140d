package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/strideboard/internal/shared/config"
)

type (
	// HealthSrvc reports process liveness
	HealthSrvc struct {
		version   string
		startedAt time.Time
		now       func() time.Time
	}

	// HealthResponse represents the response structure for health check endpoint
	HealthResponse struct {
		Status        string    `json:"status"`
		Version       string    `json:"version"`
		Timestamp     time.Time `json:"timestamp"`
		UptimeSeconds int64     `json:"uptime_seconds"`
	}

	// HealthHandler is the GET /health handler
	HealthHandler http.HandlerFunc
)

func NewHealthHandler(srvc *HealthSrvc) HealthHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := hlog.FromRequest(r)

		response := srvc.check()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error().Err(err).Msg("Failed to encode health check response")
			return
		}
		logger.Debug().Msg("Healthcheck ok")
	}
}

func NewHealthSrvc(cfg *config.Config) *HealthSrvc {
	return &HealthSrvc{
		version:   cfg.Version,
		startedAt: time.Now().UTC(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *HealthSrvc) check() HealthResponse {
	now := s.now()
	return HealthResponse{
		Status:        "serving",
		Version:       s.version,
		Timestamp:     now,
		UptimeSeconds: int64(now.Sub(s.startedAt).Seconds()),
	}
}
