package telemetry

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/strideboard/internal/shared/respond"
)

// maxEventBytes bounds the TrackEvent request body.
const maxEventBytes = 1 << 16

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

	router.Post("/events", r.TrackEvent)
	router.Get("/events", r.ListEvents)
	router.Get("/events/hourly", r.Hourly)

	return router
}

// TrackEvent sends a client event to the sink and echoes it back.
func (r *Router) TrackEvent(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	req.Body = http.MaxBytesReader(w, req.Body, maxEventBytes)

	var body TrackEventIn
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		logger.Warn().Err(err).Msg("Failed to decode event")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := r.service.Track(ctx, body)
	switch {
	case errors.Is(err, ErrEmptyType):
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.Error().Err(err).Msg("Error tracking event")
		respond.Error(w, http.StatusBadGateway, "failed to send event")
		return
	}

	respond.JSON(w, http.StatusCreated, event)
}

func (r *Router) ListEvents(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, r.service.ListEvents())
}

// Hourly returns the events per hour of day.
func (r *Router) Hourly(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, r.service.Hourly())
}
