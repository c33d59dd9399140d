package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"go.uber.org/fx"

	"github.com/andrasnagy-data/strideboard/internal/shared/config"
)

type (
	// Server represents the HTTP server with all dependencies
	Server struct {
		server       *http.Server
		config       *config.Config
		logger       zerolog.Logger
		sentryWriter *sentryzerolog.Writer
	}

	Params struct {
		fx.In

		Config          *config.Config
		Logger          zerolog.Logger
		HealthHandler   HealthHandler
		SentryWriter    *sentryzerolog.Writer
		StravaRouter    chi.Router `name:"stravaRouter"`
		TelemetryRouter chi.Router `name:"telemetryRouter"`
	}
)

func NewServer(p Params) *Server {
	r := chi.NewRouter()

	if p.Config.IsEnvProd() {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              p.Config.SentryDSN,
			Environment:      p.Config.Environment,
			Release:          p.Config.Version,
			AttachStacktrace: true,
			EnableTracing:    true,
			TracesSampler: sentry.TracesSampler(func(ctx sentry.SamplingContext) float64 {
				if ctx.Span.Name == "GET /health" || ctx.Span.Name == "GET /metrics" {
					return 0.0
				}
				return 1.0
			}),
		})
		if err != nil {
			p.Logger.Error().Err(err).Msg("Failed to initialize Sentry")
		} else {
			p.Logger.Debug().Str("environment", p.Config.Environment).Msg("Sentry initialized")
		}

		// Recover only in prod
		r.Use(sentryhttp.New(sentryhttp.Options{}).Handle)
	}

	r.Use(middleware(p.Logger)...)

	r.Get("/health", http.HandlerFunc(p.HealthHandler))
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/strava", p.StravaRouter)
	r.Mount("/telemetry", p.TelemetryRouter)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", p.Config.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		config:       p.Config,
		logger:       p.Logger.With().Str("component", "server").Logger(),
		server:       server,
		sentryWriter: p.SentryWriter,
	}
}

// middleware is the chain applied to every route
func middleware(logger zerolog.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		hlog.NewHandler(logger),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("url", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("HTTP request")
		}),
		hlog.RequestIDHandler("req_id", "Request-Id"),
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Request-Id"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
	}
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func Register(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: s.start,
		OnStop:  s.stop,
	})
}

// start starts the HTTP server
func (s *Server) start(_ context.Context) error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Str("environment", s.config.Environment).
		Bool("sentry_enabled", s.config.IsEnvProd()).
		Msg("Starting HTTP server")
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("Server failed to start")
		}
	}()

	return nil
}

// stop gracefully shuts down the HTTP server
func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	s.logger.Info().Msg("Shutting down HTTP server...")

	if s.config.IsEnvProd() {
		s.logger.Info().Msg("Flushing Sentry client and writer")
		if s.sentryWriter != nil {
			s.sentryWriter.Close()
		}
		sentry.Flush(2 * time.Second)
	}

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("Error during server shutdown")
		return err
	}

	s.logger.Info().Msg("HTTP server shutdown completed")
	return nil
}
