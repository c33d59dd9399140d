package logging

import (
	"io"
	"os"
	"time"

	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/andrasnagy-data/strideboard/internal/shared/config"
)

// NewLogger returns a pretty console logger outside production. In production it writes JSON
// to stderr and forwards error levels to Sentry; the Sentry writer is nil otherwise.
func NewLogger(cfg *config.Config) (zerolog.Logger, *sentryzerolog.Writer) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.IsEnvProd() {
		return newConsoleLogger(os.Stderr), nil
	}

	sentryWriter, err := sentryzerolog.New(sentryzerolog.Config{
		Options: sentryzerolog.Options{
			Levels:          []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
			WithBreadcrumbs: true,
			FlushTimeout:    3 * time.Second,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Sentry writer, using console only")
		return newConsoleLogger(os.Stderr), nil
	}

	multiWriter := zerolog.MultiLevelWriter(os.Stderr, sentryWriter)

	return zerolog.New(multiWriter).
		With().
		Timestamp().
		Caller().
		Str("version", cfg.Version).
		Str("environment", cfg.Environment).
		Logger(), sentryWriter
}

func newConsoleLogger(out io.Writer) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(consoleWriter).
		With().
		Timestamp().
		Caller().
		Logger()
}
