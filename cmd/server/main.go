// Strideboard
// A small API that turns a Strava activity history into dashboard rollups
// and relays client telemetry events to a collector.

package main

import (
	"go.uber.org/fx"

	"github.com/andrasnagy-data/strideboard/internal/components/strava"
	"github.com/andrasnagy-data/strideboard/internal/components/telemetry"
	"github.com/andrasnagy-data/strideboard/internal/server"
	"github.com/andrasnagy-data/strideboard/internal/shared/config"
	"github.com/andrasnagy-data/strideboard/internal/shared/logging"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			server.NewServer,
			server.NewHealthSrvc,
			server.NewHealthHandler,
			fx.Annotate(strava.NewClient, fx.As(new(strava.ActivitySource))),
			strava.NewService,
			fx.Annotate(strava.NewRouter, fx.ResultTags(`name:"stravaRouter"`)),
			telemetry.NewSink,
			telemetry.NewService,
			fx.Annotate(telemetry.NewRouter, fx.ResultTags(`name:"telemetryRouter"`)),
		),
		fx.Invoke(server.Register),
	).Run()
}
