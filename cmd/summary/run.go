package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/andrasnagy-data/strideboard/internal/components/strava"
	"github.com/andrasnagy-data/strideboard/internal/shared/config"
	"github.com/andrasnagy-data/strideboard/internal/shared/logging"
)

type options struct {
	top    int
	topSet bool
	asJSON bool
}

func run(ctx context.Context, out io.Writer, opts *options) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.topSet {
		if opts.top < 0 {
			return fmt.Errorf("--top must not be negative, got %d", opts.top)
		}
		cfg.TopN = opts.top
	}

	logger, _ := logging.NewLogger(cfg)
	if !opts.asJSON {
		logger = logger.Level(zerolog.WarnLevel)
	}

	svc := strava.NewService(strava.NewClient(cfg, logger), cfg, logger)
	dashboard, err := svc.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("could not load activities: %w", err)
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dashboard)
	}
	return render(out, dashboard)
}

func render(out io.Writer, d *strava.DashboardOut) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Top %d recent activities\n", len(d.Recent))
	if len(d.Recent) == 0 {
		fmt.Fprintln(tw, "  (none)")
	}
	for _, a := range d.Recent {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%.2f mi\t%s\n", a.Date, a.Name, a.Type, a.DistanceMiles, a.MovingTime)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Window\tActivities\tMiles\tHours")
	for _, row := range []struct {
		label  string
		rollup strava.RollupOut
	}{
		{"This week", d.Week},
		{"This year", d.Year},
	} {
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\n", row.label, row.rollup.ActivityCount, row.rollup.DistanceMiles, row.rollup.MovingHours)
	}
	if d.Truncated {
		fmt.Fprintf(tw, "\nTotals cover the first %d activities of the window only.\n", strava.MaxPerPage)
	}

	return tw.Flush()
}
