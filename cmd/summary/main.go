package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print recent Strava activities with week and year totals",
		Long: `summary fetches the authenticated athlete's activities and prints the most
recent ones followed by this week's and this year's totals.

Configuration is read from the same environment variables as the server,
STRAVA_ACCESS_TOKEN being the only required one.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.topSet = cmd.Flags().Changed("top")
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.top, "top", 0, "number of recent activities to show (default DASHBOARD_TOP_N)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the dashboard as JSON")

	return cmd
}
