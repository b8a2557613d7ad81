package main

import (
	"revwhois/internal/runner"

	"github.com/spf13/cobra"
)

func aggregateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "aggregate",
		Short:        "Rebuilds the domain lists from the result files already on disk",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			rec := a.recorder()
			defer a.flushMetrics(ctx, rec)

			_, _, err := runner.New(runner.Deps{
				Store:    a.store(),
				Reporter: a.reporter(cmd),
				Metrics:  rec,
			}).Aggregate(ctx, a.csv)

			return err //nolint: wrapcheck
		},
	}

	return cmd
}
