package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/beamgrid/maximize"
)

func newMaximizeCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "maximize FILE",
		Short: "Find the edge entry that energizes the most cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			opts := []maximize.Option{maximize.WithLogger(a.logger)}
			if workers > 0 {
				opts = append(opts, maximize.WithWorkers(workers))
			} else if workers < 0 {
				return fmt.Errorf("--workers must be positive, got %d", workers)
			}

			start := time.Now()
			g, err := readGrid(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := maximize.MaxCoverage(cmd.Context(), g, opts...)
			if err != nil {
				return err
			}
			a.logger.Info("maximize complete",
				zap.String("file", args[0]),
				zap.Stringer("entry", res.Entry),
				zap.Int("energized", res.Max),
				zap.Int("entries", res.Entries),
				zap.Duration("elapsed", time.Since(start)))

			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%v\n", res.Max, res.Entry)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent traversals (0: config or GOMAXPROCS)")
	return cmd
}
