package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/beamgrid/beam"
)

func newEnergizeCmd(a *app) *cobra.Command {
	var (
		row, col int
		dir      string
	)
	cmd := &cobra.Command{
		Use:   "energize FILE",
		Short: "Count energized cells for one entry (default: top-left heading East)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.cfg.EntryState()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("row") {
				entry.Pos.Row = row
			}
			if flags.Changed("col") {
				entry.Pos.Col = col
			}
			if flags.Changed("dir") {
				if entry.Dir, err = beam.ParseDirection(dir); err != nil {
					return err
				}
			}

			start := time.Now()
			g, err := readGrid(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			n, err := beam.CoverageFrom(g, entry, beam.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			a.logger.Info("energize complete",
				zap.String("file", args[0]),
				zap.Stringer("entry", entry),
				zap.Int("energized", n),
				zap.Duration("elapsed", time.Since(start)))

			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().IntVar(&row, "row", 0, "entry row")
	cmd.Flags().IntVar(&col, "col", 0, "entry column")
	cmd.Flags().StringVar(&dir, "dir", "east", "entry heading (north, east, south, west)")
	return cmd
}
