// Command beamgrid energizes mirror contraptions.
//
//	beamgrid energize FILE [--row R --col C --dir east]
//	beamgrid maximize FILE [--workers N]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/beamgrid/grid"
	"github.com/katalvlaran/beamgrid/internal/config"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "beamgrid",
		Short: "Count the cells a light beam energizes in a mirror contraption",
		Long: `beamgrid reads a grid of '.', '/', '\', '-' and '|' cells and follows a
beam of light through it. Mirrors turn the beam, splitters hit across their
axis split it in two, and every tile the beam passes through is energized.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")

	root.AddCommand(newEnergizeCmd(a), newMaximizeCmd(a))
	return root
}

// setup loads configuration and, unless one was injected, builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger != nil {
		return nil
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))
	return nil
}

// readGrid parses the grid at path; "-" reads from in.
func readGrid(path string, in io.Reader) (*grid.Grid, error) {
	if path == "-" {
		return grid.ParseReader(in)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := grid.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
