package maximize

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures MaxCoverage.
type Option func(*config)

type config struct {
	workers int
	logger  *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers bounds the number of concurrent traversals. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("maximize: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger installs a logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("maximize: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
