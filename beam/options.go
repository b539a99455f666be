package beam

import "context"

// Option configures optional behavior of Traverse.
// Use with Traverse(g, entry, opts...).
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per processed state.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for every distinct State right after
	// it is marked visited. Returning an error aborts the traversal.
	OnVisit func(s State) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a visit hook.
func WithOnVisit(fn func(s State) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
