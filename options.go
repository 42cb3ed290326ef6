package mempool

import (
	"io"
	"log/slog"
)

type options struct {
	logger     *slog.Logger
	pageBacked bool
}

// Option configures pool and arena constructors.
type Option func(*options)

// WithLogger attaches a structured logger. Constructors log lifecycle
// events at Debug level; CheckedPool logs contract violations at Warn.
// If l is nil the default (discarding) logger is kept.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPageBacked makes the constructor obtain its BackingStore from the
// OS via NewPageStore instead of the Go heap.
func WithPageBacked() Option {
	return func(o *options) {
		o.pageBacked = true
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newStore picks the backing variant selected by the options.
func (o options) newStore(capacity int) (*BackingStore, error) {
	if o.pageBacked {
		return NewPageStore(capacity)
	}
	return NewStore(capacity)
}
