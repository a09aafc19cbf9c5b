package statreporter

import (
	"time"

	"github.com/bft-labs/serialframe/pkg/serialframe"
)

// WithStatReporter returns a serialframe Option that enables periodic
// stats logging at the given interval.
//
// Usage:
//
//	s, err := serialframe.New(cfg, receiver,
//	    statreporter.WithStatReporter(statreporter.Config{
//	        Interval: 10 * time.Second,
//	    }),
//	)
func WithStatReporter(cfg Config) serialframe.Option {
	plugin := New(cfg)
	return serialframe.WithPlugin(plugin)
}

// WithDefaultStatReporter returns a serialframe Option that enables stats
// logging with default settings (every 30s).
//
// Usage:
//
//	s, err := serialframe.New(cfg, receiver, statreporter.WithDefaultStatReporter())
func WithDefaultStatReporter() serialframe.Option {
	return WithStatReporter(DefaultConfig())
}

// WithInterval returns a serialframe Option that enables stats logging at
// the given interval. Shorthand for WithStatReporter with one field set.
func WithInterval(interval time.Duration) serialframe.Option {
	return WithStatReporter(Config{Interval: interval})
}
