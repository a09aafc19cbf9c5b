package delimwatcher

import "github.com/bft-labs/serialframe/pkg/serialframe"

// WithDelimiterWatcher returns a serialframe Option that enables live
// delimiter reloading. When enabled, the plugin monitors the session's
// config file and applies delimiter changes without a restart.
//
// Usage:
//
//	s, err := serialframe.New(cfg, receiver,
//	    delimwatcher.WithDelimiterWatcher(delimwatcher.Config{
//	        DebounceDelay: 100 * time.Millisecond,
//	    }),
//	)
func WithDelimiterWatcher(cfg Config) serialframe.Option {
	plugin := New(cfg)
	return serialframe.WithPlugin(plugin)
}

// WithDefaultDelimiterWatcher returns a serialframe Option that enables
// delimiter watching with default settings (debounce 100ms).
//
// Usage:
//
//	s, err := serialframe.New(cfg, receiver, delimwatcher.WithDefaultDelimiterWatcher())
func WithDefaultDelimiterWatcher() serialframe.Option {
	return WithDelimiterWatcher(DefaultConfig())
}
