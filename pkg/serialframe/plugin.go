package serialframe

import "context"

// Plugin extends a Session with optional functionality.
// Plugins are initialized in registration order when the session starts
// and shut down in reverse order when it stops.
type Plugin interface {
	// Name returns a short identifier used in log output.
	Name() string

	// Initialize is called during Start(). Returning an error aborts
	// the start and moves the session to StateCrashed.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown is called during Stop(). Errors are logged but do not
	// interrupt the shutdown of other plugins.
	Shutdown(ctx context.Context) error
}

// PluginConfig carries session context into plugin initialization.
type PluginConfig struct {
	// Port is the configured serial device path, if any.
	Port string

	// ConfigFile is the TOML file the session configuration was loaded
	// from, if any.
	ConfigFile string

	// Logger is the session logger.
	Logger Logger

	// Controller exposes runtime control of the owning session.
	Controller Controller
}

// Controller exposes the parts of a session plugins may drive at runtime.
type Controller interface {
	// SetDelimiters replaces the delimiter set used for framing.
	// The new set applies from the next framing pass; buffered bytes
	// are re-scanned with it.
	SetDelimiters(delims [][]byte) error

	// Delimiters returns a copy of the active delimiter set.
	Delimiters() [][]byte

	// Stats returns a snapshot of the session counters.
	Stats() Stats
}

// BasePlugin provides default no-op implementations of the Plugin
// interface. Embed it to implement only the methods you need.
type BasePlugin struct {
	name string
}

// NewBasePlugin creates a BasePlugin with the given name.
func NewBasePlugin(name string) BasePlugin {
	return BasePlugin{name: name}
}

// Name returns the plugin name.
func (p BasePlugin) Name() string { return p.name }

// Initialize does nothing.
func (p BasePlugin) Initialize(ctx context.Context, cfg PluginConfig) error { return nil }

// Shutdown does nothing.
func (p BasePlugin) Shutdown(ctx context.Context) error { return nil }
