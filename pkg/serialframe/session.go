package serialframe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bft-labs/serialframe/internal/adapters/serialport"
	"github.com/bft-labs/serialframe/internal/app"
	"github.com/bft-labs/serialframe/internal/ports"
	"github.com/bft-labs/serialframe/pkg/framing"
	"github.com/bft-labs/serialframe/pkg/log"
)

// Session frames a serial byte stream into messages and dispatches them
// to a Receiver. Use New() to create an instance, then Start() to begin
// pumping. Each transport gets its own Session; instances are
// independent and carry no shared state.
type Session struct {
	config    Config
	opts      options
	lifecycle *app.Lifecycle
	framer    *framing.Framer
	stats     *framing.Stats
	receiver  ports.Receiver
	logger    log.Logger

	// Plugin support
	plugins []Plugin

	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	transport ports.ByteTransport
}

var _ Controller = (*Session)(nil)

// New creates a new Session with the given configuration and receiver.
// The instance is created in StateStopped; call Start() to begin.
// Returns an error if the configuration is invalid.
func New(cfg Config, receiver Receiver, opts ...Option) (*Session, error) {
	if receiver == nil {
		return nil, fmt.Errorf("%w: receiver is required", ErrInvalidConfig)
	}

	// Set defaults
	cfg.SetDefaults()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate module version compatibility
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	// Apply options
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// A port is only needed when no transport is injected.
	if o.transport == nil && cfg.Port == "" {
		return nil, fmt.Errorf("%w: port is required when no transport is provided", ErrInvalidConfig)
	}

	// Create logger
	var logger log.Logger
	if o.logger != nil {
		logger = o.logger
	} else {
		logger = log.NewNoopLogger()
	}

	// Create event emitter wrapper
	var emitter eventEmitterWrapper
	if o.eventHandler != nil {
		emitter = eventEmitterWrapper{handler: o.eventHandler}
	}

	// Create lifecycle manager
	lifecycle := app.NewLifecycle(logger, &emitter)

	// Build the framer once; delimiters survive restarts.
	set, err := framing.NewDelimiterSet(cfg.Delimiters)
	if err != nil {
		return nil, err
	}
	stats := framing.NewStats()
	framer := framing.NewFramer(set, stats)

	return &Session{
		config:    cfg,
		opts:      o,
		lifecycle: lifecycle,
		framer:    framer,
		stats:     stats,
		receiver:  receiver,
		logger:    logger,
		plugins:   o.plugins,
	}, nil
}

// Start begins pumping the transport in the background.
// Returns immediately after starting the pump goroutine.
// Returns an error if already running or if startup fails.
// The provided context bounds the lifetime of the pump.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lifecycle.CanStart() {
		return ErrAlreadyRunning
	}

	// Transition to starting
	if err := s.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	// Create cancellable context
	runCtx, cancel := context.WithCancel(ctx)
	s.ctx = runCtx
	s.cancel = cancel
	s.lifecycle.SetCancel(cancel)

	// Open the transport
	transport := s.opts.transport
	opened := false
	if transport == nil {
		port, err := serialport.Open(serialport.Config{
			Name:     s.config.Port,
			BaudRate: s.config.BaudRate,
			DataBits: s.config.DataBits,
			Parity:   s.config.Parity,
			StopBits: s.config.StopBits,
		})
		if err != nil {
			s.logger.Error("failed to open port",
				log.String("port", s.config.Port),
				log.Err(err))
			cancel()
			_ = s.lifecycle.TransitionTo(app.StateCrashed, "open port failed")
			return err
		}
		transport = port
		opened = true
	}
	s.transport = transport

	// Initialize plugins
	pluginCfg := PluginConfig{
		Port:       s.config.Port,
		ConfigFile: s.config.ConfigFile,
		Logger:     s.logger,
		Controller: s,
	}
	for _, p := range s.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			s.logger.Error("plugin initialization failed",
				log.String("plugin", p.Name()),
				log.Err(err))
			cancel()
			if opened {
				_ = transport.Close()
			}
			_ = s.lifecycle.TransitionTo(app.StateCrashed, "plugin init failed: "+p.Name())
			return err
		}
		s.logger.Info("plugin initialized", log.String("plugin", p.Name()))
	}

	// Fresh queue per run: teardown drops its unread leftovers and a
	// restart must not see them.
	queue := framing.NewQueue()

	pump := app.NewPump(
		app.PumpConfig{ReadBufferSize: s.config.ReadBufferSize},
		transport, s.receiver, s.framer, queue, s.stats, s.logger, s.opts.tracer,
	)

	// Start the pump in a goroutine
	s.lifecycle.AddWorker()
	go func() {
		defer s.lifecycle.WorkerDone()

		// Transition to running
		if err := s.lifecycle.TransitionTo(app.StateRunning, "pump starting"); err != nil {
			s.logger.Error("failed to transition to running", log.Err(err))
			return
		}

		// Run the pump
		err := pump.Run(runCtx)

		// Teardown: drop whatever was queued but never dispatched.
		if n := queue.Close(); n > 0 {
			s.stats.AddMessagesDiscarded(n)
			s.logger.Debug("discarded queued messages", log.Int("count", n))
		}

		// Unterminated tail bytes do not survive a run.
		if pending := s.framer.Pending(); pending > 0 {
			s.logger.Debug("dropping unterminated bytes", log.Int("count", pending))
		}
		s.framer.Reset()

		_ = transport.Close()

		// Handle completion
		if err != nil && err != context.Canceled {
			s.logger.Error("pump error", log.Err(err))
			_ = s.lifecycle.TransitionTo(app.StateCrashed, err.Error())
			return
		}

		if err == nil && runCtx.Err() == nil {
			// Clean end of input with no Stop() in flight.
			_ = s.lifecycle.TransitionTo(app.StateStopping, "end of input")
			_ = s.lifecycle.TransitionTo(app.StateStopped, "end of input")
		}
	}()

	return nil
}

// Stop gracefully shuts down the session.
// Messages already dispatched stay delivered; queued ones are dropped
// and counted in Stats. Waits up to 30 seconds before forcing shutdown.
// Returns nil on graceful shutdown, ErrShutdownTimeout if forced.
func (s *Session) Stop() error {
	s.mu.Lock()

	if !s.lifecycle.CanStop() {
		s.mu.Unlock()
		return ErrNotRunning
	}

	// Transition to stopping
	if err := s.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		s.mu.Unlock()
		return err
	}

	// Cancel first so the pump treats the transport close as shutdown,
	// not as a device failure.
	if s.cancel != nil {
		s.cancel()
	}
	if s.transport != nil {
		_ = s.transport.Close()
	}

	s.mu.Unlock()

	// Wait for workers with timeout
	err := s.lifecycle.WaitWithTimeout(app.ShutdownTimeout)

	// Shutdown plugins (in reverse order)
	shutdownCtx := context.Background()
	for i := len(s.plugins) - 1; i >= 0; i-- {
		p := s.plugins[i]
		if shutdownErr := p.Shutdown(shutdownCtx); shutdownErr != nil {
			s.logger.Error("plugin shutdown failed",
				log.String("plugin", p.Name()),
				log.Err(shutdownErr))
		} else {
			s.logger.Info("plugin shutdown complete", log.String("plugin", p.Name()))
		}
	}

	// Transition to stopped
	if err != nil {
		_ = s.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
	} else {
		_ = s.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
	}

	return err
}

// Status returns the current lifecycle state.
// Safe to call concurrently from any goroutine.
func (s *Session) Status() State {
	return convertState(s.lifecycle.State())
}

// Send writes p to the transport. Returns the number of bytes written.
// Returns ErrNotRunning unless the session is in StateRunning.
func (s *Session) Send(p []byte) (int, error) {
	s.mu.RLock()
	transport := s.transport
	running := s.lifecycle.State() == app.StateRunning
	s.mu.RUnlock()

	if !running || transport == nil {
		return 0, ErrNotRunning
	}

	start := time.Now()
	n, err := transport.Write(p)
	if n > 0 {
		s.stats.AddBytesSent(n)
		if s.opts.tracer != nil {
			s.opts.tracer.TxBytes(p[:n])
		}
	}

	if err != nil {
		if s.opts.eventHandler != nil {
			s.opts.eventHandler.OnSendError(SendErrorEvent{Error: err, Bytes: n})
		}
		return n, err
	}

	if s.opts.eventHandler != nil {
		s.opts.eventHandler.OnSendComplete(SendCompleteEvent{Bytes: n, Duration: time.Since(start)})
	}
	return n, nil
}

// SetDelimiters replaces the delimiter set used for framing.
// The new set applies from the next framing pass; bytes already
// buffered are re-scanned with it. Safe to call while running.
func (s *Session) SetDelimiters(delims [][]byte) error {
	set, err := framing.NewDelimiterSet(delims)
	if err != nil {
		return err
	}
	return s.framer.SetDelimiters(set)
}

// Delimiters returns a copy of the active delimiter set.
func (s *Session) Delimiters() [][]byte {
	return s.framer.Delimiters().Bytes()
}

// Stats returns a snapshot of the session counters.
// Counters accumulate across restarts of the same Session.
func (s *Session) Stats() Stats {
	return convertStats(s.stats.Snapshot())
}

// Stats is a point-in-time copy of session counters.
type Stats struct {
	// BytesReceived counts raw bytes read from the transport.
	BytesReceived uint64
	// BytesSent counts bytes written via Send().
	BytesSent uint64
	// MessagesFramed counts messages cut out of the stream.
	MessagesFramed uint64
	// MessagesDispatched counts messages handed to the Receiver.
	MessagesDispatched uint64
	// MessagesDiscarded counts framed messages dropped at teardown.
	MessagesDiscarded uint64
	// FramingFaults counts aborted framing passes.
	FramingFaults uint64
	// NoDelimiterScans counts passes skipped because the delimiter set
	// was empty while bytes were buffered.
	NoDelimiterScans uint64
}

func convertStats(s framing.Snapshot) Stats {
	return Stats{
		BytesReceived:      s.BytesReceived,
		BytesSent:          s.BytesSent,
		MessagesFramed:     s.MessagesFramed,
		MessagesDispatched: s.MessagesDispatched,
		MessagesDiscarded:  s.MessagesDiscarded,
		FramingFaults:      s.FramingFaults,
		NoDelimiterScans:   s.NoDelimiterScans,
	}
}

// eventEmitterWrapper adapts EventHandler to the internal emitter interface.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func convertState(s app.State) State {
	switch s {
	case app.StateStopped:
		return StateStopped
	case app.StateStarting:
		return StateStarting
	case app.StateRunning:
		return StateRunning
	case app.StateStopping:
		return StateStopping
	case app.StateCrashed:
		return StateCrashed
	default:
		return StateStopped
	}
}

// validateModuleVersions checks that all module versions are compatible.
// Returns an error if any module version is below its minimum compatible version.
func validateModuleVersions() error {
	modules := map[string]struct {
		version    string
		minVersion string
	}{
		"framing": {framing.Version, framing.MinCompatibleVersion},
		"log":     {log.Version, log.MinCompatibleVersion},
	}

	for name, m := range modules {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}

	return nil
}

// isVersionCompatible checks if version >= minVersion using semantic versioning.
// Assumes versions are in format "major.minor.patch".
func isVersionCompatible(version, minVersion string) bool {
	// Parse versions (simplified semver comparison)
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}
