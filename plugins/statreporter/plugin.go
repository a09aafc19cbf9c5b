// Package statreporter provides periodic session counter logging for
// serialframe. When enabled, it logs a stats snapshot at a fixed interval
// so long-running sessions leave a byte and message trail in the log.
package statreporter

import (
	"context"
	"sync"
	"time"

	"github.com/bft-labs/serialframe/pkg/log"
	"github.com/bft-labs/serialframe/pkg/serialframe"
)

// Plugin implements periodic stats reporting.
// Each tick it snapshots the session counters and logs the deltas worth
// watching: bytes moved, messages framed and dispatched, faults.
type Plugin struct {
	mu sync.RWMutex

	// Configuration
	interval time.Duration

	// Runtime state
	logger     serialframe.Logger
	controller serialframe.Controller
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// Config holds configuration options for the stat reporter plugin.
type Config struct {
	// Interval is the time between stats log lines.
	// Default: 30 seconds
	Interval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval: 30 * time.Second,
	}
}

// New creates a new stat reporter plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}

	return &Plugin{
		interval: cfg.Interval,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "statreporter"
}

// Initialize sets up the plugin and starts the reporting loop.
func (p *Plugin) Initialize(ctx context.Context, cfg serialframe.PluginConfig) error {
	p.mu.Lock()
	p.logger = cfg.Logger
	p.controller = cfg.Controller
	p.mu.Unlock()

	reportCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("stat reporter initialized",
		log.Duration("interval", p.interval))

	p.wg.Add(1)
	go p.reportLoop(reportCtx)

	return nil
}

// Shutdown stops the reporting loop. A final snapshot is logged so the
// last partial interval is not lost.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	p.report()
	return nil
}

// reportLoop logs a stats snapshot every interval until canceled.
func (p *Plugin) reportLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.report()
		}
	}
}

func (p *Plugin) report() {
	p.mu.RLock()
	controller := p.controller
	logger := p.logger
	p.mu.RUnlock()

	if controller == nil {
		return
	}

	stats := controller.Stats()
	logger.Info("session stats",
		log.Uint64("bytes_received", stats.BytesReceived),
		log.Uint64("bytes_sent", stats.BytesSent),
		log.Uint64("messages_framed", stats.MessagesFramed),
		log.Uint64("messages_dispatched", stats.MessagesDispatched),
		log.Uint64("messages_discarded", stats.MessagesDiscarded),
		log.Uint64("framing_faults", stats.FramingFaults),
		log.Uint64("no_delimiter_scans", stats.NoDelimiterScans),
	)
}

// Ensure Plugin implements serialframe.Plugin.
var _ serialframe.Plugin = (*Plugin)(nil)
