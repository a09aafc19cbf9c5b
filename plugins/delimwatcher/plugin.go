// Package delimwatcher provides live delimiter reloading for serialframe.
// When enabled, it watches the session's config file and applies changes
// to the `delimiters` key without restarting the session.
package delimwatcher

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/serialframe/internal/cliconfig"
	"github.com/bft-labs/serialframe/pkg/log"
	"github.com/bft-labs/serialframe/pkg/serialframe"
)

// Plugin implements config file watching for the delimiter set.
// It monitors the session's TOML config file and calls the session
// controller whenever the delimiters entry changes.
type Plugin struct {
	mu sync.RWMutex

	// Configuration
	debounceDelay time.Duration

	// Runtime state
	configFile string
	logger     serialframe.Logger
	controller serialframe.Controller
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	debounce   *time.Timer
}

// Config holds configuration options for the delimiter watcher plugin.
type Config struct {
	// DebounceDelay is the delay to wait after a file change before
	// reloading. Editors often write a file several times in a row.
	// Default: 100 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 100 * time.Millisecond,
	}
}

// New creates a new delimiter watcher plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}

	return &Plugin{
		debounceDelay: cfg.DebounceDelay,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "delimwatcher"
}

// Initialize sets up the plugin and starts the file watcher.
// The delimiters already active on the session are left alone; the
// watcher only reacts to changes made after startup.
func (p *Plugin) Initialize(ctx context.Context, cfg serialframe.PluginConfig) error {
	p.mu.Lock()
	p.configFile = cfg.ConfigFile
	p.logger = cfg.Logger
	p.controller = cfg.Controller
	p.mu.Unlock()

	if p.configFile == "" {
		p.logger.Warn("delimiter watcher disabled: no config file configured")
		return nil
	}

	// Create cancellable context for the watcher loop
	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("delimiter watcher initialized",
		log.String("file", p.configFile))

	// Start watcher loop
	p.wg.Add(1)
	go p.watchLoop(watchCtx)

	return nil
}

// Shutdown stops the file watcher.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	return nil
}

// watchLoop watches the config file's directory for changes.
// The directory is watched rather than the file itself: most editors
// replace the file on save, which drops a watch on the old inode.
func (p *Plugin) watchLoop(ctx context.Context) {
	defer p.wg.Done()

	dir := filepath.Dir(p.configFile)
	base := filepath.Base(p.configFile)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.logger.Error("delimiter watcher: failed to create watcher")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		p.logger.Error("delimiter watcher: failed to watch directory",
			log.String("dir", dir))
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.debounceReload(p.debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			_ = err // logged as generic error
			p.logger.Error("delimiter watcher: watcher error")
		}
	}
}

func (p *Plugin) debounceReload(delay time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	p.debounce = time.AfterFunc(delay, p.reload)
}

// reload re-reads the config file and applies its delimiter list.
// A file without a delimiters entry is ignored, not treated as empty.
func (p *Plugin) reload() {
	fc, err := cliconfig.LoadFileConfig(p.configFile)
	if err != nil {
		p.logger.Error("delimiter watcher: failed to reload config file",
			log.String("file", p.configFile))
		return
	}

	if fc.Delimiters == nil {
		p.logger.Debug("delimiter watcher: config file has no delimiters entry")
		return
	}

	delims, err := cliconfig.ParseDelimiters(fc.Delimiters)
	if err != nil {
		p.logger.Error("delimiter watcher: invalid delimiters in config file",
			log.Err(err))
		return
	}

	if err := p.controller.SetDelimiters(delims); err != nil {
		p.logger.Error("delimiter watcher: failed to apply delimiters",
			log.Err(err))
		return
	}

	p.logger.Info("delimiter watcher: applied delimiters from config file",
		log.String("delimiters", strings.Join(cliconfig.FormatDelimiters(delims), " ")))
}

// Ensure Plugin implements serialframe.Plugin.
var _ serialframe.Plugin = (*Plugin)(nil)
