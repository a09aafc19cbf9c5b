package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bft-labs/serialframe/internal/adapters/serialport"
	"github.com/bft-labs/serialframe/internal/adapters/stdio"
	"github.com/bft-labs/serialframe/internal/app"
	"github.com/bft-labs/serialframe/internal/cliconfig"
	sflog "github.com/bft-labs/serialframe/pkg/log"
	"github.com/bft-labs/serialframe/pkg/serialframe"
	"github.com/bft-labs/serialframe/plugins/delimwatcher"
	"github.com/bft-labs/serialframe/plugins/statreporter"
)

const helpBanner = `
███████╗███████╗██████╗ ██╗ █████╗ ██╗     ███████╗██████╗  █████╗ ███╗   ███╗███████╗
██╔════╝██╔════╝██╔══██╗██║██╔══██╗██║     ██╔════╝██╔══██╗██╔══██╗████╗ ████║██╔════╝
███████╗█████╗  ██████╔╝██║███████║██║     █████╗  ██████╔╝███████║██╔████╔██║█████╗
╚════██║██╔══╝  ██╔══██╗██║██╔══██║██║     ██╔══╝  ██╔══██╗██╔══██║██║╚██╔╝██║██╔══╝
███████║███████╗██║  ██║██║██║  ██║███████╗██║     ██║  ██║██║  ██║██║ ╚═╝ ██║███████╗
╚══════╝╚══════╝╚═╝  ╚═╝╚═╝╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝
`

const helpDescription = `
Frame a serial byte stream into delimiter-terminated messages.

Highlights:
  - Reassembles arbitrarily split chunks; messages come out whole, in order.
  - Multiple delimiters with declaration-order precedence (\n, \r\n, custom bytes).
  - Live delimiter reload from the config file; periodic stats reporting.
  - Configure via file, env (SERIALFRAME_*), or flags.

Docs: https://github.com/bft-labs/serialframe
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  serialframe --port /dev/ttyUSB0 --baud 115200
  serialframe --port COM3 --delimiter '\r\n' --delimiter '\n'
  serialframe --stdin --delimiter ';'
  serialframe --list-ports
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var debugLog bool

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "serialframe",
		Short:   "Frame a serial byte stream into delimiter-terminated messages",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.serialframe/config.toml),
			// then apply env and flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			} else {
				cfgFile = ""
			}

			// Apply environment variables (SERIALFRAME_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if debugLog || cfg.TraceHex {
				cliconfig.SetDebug()
			}

			if cfg.ListPorts {
				return listPorts()
			}

			// Validate and set derived defaults
			if err := cfg.Validate(); err != nil {
				return err
			}
			if !cfg.Stdin && !serialport.ValidBaudRate(cfg.BaudRate) {
				log.Warn().Int("baud", cfg.BaudRate).Msg("nonstandard baud rate")
			}

			log.Info().Interface("config", cfg).Msg("configuration")

			delims, err := cliconfig.ParseDelimiters(cfg.Delimiters)
			if err != nil {
				return err
			}

			// Convert cliconfig.Config to serialframe.Config
			libCfg := serialframe.Config{
				Port:           cfg.Port,
				BaudRate:       cfg.BaudRate,
				DataBits:       cfg.DataBits,
				Parity:         cfg.Parity,
				StopBits:       cfg.StopBits,
				Delimiters:     delims,
				ReadBufferSize: cfg.ReadBufferSize,
				ConfigFile:     cfgFile,
			}

			// Create zerolog adapter for the library
			zerologAdapter := sflog.NewZerologAdapterWithLogger(log)

			opts := []serialframe.Option{
				serialframe.WithLogger(zerologAdapter),
			}
			if cfg.Stdin {
				opts = append(opts, serialframe.WithTransport(stdio.Transport{}))
			}
			if cfg.TraceHex {
				opts = append(opts, serialframe.WithTracer(hexTracer{log: log}))
			}
			if cfg.WatchConfig {
				opts = append(opts, delimwatcher.WithDefaultDelimiterWatcher())
			}
			if cfg.StatsInterval > 0 {
				opts = append(opts, statreporter.WithInterval(cfg.StatsInterval))
			}

			s, err := serialframe.New(libCfg, &messagePrinter{log: log}, opts...)
			if err != nil {
				return fmt.Errorf("create session: %w", err)
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			// Stdin is a one-shot stream; reconnecting to it makes no sense.
			reconnect := cfg.Reconnect && !cfg.Stdin

			backoff := app.NewBackoff(app.DefaultBackoffInitial, app.DefaultBackoffMax)
			for {
				status, err := runSession(ctx, s, backoff)

				if ctx.Err() != nil {
					// Signal shutdown; the session was already stopped.
					return err
				}
				if status == serialframe.StateStopped {
					// Clean end of input.
					return nil
				}
				if err == nil {
					err = errors.New("session crashed")
				}
				if !reconnect {
					return err
				}

				log.Warn().Err(err).Dur("backoff", backoff.Current()).Msg("reconnecting")
				if err := backoff.Sleep(ctx); err != nil {
					return nil
				}
			}
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.serialframe/config.toml)")
	root.Flags().StringVar(&cfg.Port, "port", cfg.Port, "serial device path, e.g. /dev/ttyUSB0 or COM3")
	root.Flags().IntVar(&cfg.BaudRate, "baud", cfg.BaudRate, "baud rate, e.g. 9600 or 115200")
	root.Flags().IntVar(&cfg.DataBits, "data-bits", cfg.DataBits, "data bits per character (5-8)")
	root.Flags().StringVar(&cfg.Parity, "parity", cfg.Parity, "parity: none, odd, even, mark, space")
	root.Flags().StringVar(&cfg.StopBits, "stop-bits", cfg.StopBits, "stop bits: 1, 1.5, 2")

	root.Flags().StringArrayVar(&cfg.Delimiters, "delimiter", cfg.Delimiters, `message delimiter in escaped form, e.g. '\n' or '\r\n'; repeat for multiple (order sets precedence)`)
	root.Flags().IntVar(&cfg.ReadBufferSize, "read-buffer", cfg.ReadBufferSize, "transport read buffer size in bytes")
	root.Flags().DurationVar(&cfg.StatsInterval, "stats-interval", cfg.StatsInterval, "log session stats at this interval (0 disables)")

	root.Flags().BoolVar(&cfg.Reconnect, "reconnect", cfg.Reconnect, "reopen the port with backoff after a failure")
	root.Flags().BoolVar(&cfg.TraceHex, "trace-hex", cfg.TraceHex, "log raw rx/tx bytes as hex (implies --debug)")
	root.Flags().BoolVar(&cfg.WatchConfig, "watch-config", cfg.WatchConfig, "reload delimiters when the config file changes")

	root.Flags().BoolVar(&cfg.Stdin, "stdin", cfg.Stdin, "read from standard input instead of a serial port")
	root.Flags().BoolVar(&cfg.ListPorts, "list-ports", cfg.ListPorts, "list available serial ports and exit")
	root.Flags().BoolVar(&debugLog, "debug", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("serialframe")
		os.Exit(1)
	}
}

// runSession starts the session and blocks until it reaches a terminal
// state or the context is canceled. The backoff resets once the session
// is seen running, so a port that stays up earns a fresh retry budget.
func runSession(ctx context.Context, s *serialframe.Session, backoff *app.Backoff) (serialframe.State, error) {
	if err := s.Start(ctx); err != nil {
		return s.Status(), fmt.Errorf("start session: %w", err)
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := s.Stop(); err != nil && !errors.Is(err, serialframe.ErrNotRunning) {
				return s.Status(), err
			}
			return s.Status(), nil
		case <-ticker.C:
			switch status := s.Status(); status {
			case serialframe.StateRunning:
				backoff.Reset()
			case serialframe.StateStopped, serialframe.StateCrashed:
				return status, nil
			}
		}
	}
}

func listPorts() error {
	ports, err := serialport.ListPorts()
	if err != nil {
		return fmt.Errorf("list ports: %w", err)
	}
	if len(ports) == 0 {
		fmt.Println("no serial ports found")
		return nil
	}
	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}

// messagePrinter writes each framed message to stdout as it arrives.
// Messages keep their terminating delimiter, so the output reads exactly
// like the wire did.
type messagePrinter struct {
	log zerolog.Logger
}

func (r *messagePrinter) OnMessage(msg serialframe.Message) {
	_, _ = os.Stdout.Write(msg.Data)
}

func (r *messagePrinter) OnError(err error) {
	r.log.Error().Err(err).Msg("stream error")
}

// hexTracer logs raw line traffic at debug level.
type hexTracer struct {
	log zerolog.Logger
}

func (t hexTracer) RxBytes(p []byte) {
	t.log.Debug().Hex("rx", p).Int("len", len(p)).Msg("serial rx")
}

func (t hexTracer) TxBytes(p []byte) {
	t.log.Debug().Hex("tx", p).Int("len", len(p)).Msg("serial tx")
}
