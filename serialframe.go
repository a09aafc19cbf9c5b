// Package serialframe frames a serial byte stream into delimiter-terminated
// messages with a single blocking call.
//
// Example usage:
//
//	cfg := serialframe.DefaultConfig()
//	if err := serialframe.LoadConfigFile(&cfg, ""); err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Port = "/dev/ttyUSB0"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := serialframe.Run(context.Background(), cfg, recv); err != nil {
//	    log.Fatal(err)
//	}
//
// recv implements [Receiver] and is handed each framed message in order.
// For lifecycle control, plugins, and dependency injection, use the session
// API in pkg/serialframe instead.
package serialframe

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/serialframe/internal/adapters/serialport"
	"github.com/bft-labs/serialframe/internal/adapters/stdio"
	"github.com/bft-labs/serialframe/internal/app"
	"github.com/bft-labs/serialframe/internal/cliconfig"
	"github.com/bft-labs/serialframe/internal/domain"
	"github.com/bft-labs/serialframe/internal/ports"
	session "github.com/bft-labs/serialframe/pkg/serialframe"
)

// Config holds the configuration for a framing run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// Message is a single framed message, delimiter included.
type Message = domain.Message

// Receiver is handed each framed message exactly once, in stream order.
type Receiver = ports.Receiver

// Run frames the configured stream until the context is cancelled, the
// stream ends, or an unrecoverable error occurs. With cfg.Reconnect set,
// port failures are retried with backoff instead of returning.
// Use cfg.Stdin = true to read from standard input instead of a port.
func Run(ctx context.Context, cfg Config, r Receiver) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	delims, err := cliconfig.ParseDelimiters(cfg.Delimiters)
	if err != nil {
		return err
	}

	var opts []session.Option
	if cfg.Stdin {
		opts = append(opts, session.WithTransport(stdio.Transport{}))
	}

	s, err := session.New(session.Config{
		Port:           cfg.Port,
		BaudRate:       cfg.BaudRate,
		DataBits:       cfg.DataBits,
		Parity:         cfg.Parity,
		StopBits:       cfg.StopBits,
		Delimiters:     delims,
		ReadBufferSize: cfg.ReadBufferSize,
	}, r, opts...)
	if err != nil {
		return err
	}

	// Stdin is a one-shot stream; reconnecting to it makes no sense.
	reconnect := cfg.Reconnect && !cfg.Stdin

	backoff := app.NewBackoff(app.DefaultBackoffInitial, app.DefaultBackoffMax)
	for {
		state, err := awaitTerminal(ctx, s, backoff)

		if ctx.Err() != nil {
			return err
		}
		if state == session.StateStopped {
			return nil
		}
		if err == nil {
			err = errors.New("session crashed")
		}
		if !reconnect {
			return err
		}
		if err := backoff.Sleep(ctx); err != nil {
			return nil
		}
	}
}

// awaitTerminal starts the session and blocks until it reaches a terminal
// state or the context is canceled. The backoff resets once the session is
// seen running, so a port that stays up earns a fresh retry budget.
func awaitTerminal(ctx context.Context, s *session.Session, backoff *app.Backoff) (session.State, error) {
	if err := s.Start(ctx); err != nil {
		return s.Status(), err
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := s.Stop(); err != nil && !errors.Is(err, session.ErrNotRunning) {
				return s.Status(), err
			}
			return s.Status(), nil
		case <-ticker.C:
			switch state := s.Status(); state {
			case session.StateRunning:
				backoff.Reset()
			case session.StateStopped, session.StateCrashed:
				return state, nil
			}
		}
	}
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, set Port (or Stdin) before calling Run.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// LoadConfigFile applies settings from a TOML config file to cfg.
// An empty path means the default location ($HOME/.serialframe/config.toml);
// a default-path file that does not exist is skipped. Fields the file does
// not carry keep their current values.
func LoadConfigFile(cfg *Config, path string) error {
	if path == "" {
		path = cliconfig.DefaultConfigPath()
		if !cliconfig.FileExists(path) {
			return nil
		}
	}
	fc, err := cliconfig.LoadFileConfig(path)
	if err != nil {
		return err
	}
	return cliconfig.ApplyFileConfig(cfg, fc, nil)
}

// ListPorts enumerates serial devices on this machine in natural order,
// so ttyUSB10 sorts after ttyUSB2.
func ListPorts() ([]string, error) {
	return serialport.ListPorts()
}

// SupportedBaudRates returns the standard baud rate ladder, lowest first.
func SupportedBaudRates() []int {
	return append([]int(nil), serialport.SupportedBaudRates...)
}

// ParseDelimiter converts an escaped delimiter spec like `\r\n` into raw
// bytes. Supported escapes: \n \r \t \0 \\ and \xNN.
func ParseDelimiter(spec string) ([]byte, error) {
	return cliconfig.ParseDelimiter(spec)
}

// ParseDelimiters converts a list of escaped delimiter specs into raw byte
// sequences, preserving order.
func ParseDelimiters(specs []string) ([][]byte, error) {
	return cliconfig.ParseDelimiters(specs)
}

// FormatDelimiter renders raw delimiter bytes back into escaped form.
func FormatDelimiter(b []byte) string {
	return cliconfig.FormatDelimiter(b)
}

// Logger returns the package-level zerolog logger used by Run.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return cliconfig.DefaultConfigPath()
}
