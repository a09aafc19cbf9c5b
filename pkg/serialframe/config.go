package serialframe

import (
	"fmt"

	"github.com/bft-labs/serialframe/internal/domain"
)

// Config holds the configuration for a Session.
// Use SetDefaults() to fill unset fields with sensible values.
type Config struct {
	// Port is the serial device path, e.g. /dev/ttyUSB0 or COM3.
	// Not required when a transport is injected via WithTransport.
	Port string

	// Serial line parameters. Zero values default to 9600 8N1.
	BaudRate int
	DataBits int
	Parity   string
	StopBits string

	// Delimiters are the message terminators scanned for, in priority
	// order. Earlier entries win when two delimiters match at the same
	// position. A nil slice defaults to {"\n"}; an explicitly empty
	// slice is honored and makes the session buffer without framing.
	Delimiters [][]byte

	// ReadBufferSize is the transport read chunk size in bytes.
	ReadBufferSize int

	// ConfigFile is the TOML file this configuration was loaded from,
	// if any. Plugins such as the delimiter watcher use it.
	ConfigFile string
}

// SetDefaults fills unset fields with default values.
func (c *Config) SetDefaults() {
	if c.BaudRate == 0 {
		c.BaudRate = 9600
	}
	if c.DataBits == 0 {
		c.DataBits = 8
	}
	if c.Parity == "" {
		c.Parity = "none"
	}
	if c.StopBits == "" {
		c.StopBits = "1"
	}
	if c.Delimiters == nil {
		c.Delimiters = [][]byte{{'\n'}}
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = 4096
	}
}

// Validate checks the configuration for errors.
// Call SetDefaults() first; zero values fail validation.
func (c *Config) Validate() error {
	if c.BaudRate <= 0 {
		return fmt.Errorf("%w: baud rate must be positive", ErrInvalidConfig)
	}
	if c.DataBits < 5 || c.DataBits > 8 {
		return fmt.Errorf("%w: data bits must be between 5 and 8", ErrInvalidConfig)
	}

	switch c.Parity {
	case "none", "odd", "even", "mark", "space":
	default:
		return fmt.Errorf("%w: unsupported parity %q", ErrInvalidConfig, c.Parity)
	}

	switch c.StopBits {
	case "1", "1.5", "2":
	default:
		return fmt.Errorf("%w: unsupported stop bits %q", ErrInvalidConfig, c.StopBits)
	}

	if c.ReadBufferSize <= 0 {
		return fmt.Errorf("%w: read buffer size must be positive", ErrInvalidConfig)
	}

	if _, err := domain.NewDelimiterSet(c.Delimiters); err != nil {
		return err
	}

	return nil
}
