package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultDelimiter is the framing delimiter used when none is configured,
// in escaped form.
const DefaultDelimiter = `\n`

// DefaultReadBufferSize is the transport read chunk size in bytes.
const DefaultReadBufferSize = 4096

// Config holds CLI configuration for serialframe.
type Config struct {
	Port     string
	BaudRate int
	DataBits int
	Parity   string
	StopBits string

	// Delimiters are message terminators in escaped form, e.g. `\r\n`.
	Delimiters []string

	ReadBufferSize int
	StatsInterval  time.Duration

	Reconnect   bool
	TraceHex    bool
	WatchConfig bool

	Stdin     bool
	ListPorts bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BaudRate:       9600,
		DataBits:       8,
		Parity:         "none",
		StopBits:       "1",
		Delimiters:     []string{DefaultDelimiter},
		ReadBufferSize: DefaultReadBufferSize,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Port == "" && !c.Stdin && !c.ListPorts {
		return fmt.Errorf("port is required (or --stdin)")
	}

	if c.BaudRate <= 0 {
		return fmt.Errorf("baud rate must be positive")
	}

	if c.DataBits < 5 || c.DataBits > 8 {
		return fmt.Errorf("data bits must be between 5 and 8")
	}

	switch c.Parity {
	case "none", "odd", "even", "mark", "space":
	default:
		return fmt.Errorf("parity must be one of none, odd, even, mark, space")
	}

	switch c.StopBits {
	case "1", "1.5", "2":
	default:
		return fmt.Errorf("stop bits must be one of 1, 1.5, 2")
	}

	if _, err := ParseDelimiters(c.Delimiters); err != nil {
		return err
	}

	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = DefaultReadBufferSize
	}
	if c.ReadBufferSize < 0 {
		return fmt.Errorf("read buffer size must be positive")
	}

	if c.StatsInterval < 0 {
		return fmt.Errorf("stats interval must not be negative")
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a string slice if non-empty and flag not changed.
// The slice is copied so later mutation of value cannot leak in.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
