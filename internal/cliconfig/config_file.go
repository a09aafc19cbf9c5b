package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Port           string   `toml:"port"`
	BaudRate       int      `toml:"baud_rate"`
	DataBits       int      `toml:"data_bits"`
	Parity         string   `toml:"parity"`
	StopBits       string   `toml:"stop_bits"`
	Delimiters     []string `toml:"delimiters"`
	ReadBufferSize int      `toml:"read_buffer"`
	StatsInterval  string   `toml:"stats_interval"`
	Reconnect      *bool    `toml:"reconnect"`
	TraceHex       *bool    `toml:"trace_hex"`
	WatchConfig    *bool    `toml:"watch_config"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.serialframe/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".serialframe", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("port", fc.Port, &cfg.Port)
	s.setString("parity", fc.Parity, &cfg.Parity)
	s.setString("stop-bits", fc.StopBits, &cfg.StopBits)

	s.setStrings("delimiter", fc.Delimiters, &cfg.Delimiters)

	s.setInt("baud", fc.BaudRate, &cfg.BaudRate)
	s.setInt("data-bits", fc.DataBits, &cfg.DataBits)
	s.setInt("read-buffer", fc.ReadBufferSize, &cfg.ReadBufferSize)

	if err := s.setDuration("stats-interval", fc.StatsInterval, &cfg.StatsInterval); err != nil {
		return err
	}

	s.setBool("reconnect", fc.Reconnect, &cfg.Reconnect)
	s.setBool("trace-hex", fc.TraceHex, &cfg.TraceHex)
	s.setBool("watch-config", fc.WatchConfig, &cfg.WatchConfig)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
