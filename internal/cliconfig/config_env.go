package cliconfig

import (
	"os"
	"strings"
)

// ApplyEnvConfig applies configuration from environment variables (SERIALFRAME_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
//
// SERIALFRAME_DELIMITERS is a comma-separated list of escaped delimiter
// specs; use \x2c for a literal comma inside a delimiter.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("port", os.Getenv("SERIALFRAME_PORT"), &cfg.Port)
	s.setString("parity", os.Getenv("SERIALFRAME_PARITY"), &cfg.Parity)
	s.setString("stop-bits", os.Getenv("SERIALFRAME_STOP_BITS"), &cfg.StopBits)

	s.setStrings("delimiter", splitList(os.Getenv("SERIALFRAME_DELIMITERS")), &cfg.Delimiters)

	if err := s.setIntFromString("baud", os.Getenv("SERIALFRAME_BAUD_RATE"), &cfg.BaudRate); err != nil {
		return err
	}
	if err := s.setIntFromString("data-bits", os.Getenv("SERIALFRAME_DATA_BITS"), &cfg.DataBits); err != nil {
		return err
	}
	if err := s.setIntFromString("read-buffer", os.Getenv("SERIALFRAME_READ_BUFFER"), &cfg.ReadBufferSize); err != nil {
		return err
	}

	if err := s.setDuration("stats-interval", os.Getenv("SERIALFRAME_STATS_INTERVAL"), &cfg.StatsInterval); err != nil {
		return err
	}

	s.setBoolFromString("reconnect", os.Getenv("SERIALFRAME_RECONNECT"), &cfg.Reconnect)
	s.setBoolFromString("trace-hex", os.Getenv("SERIALFRAME_TRACE_HEX"), &cfg.TraceHex)
	s.setBoolFromString("watch-config", os.Getenv("SERIALFRAME_WATCH_CONFIG"), &cfg.WatchConfig)

	return nil
}

// splitList splits a comma-separated env value, returning nil for "".
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}
