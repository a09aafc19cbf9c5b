package serialport

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"go.bug.st/serial"
)

// SupportedBaudRates lists the line speeds accepted by Config validation.
var SupportedBaudRates = []int{
	300, 600, 1200, 2400, 4800, 9600, 19200, 38400,
	57600, 115200, 230400, 460800, 921600,
}

// Config describes how to open a serial device.
type Config struct {
	Name     string
	BaudRate int
	DataBits int
	Parity   string // "none", "odd", "even", "mark", "space"
	StopBits string // "1", "1.5", "2"
}

// Port adapts a physical serial device to ports.ByteTransport.
type Port struct {
	inner serial.Port
	name  string
}

// Open opens the device described by cfg. Empty parity and stop bit
// settings fall back to 8N1 defaults.
func Open(cfg Config) (*Port, error) {
	mode, err := buildMode(cfg)
	if err != nil {
		return nil, err
	}

	inner, err := serial.Open(cfg.Name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Name, err)
	}

	return &Port{inner: inner, name: cfg.Name}, nil
}

// Read blocks until at least one byte arrives or the port is closed.
func (p *Port) Read(b []byte) (int, error) { return p.inner.Read(b) }

// Write sends b to the device.
func (p *Port) Write(b []byte) (int, error) { return p.inner.Write(b) }

// Close releases the device and unblocks any pending Read.
func (p *Port) Close() error { return p.inner.Close() }

// Name returns the device path the port was opened with.
func (p *Port) Name() string { return p.name }

// ListPorts enumerates serial devices on this machine in natural order,
// so ttyUSB10 sorts after ttyUSB2.
func ListPorts() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list ports: %w", err)
	}
	sortPortNames(names)
	return names, nil
}

func sortPortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})
}

// ValidBaudRate reports whether rate is one of SupportedBaudRates.
func ValidBaudRate(rate int) bool {
	for _, r := range SupportedBaudRates {
		if r == rate {
			return true
		}
	}
	return false
}

func buildMode(cfg Config) (*serial.Mode, error) {
	parity, err := parseParity(cfg.Parity)
	if err != nil {
		return nil, err
	}

	stopBits, err := parseStopBits(cfg.StopBits)
	if err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		Parity:   parity,
		StopBits: stopBits,
	}
	if mode.BaudRate == 0 {
		mode.BaudRate = 9600
	}
	if mode.DataBits == 0 {
		mode.DataBits = 8
	}

	return mode, nil
}

func parseParity(s string) (serial.Parity, error) {
	switch s {
	case "", "none":
		return serial.NoParity, nil
	case "odd":
		return serial.OddParity, nil
	case "even":
		return serial.EvenParity, nil
	case "mark":
		return serial.MarkParity, nil
	case "space":
		return serial.SpaceParity, nil
	default:
		return serial.NoParity, fmt.Errorf("unsupported parity %q", s)
	}
}

func parseStopBits(s string) (serial.StopBits, error) {
	switch s {
	case "", "1":
		return serial.OneStopBit, nil
	case "1.5":
		return serial.OnePointFiveStopBits, nil
	case "2":
		return serial.TwoStopBits, nil
	default:
		return serial.OneStopBit, fmt.Errorf("unsupported stop bits %q", s)
	}
}
