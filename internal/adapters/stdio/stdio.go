// Package stdio adapts standard input to the session transport, for piping
// a captured stream through the framer without a serial device.
package stdio

import (
	"os"

	"github.com/bft-labs/serialframe/internal/ports"
)

// Transport reads from standard input. Writes are discarded; there is no
// far end to send to. Close closes stdin, which unblocks a pending Read.
type Transport struct{}

var _ ports.ByteTransport = Transport{}

func (Transport) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (Transport) Write(p []byte) (int, error) { return len(p), nil }
func (Transport) Close() error                { return os.Stdin.Close() }
