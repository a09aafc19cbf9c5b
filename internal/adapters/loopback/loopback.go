package loopback

import (
	"io"
	"sync"
)

// Transport is one end of an in-memory byte pipe. It implements
// ports.ByteTransport and stands in for a serial device in tests and
// examples.
type Transport struct {
	r *io.PipeReader
	w *io.PipeWriter

	once     sync.Once
	closeErr error
}

// New returns two connected transports: bytes written to one are read
// from the other. Closing an end delivers io.EOF to its peer, which is
// how a disconnected device looks to a session.
func New() (*Transport, *Transport) {
	ar, bw := io.Pipe()
	br, aw := io.Pipe()

	a := &Transport{r: ar, w: aw}
	b := &Transport{r: br, w: bw}
	return a, b
}

// Read blocks until the peer writes or either end closes.
func (t *Transport) Read(p []byte) (int, error) { return t.r.Read(p) }

// Write blocks until the peer reads the bytes.
func (t *Transport) Write(p []byte) (int, error) { return t.w.Write(p) }

// Close shuts down both directions. The peer's pending Read returns
// io.EOF; this end's pending Read returns io.ErrClosedPipe. Safe to
// call more than once.
func (t *Transport) Close() error {
	t.once.Do(func() {
		werr := t.w.Close()
		rerr := t.r.Close()
		if werr != nil {
			t.closeErr = werr
		} else {
			t.closeErr = rerr
		}
	})
	return t.closeErr
}
