package ports

// ByteTransport is a bidirectional byte stream the framing loop runs over.
// Implementations wrap a physical serial port, an in-memory pipe, or any
// other chunk-delivering channel.
type ByteTransport interface {
	// Read blocks until at least one byte arrives, the transport is closed,
	// or an unrecoverable error occurs. A chunk may carry any number of
	// bytes; the framing layer makes no assumption about chunk boundaries.
	// Returns io.EOF when the stream has ended cleanly.
	Read(p []byte) (int, error)

	// Write sends bytes out over the transport.
	Write(p []byte) (int, error)

	// Close releases the transport and unblocks any pending Read.
	// Safe to call more than once.
	Close() error
}

// ByteTracer observes raw bytes crossing the transport boundary.
// Callbacks run synchronously on the read and write paths; the slices are
// only valid for the duration of the call.
type ByteTracer interface {
	// RxBytes is called with each chunk read from the transport,
	// before the chunk enters the framing loop.
	RxBytes(p []byte)

	// TxBytes is called with each chunk written to the transport.
	TxBytes(p []byte)
}
