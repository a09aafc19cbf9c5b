package framing

import "sync/atomic"

// Stats tracks session counters across the framing and dispatch paths.
// All methods are safe for concurrent use. Counters only grow; they are
// never reset, so they survive session restarts.
type Stats struct {
	bytesReceived      atomic.Uint64
	bytesSent          atomic.Uint64
	messagesFramed     atomic.Uint64
	messagesDispatched atomic.Uint64
	messagesDiscarded  atomic.Uint64
	framingFaults      atomic.Uint64
	noDelimiterScans   atomic.Uint64
}

// NewStats returns a zeroed counter set.
func NewStats() *Stats {
	return &Stats{}
}

// AddBytesReceived records bytes entering the framing loop.
func (s *Stats) AddBytesReceived(n int) {
	if n > 0 {
		s.bytesReceived.Add(uint64(n))
	}
}

// AddBytesSent records bytes written out over the transport.
func (s *Stats) AddBytesSent(n int) {
	if n > 0 {
		s.bytesSent.Add(uint64(n))
	}
}

// IncMessagesFramed records one message cut from the stream.
func (s *Stats) IncMessagesFramed() {
	s.messagesFramed.Add(1)
}

// IncMessagesDispatched records one message handed to the receiver.
func (s *Stats) IncMessagesDispatched() {
	s.messagesDispatched.Add(1)
}

// AddMessagesDiscarded records messages dropped at teardown before dispatch.
func (s *Stats) AddMessagesDiscarded(n int) {
	if n > 0 {
		s.messagesDiscarded.Add(uint64(n))
	}
}

// IncFramingFaults records one rejected scan result.
func (s *Stats) IncFramingFaults() {
	s.framingFaults.Add(1)
}

// IncNoDelimiterScans records one framing pass skipped because the delimiter
// set was empty while bytes were pending. This is the only way to observe
// the silent no-progress condition.
func (s *Stats) IncNoDelimiterScans() {
	s.noDelimiterScans.Add(1)
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	BytesReceived      uint64
	BytesSent          uint64
	MessagesFramed     uint64
	MessagesDispatched uint64
	MessagesDiscarded  uint64
	FramingFaults      uint64
	NoDelimiterScans   uint64
}

// Snapshot returns a consistent-enough copy of all counters. Each counter is
// read atomically; the set as a whole is not fenced, which is fine for
// monitoring.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		BytesReceived:      s.bytesReceived.Load(),
		BytesSent:          s.bytesSent.Load(),
		MessagesFramed:     s.messagesFramed.Load(),
		MessagesDispatched: s.messagesDispatched.Load(),
		MessagesDiscarded:  s.messagesDiscarded.Load(),
		FramingFaults:      s.framingFaults.Load(),
		NoDelimiterScans:   s.noDelimiterScans.Load(),
	}
}
