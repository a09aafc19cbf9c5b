package framing

import (
	"github.com/bft-labs/serialframe/internal/domain"
	engine "github.com/bft-labs/serialframe/internal/framing"
)

// Delimiter is a byte sequence that terminates a message.
type Delimiter = domain.Delimiter

// DelimiterSet is an ordered collection of delimiters. Order matters:
// when two members match at the same position, the earlier one wins.
type DelimiterSet = domain.DelimiterSet

// Message is a framed unit of input. Data includes the terminating
// delimiter; Payload() strips it.
type Message = domain.Message

// Framer reassembles arbitrarily chunked input into delimiter-terminated
// messages.
type Framer = engine.Framer

// Stats tracks framing counters. All methods are safe for concurrent use.
type Stats = engine.Stats

// Snapshot is a point-in-time copy of Stats counters.
type Snapshot = engine.Snapshot

// Queue is an unbounded FIFO handing framed messages to a consumer.
type Queue = engine.Queue

// Sentinel errors surfaced by framing operations.
var (
	// ErrEmptyDelimiter rejects delimiter sets with an empty member.
	ErrEmptyDelimiter = domain.ErrEmptyDelimiter

	// ErrInvalidMatch reports a scan result outside the buffered window.
	ErrInvalidMatch = domain.ErrInvalidMatch
)

// NewDelimiterSet builds a DelimiterSet from raw byte sequences,
// preserving order. The sequences are copied. Returns ErrEmptyDelimiter
// if any sequence is empty; an empty list is a valid (if inert) set.
func NewDelimiterSet(seqs [][]byte) (DelimiterSet, error) {
	return domain.NewDelimiterSet(seqs)
}

// NewFramer creates a framer scanning for the given delimiter set.
// Pass nil stats to let the framer keep its own counters.
func NewFramer(set DelimiterSet, stats *Stats) *Framer {
	return engine.NewFramer(set, stats)
}

// NewStats creates an empty counter set.
func NewStats() *Stats {
	return engine.NewStats()
}

// NewQueue creates an empty message queue.
func NewQueue() *Queue {
	return engine.NewQueue()
}
