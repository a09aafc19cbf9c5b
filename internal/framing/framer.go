package framing

import (
	"fmt"
	"sync"
	"time"

	"github.com/bft-labs/serialframe/internal/domain"
)

// Framer runs the framing loop over an accumulator. Chunks go in through
// Push; complete messages come out through the emit callback, in stream
// order, each exactly once.
//
// Push must only be called from one goroutine at a time (the read loop).
// SetDelimiters and Delimiters may be called concurrently from anywhere;
// each Push pass works against the set that was current when the pass began.
type Framer struct {
	acc   *Accumulator
	stats *Stats
	scan  scanFunc

	mu     sync.RWMutex
	delims domain.DelimiterSet
}

// NewFramer creates a framer with the given initial delimiter set. The set
// must already be validated; use domain.NewDelimiterSet to build one.
// A nil stats falls back to a private counter set.
func NewFramer(set domain.DelimiterSet, stats *Stats) *Framer {
	if stats == nil {
		stats = NewStats()
	}
	return &Framer{
		acc:    NewAccumulator(),
		stats:  stats,
		scan:   findTerminator,
		delims: set.Clone(),
	}
}

// SetDelimiters replaces the delimiter set. The change applies to the next
// framing pass; a pass already underway finishes with the old set. Bytes
// already buffered are re-scanned with the new set on the next push.
// Returns ErrEmptyDelimiter if any member has no bytes.
func (f *Framer) SetDelimiters(set domain.DelimiterSet) error {
	if err := set.Validate(); err != nil {
		return err
	}
	clone := set.Clone()
	f.mu.Lock()
	f.delims = clone
	f.mu.Unlock()
	return nil
}

// Delimiters returns a copy of the current delimiter set.
func (f *Framer) Delimiters() domain.DelimiterSet {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.delims.Clone()
}

// Pending returns the number of buffered bytes not yet cut into a message.
func (f *Framer) Pending() int {
	return f.acc.Len()
}

// Reset discards all buffered bytes. Called at session teardown; bytes that
// never saw their terminator do not survive into the next session.
func (f *Framer) Reset() {
	f.acc.Reset()
}

// Push appends a chunk and drains every complete message in it, calling emit
// once per message in stream order. A chunk may complete zero, one, or many
// messages.
//
// If the scanner reports a match that does not fit the scanned window, Push
// reports the fault through its error return and leaves the buffered bytes
// untouched. No message is emitted for the rejected match.
func (f *Framer) Push(p []byte, emit func(domain.Message)) error {
	f.acc.Append(p)
	f.stats.AddBytesReceived(len(p))
	return f.drain(emit)
}

// drain is one framing pass: cut messages until no terminator remains.
func (f *Framer) drain(emit func(domain.Message)) error {
	f.mu.RLock()
	set := f.delims
	f.mu.RUnlock()

	if set.Empty() {
		if f.acc.Len() > 0 {
			f.stats.IncNoDelimiterScans()
		}
		return nil
	}

	for {
		view := f.acc.Bytes()
		if len(view) == 0 {
			return nil
		}

		start, dlen, found := f.scan(view, set)
		if !found {
			return nil
		}
		if start < 0 || dlen <= 0 || start+dlen > len(view) {
			f.stats.IncFramingFaults()
			return fmt.Errorf("%w: start=%d delim_len=%d window=%d",
				domain.ErrInvalidMatch, start, dlen, len(view))
		}

		end := start + dlen
		data := make([]byte, end)
		copy(data, view[:end])
		f.acc.Consume(end)

		f.stats.IncMessagesFramed()
		emit(domain.Message{
			Data:         data,
			DelimiterLen: dlen,
			ReceivedAt:   time.Now(),
		})
	}
}
