package framing

// compactThreshold is the minimum number of consumed bytes before the live
// region is copied back to the front of the buffer. Compacting on every
// Consume would make long runs of small messages quadratic; never compacting
// would let the backing array grow without bound.
const compactThreshold = 4 << 10

// Accumulator owns the bytes received from the transport that are not yet
// part of a complete message. The live region is buf[off:]; consumed bytes
// before off are reclaimed lazily.
//
// An Accumulator is not safe for concurrent use. The framing loop is its
// only writer and reader.
type Accumulator struct {
	buf []byte
	off int
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Append copies p onto the end of the live region. The caller keeps
// ownership of p and may reuse it immediately.
func (a *Accumulator) Append(p []byte) {
	a.buf = append(a.buf, p...)
}

// Bytes returns the live region. The slice is valid only until the next
// Append, Consume, or Reset.
func (a *Accumulator) Bytes() []byte {
	return a.buf[a.off:]
}

// Len returns the number of live bytes.
func (a *Accumulator) Len() int {
	return len(a.buf) - a.off
}

// Consume marks the first n live bytes as processed. Consuming more than
// Len() empties the accumulator.
func (a *Accumulator) Consume(n int) {
	if n <= 0 {
		return
	}
	if n > a.Len() {
		n = a.Len()
	}
	a.off += n
	a.maybeCompact()
}

// Reset discards all bytes, live and consumed, keeping the backing array.
func (a *Accumulator) Reset() {
	a.buf = a.buf[:0]
	a.off = 0
}

// maybeCompact moves the live region to the front once the consumed prefix
// dominates the backing array. Cost is proportional to the live region, so
// total compaction work stays linear in bytes ever appended.
func (a *Accumulator) maybeCompact() {
	if a.off < compactThreshold || a.off <= a.Len() {
		return
	}
	n := copy(a.buf, a.buf[a.off:])
	a.buf = a.buf[:n]
	a.off = 0
}
