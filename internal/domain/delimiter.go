package domain

import "fmt"

// Delimiter is a terminator byte sequence. A delimiter must contain at least
// one byte; a zero-length delimiter would match everywhere and stall framing.
type Delimiter []byte

// Clone returns an independent copy of the delimiter.
func (d Delimiter) Clone() Delimiter {
	if d == nil {
		return nil
	}
	out := make(Delimiter, len(d))
	copy(out, d)
	return out
}

// DelimiterSet is an ordered collection of delimiters. When two delimiters
// match at the same position in the stream, the one that appears earlier in
// the set wins. An empty set matches nothing, so framing makes no progress
// until the set is replaced.
type DelimiterSet []Delimiter

// NewDelimiterSet builds a validated set from raw byte sequences.
// The sequences are deep-copied so later mutation by the caller has no effect.
// Returns ErrEmptyDelimiter if any sequence has no bytes.
func NewDelimiterSet(seqs [][]byte) (DelimiterSet, error) {
	if len(seqs) == 0 {
		return nil, nil
	}
	set := make(DelimiterSet, 0, len(seqs))
	for i, s := range seqs {
		if len(s) == 0 {
			return nil, fmt.Errorf("%w (index %d)", ErrEmptyDelimiter, i)
		}
		set = append(set, Delimiter(s).Clone())
	}
	return set, nil
}

// Validate checks every member of the set. An empty set is valid.
func (s DelimiterSet) Validate() error {
	for i, d := range s {
		if len(d) == 0 {
			return fmt.Errorf("%w (index %d)", ErrEmptyDelimiter, i)
		}
	}
	return nil
}

// Clone returns an independent copy of the set and all its members.
func (s DelimiterSet) Clone() DelimiterSet {
	if s == nil {
		return nil
	}
	out := make(DelimiterSet, len(s))
	for i, d := range s {
		out[i] = d.Clone()
	}
	return out
}

// Empty returns true if the set contains no delimiters.
func (s DelimiterSet) Empty() bool {
	return len(s) == 0
}

// Bytes returns the set as raw byte slices, deep-copied.
func (s DelimiterSet) Bytes() [][]byte {
	if s == nil {
		return nil
	}
	out := make([][]byte, len(s))
	for i, d := range s {
		out[i] = d.Clone()
	}
	return out
}
