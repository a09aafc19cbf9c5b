package framing

import (
	"bytes"

	"github.com/bft-labs/serialframe/internal/domain"
)

// scanFunc locates the earliest terminator in view. It returns the start
// index of the match, the length of the matched delimiter, and whether a
// match was found. The Framer validates results against the window, so a
// misbehaving implementation cannot corrupt the accumulator.
type scanFunc func(view []byte, set domain.DelimiterSet) (start, length int, found bool)

// findTerminator is the production scanner. It scans for every delimiter in
// the set and picks the match with the lowest start index. At equal start
// indexes the delimiter that appears earlier in the set wins, which is what
// makes set order meaningful. Only full matches count: a delimiter prefix
// dangling at the end of the view is not a match and stays buffered until
// the rest of it arrives.
func findTerminator(view []byte, set domain.DelimiterSet) (int, int, bool) {
	best := -1
	bestLen := 0
	for _, d := range set {
		if len(d) == 0 {
			// A zero-length delimiter would match at index 0 forever.
			continue
		}
		idx := bytes.Index(view, d)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			bestLen = len(d)
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestLen, true
}
