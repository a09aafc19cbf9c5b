// Package framing provides delimiter-based message framing for byte streams.
//
// This package reassembles arbitrarily split input chunks into complete
// messages terminated by any member of a delimiter set. It can be used
// independently of the session machinery to build custom pipelines over
// transports this module does not know about.
//
// # Usage
//
// Create a Framer and push chunks as they arrive:
//
//	set, err := framing.NewDelimiterSet([][]byte{[]byte("\r\n"), []byte("\n")})
//	if err != nil {
//	    return err
//	}
//
//	f := framing.NewFramer(set, framing.NewStats())
//
//	for chunk := range chunks {
//	    err := f.Push(chunk, func(m framing.Message) {
//	        fmt.Printf("message: %q\n", m.Payload())
//	    })
//	    if err != nil {
//	        // Buffered bytes are preserved; framing resumes on the
//	        // next Push.
//	        return err
//	    }
//	}
//
// Each Push drains every complete message in the buffer, so a single
// chunk carrying several terminators emits several messages in order.
//
// # Delimiter Precedence
//
// The scanner picks the match that starts earliest in the buffer; on a
// tie, the delimiter listed first in the set wins. Partial delimiter
// suffixes stay buffered until the remaining bytes arrive.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package framing
