package ports

import "github.com/bft-labs/serialframe/internal/domain"

// Receiver consumes framed messages and error reports from a session.
// Implementations are supplied by the embedding application.
type Receiver interface {
	// OnMessage is called synchronously for every framed message, in arrival
	// order, exactly once per message. The message owns its bytes; the
	// receiver may retain them. A slow OnMessage delays later messages but
	// never reorders or drops them. Panics are not recovered.
	OnMessage(msg domain.Message)

	// OnError is called when the read path or the framing loop hits an
	// error: transport failures, invalid scan results. Dispatch order
	// relative to OnMessage follows discovery order.
	OnError(err error)
}
