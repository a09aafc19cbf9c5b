package serialframe

import "time"

// EventHandler receives notifications about session operations.
// Methods are called synchronously; implementations should return quickly.
type EventHandler interface {
	// OnStateChange is called when the session lifecycle state changes.
	OnStateChange(event StateChangeEvent)

	// OnSendComplete is called after a successful Send().
	OnSendComplete(event SendCompleteEvent)

	// OnSendError is called when Send() fails.
	OnSendError(event SendErrorEvent)
}

// StateChangeEvent describes a lifecycle state transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// SendCompleteEvent describes a completed write to the transport.
type SendCompleteEvent struct {
	Bytes    int
	Duration time.Duration
}

// SendErrorEvent describes a failed write to the transport.
type SendErrorEvent struct {
	Error error
	// Bytes is the number of bytes written before the failure.
	Bytes int
}

// BaseEventHandler provides no-op implementations of all EventHandler
// methods. Embed it to implement only the events you care about.
type BaseEventHandler struct{}

// OnStateChange does nothing.
func (BaseEventHandler) OnStateChange(event StateChangeEvent) {}

// OnSendComplete does nothing.
func (BaseEventHandler) OnSendComplete(event SendCompleteEvent) {}

// OnSendError does nothing.
func (BaseEventHandler) OnSendError(event SendErrorEvent) {}
