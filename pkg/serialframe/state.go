package serialframe

// State represents the lifecycle state of a Session.
type State int

const (
	// StateStopped means the session is not running.
	StateStopped State = iota
	// StateStarting means Start() was called and the session is opening
	// its transport and initializing plugins.
	StateStarting
	// StateRunning means the pump is reading and dispatching messages.
	StateRunning
	// StateStopping means Stop() was called and the session is draining.
	StateStopping
	// StateCrashed means the session hit an unrecoverable error.
	StateCrashed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// CanStart returns true if a session in this state accepts Start().
func (s State) CanStart() bool {
	return s == StateStopped || s == StateCrashed
}

// CanStop returns true if a session in this state accepts Stop().
func (s State) CanStop() bool {
	return s == StateRunning || s == StateStarting
}

// IsRunning returns true if the session is actively pumping.
func (s State) IsRunning() bool {
	return s == StateRunning
}
