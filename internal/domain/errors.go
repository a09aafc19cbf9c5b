package domain

import "errors"

// Domain errors represent error conditions in the serialframe domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running session.
	ErrAlreadyRunning = errors.New("serialframe: already running")

	// ErrNotRunning is returned when Stop() or Send() is called on a stopped session.
	ErrNotRunning = errors.New("serialframe: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("serialframe: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("serialframe: invalid configuration")

	// ErrEmptyDelimiter is returned when a delimiter with no bytes is supplied.
	ErrEmptyDelimiter = errors.New("serialframe: empty delimiter")

	// ErrInvalidMatch is returned when a terminator scan reports a match that
	// does not fit inside the scanned window. The accumulated bytes are left
	// untouched when this happens.
	ErrInvalidMatch = errors.New("serialframe: scan match out of range")
)
