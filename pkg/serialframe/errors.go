package serialframe

import "github.com/bft-labs/serialframe/internal/domain"

// Sentinel errors returned by Session operations.
// Match with errors.Is.
var (
	// ErrAlreadyRunning is returned by Start() on a running session.
	ErrAlreadyRunning = domain.ErrAlreadyRunning

	// ErrNotRunning is returned by Stop() and Send() when the session
	// is not running.
	ErrNotRunning = domain.ErrNotRunning

	// ErrShutdownTimeout is returned by Stop() when workers do not
	// finish within the shutdown timeout.
	ErrShutdownTimeout = domain.ErrShutdownTimeout

	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = domain.ErrInvalidConfig

	// ErrEmptyDelimiter is returned when a delimiter set contains an
	// empty byte sequence.
	ErrEmptyDelimiter = domain.ErrEmptyDelimiter
)
