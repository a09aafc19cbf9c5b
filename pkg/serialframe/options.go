package serialframe

import (
	"github.com/bft-labs/serialframe/internal/domain"
	"github.com/bft-labs/serialframe/internal/ports"
	"github.com/bft-labs/serialframe/pkg/log"
)

// Transport is the byte stream a session reads from and writes to.
// Serial ports, pipes, and sockets all satisfy this interface.
type Transport = ports.ByteTransport

// Tracer observes raw bytes crossing the transport.
type Tracer = ports.ByteTracer

// Receiver consumes framed messages and stream errors.
type Receiver = ports.Receiver

// Message is a framed unit delivered to the Receiver.
type Message = domain.Message

// Logger is the interface for structured logging.
type Logger = log.Logger

// LogField represents a structured log field.
type LogField = log.Field

// Option configures optional behavior of a Session.
type Option func(*options)

// options holds the optional configuration for a Session instance.
type options struct {
	transport    ports.ByteTransport
	tracer       ports.ByteTracer
	logger       log.Logger
	eventHandler EventHandler
	plugins      []Plugin
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		transport:    nil,
		logger:       nil,
		eventHandler: nil,
		plugins:      nil,
	}
}

// WithTransport injects a byte transport instead of opening the
// configured serial port. The session takes ownership: Stop() closes it.
// Because a closed transport cannot be reopened, a session with an
// injected transport is single-run.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithTracer registers an observer for raw transport bytes.
// The tracer is called synchronously from the read and send paths with
// slices that are only valid during the call.
func WithTracer(tracer Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler sets a handler for session events.
// Events are called synchronously from session goroutines.
// If not provided, no events are emitted.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithPlugin registers a plugin to be initialized when the session
// starts. Plugins are initialized in registration order and shut down
// in reverse order. Use this for custom plugins; built-in plugins under
// plugins/ provide their own options wrapping this one.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}
