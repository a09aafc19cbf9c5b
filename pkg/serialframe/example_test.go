package serialframe_test

import (
	"context"
	"fmt"

	"github.com/bft-labs/serialframe/pkg/serialframe"
)

// printReceiver writes each framed message to stdout.
type printReceiver struct{}

func (printReceiver) OnMessage(msg serialframe.Message) {
	fmt.Printf("message: %q\n", msg.Data)
}

func (printReceiver) OnError(err error) {
	fmt.Printf("stream error: %v\n", err)
}

// ExampleNew demonstrates how to embed serialframe in your application.
func ExampleNew() {
	// Create configuration
	cfg := serialframe.Config{
		Port:       "/dev/ttyUSB0",
		BaudRate:   115200,
		Delimiters: [][]byte{[]byte("\r\n"), []byte("\n")},
	}

	// Create session instance
	s, err := serialframe.New(cfg, printReceiver{})
	if err != nil {
		fmt.Printf("failed to create session: %v\n", err)
		return
	}

	// The session is created stopped; Start() opens the port and begins
	// dispatching messages to the receiver.
	fmt.Printf("Initial state: %s\n", s.Status())

	// Output: Initial state: Stopped
}

// Example_withEventHandler demonstrates how to receive session events.
func Example_withEventHandler() {
	// Custom event handler
	handler := &myEventHandler{}

	cfg := serialframe.Config{
		Port:     "/dev/ttyUSB0",
		BaudRate: 9600,
	}

	// Create with event handler
	s, err := serialframe.New(cfg, printReceiver{}, serialframe.WithEventHandler(handler))
	if err != nil {
		fmt.Printf("failed to create session: %v\n", err)
		return
	}

	_ = s // Use session instance...
}

// myEventHandler implements serialframe.EventHandler for event notifications.
type myEventHandler struct {
	serialframe.BaseEventHandler // Embed for no-op defaults
}

func (h *myEventHandler) OnStateChange(event serialframe.StateChangeEvent) {
	fmt.Printf("State changed: %s -> %s (reason: %s)\n",
		event.Previous, event.Current, event.Reason)
}

func (h *myEventHandler) OnSendComplete(event serialframe.SendCompleteEvent) {
	fmt.Printf("Sent %d bytes in %v\n", event.Bytes, event.Duration)
}

func (h *myEventHandler) OnSendError(event serialframe.SendErrorEvent) {
	fmt.Printf("Send error: %v (bytes written: %d)\n", event.Error, event.Bytes)
}

// Example_withCustomLogger demonstrates injecting a custom logger.
func Example_withCustomLogger() {
	logger := &customLogger{}

	cfg := serialframe.Config{
		Port: "/dev/ttyUSB0",
	}

	// Inject custom logger
	s, err := serialframe.New(cfg, printReceiver{}, serialframe.WithLogger(logger))
	if err != nil {
		fmt.Printf("failed to create session: %v\n", err)
		return
	}

	_ = s // Use session instance...
}

// customLogger implements serialframe.Logger.
type customLogger struct{}

func (l *customLogger) Debug(msg string, fields ...serialframe.LogField) {
	fmt.Printf("[DEBUG] %s\n", msg)
}

func (l *customLogger) Info(msg string, fields ...serialframe.LogField) {
	fmt.Printf("[INFO] %s\n", msg)
}

func (l *customLogger) Warn(msg string, fields ...serialframe.LogField) {
	fmt.Printf("[WARN] %s\n", msg)
}

func (l *customLogger) Error(msg string, fields ...serialframe.LogField) {
	fmt.Printf("[ERROR] %s\n", msg)
}

// Example_withPlugins demonstrates using optional plugins.
func Example_withPlugins() {
	cfg := serialframe.Config{
		Port:       "/dev/ttyUSB0",
		ConfigFile: "/etc/serialframe/config.toml",
	}

	// Import plugins from:
	//   "github.com/bft-labs/serialframe/plugins/delimwatcher"
	//   "github.com/bft-labs/serialframe/plugins/statreporter"
	//
	// Then create with plugins:
	//
	//   s, err := serialframe.New(cfg, receiver,
	//       delimwatcher.WithDelimiterWatcher(delimwatcher.DefaultConfig()),
	//       statreporter.WithStatReporter(statreporter.DefaultConfig()),
	//   )
	//
	// Plugins are initialized on Start() and shutdown on Stop().

	s, err := serialframe.New(cfg, printReceiver{})
	if err != nil {
		fmt.Printf("failed to create session: %v\n", err)
		return
	}

	_ = s // Use session instance...
}

// Example_moduleVersions demonstrates version checking.
func Example_moduleVersions() {
	// Check serialframe version
	fmt.Printf("Serialframe version: %s\n", serialframe.Version)

	// Get all module versions
	versions := serialframe.ModuleVersions()
	for module, version := range versions {
		fmt.Printf("%s: %s\n", module, version)
	}
}

// ExampleSession_Status demonstrates controlling the session lifecycle.
func ExampleSession_Status() {
	cfg := serialframe.Config{
		Port: "/nonexistent/port",
	}

	s, _ := serialframe.New(cfg, printReceiver{})

	// Initial state is Stopped
	fmt.Printf("Initial state is Stopped: %v\n", s.Status() == serialframe.StateStopped)

	// Starting against a missing device fails and leaves the session
	// crashed; a later Start() may try again.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := s.Start(ctx)
	fmt.Printf("Start failed: %v\n", err != nil)
	fmt.Printf("State is Crashed: %v\n", s.Status() == serialframe.StateCrashed)
	fmt.Printf("Can start again: %v\n", s.Status().CanStart())

	// Output:
	// Initial state is Stopped: true
	// Start failed: true
	// State is Crashed: true
	// Can start again: true
}
