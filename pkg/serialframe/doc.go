// Package serialframe provides an embeddable framing engine for serial byte
// streams.
//
// Serialframe reassembles arbitrarily chunked serial input into complete,
// delimiter-terminated messages and dispatches each one exactly once, in
// stream order. It can be used as a standalone CLI application or embedded
// as a library in other Go programs.
//
// # Basic Usage
//
// To embed serialframe in your application:
//
//	cfg := serialframe.Config{
//	    Port:       "/dev/ttyUSB0",
//	    BaudRate:   115200,
//	    Delimiters: [][]byte{[]byte("\r\n"), []byte("\n")},
//	}
//
//	session, err := serialframe.New(cfg, receiver)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := session.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// ... run until shutdown signal ...
//
//	if err := session.Stop(); err != nil {
//	    log.Printf("shutdown error: %v", err)
//	}
//
// The receiver implements [Receiver] and is handed every framed message,
// delimiter included, in the order it appeared on the wire.
//
// # Configuration
//
// Create a [Config] with at minimum Port (or inject a transport via
// [WithTransport]). All other fields have sensible defaults set via
// [Config.SetDefaults].
//
// # Event Handling
//
// To receive notifications about session state and send operations,
// implement [EventHandler] and pass it via [WithEventHandler]:
//
//	handler := &myEventHandler{}
//	session, err := serialframe.New(cfg, receiver, serialframe.WithEventHandler(handler))
//
// Events are called synchronously from the session goroutines.
// Implementations should return quickly to avoid blocking the pump.
//
// # Dependency Injection
//
// For testing, you can inject custom implementations of external dependencies:
//
//	session, err := serialframe.New(cfg, receiver,
//	    serialframe.WithTransport(fakePort),
//	    serialframe.WithLogger(customLogger),
//	)
//
// # Lifecycle States
//
// A Session can be in one of five states: [StateStopped], [StateStarting],
// [StateRunning], [StateStopping], or [StateCrashed]. Use [Session.Status] to
// query the current state.
//
// # Plugins
//
// Serialframe supports optional plugins for extended functionality:
//
//	import "github.com/bft-labs/serialframe/plugins/delimwatcher"
//	import "github.com/bft-labs/serialframe/plugins/statreporter"
//
//	session, err := serialframe.New(cfg, receiver,
//	    delimwatcher.WithDelimiterWatcher(delimwatcher.DefaultConfig()),
//	    statreporter.WithStatReporter(statreporter.DefaultConfig()),
//	)
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// Use [ModuleVersions] to get versions of all sub-modules and [CompatibilityMatrix]
// to check minimum compatible versions. See version.go for details.
package serialframe
