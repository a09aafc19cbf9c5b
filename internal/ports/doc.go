// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [ByteTransport]: Bidirectional byte stream (serial port, pipe, socket)
//   - [Receiver]: Consumer of framed messages and error reports
//   - [ByteTracer]: Observer of raw bytes crossing the transport boundary
//
// # Usage
//
// The application layer (internal/app, internal/framing) depends only on
// these interfaces. Infrastructure adapters (internal/adapters) implement
// them with concrete implementations (go.bug.st/serial, in-memory pipes).
//
// This separation enables:
//   - Testing framing and dispatch logic without hardware
//   - Swapping transports without changing the framing loop
//   - Clear boundaries and dependency direction
package ports
