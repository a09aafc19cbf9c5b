// Package framing implements the core of serialframe: turning an arbitrary
// sequence of byte chunks into delimiter-terminated messages.
//
// # Components
//
//   - [Accumulator]: Holds bytes that have arrived but are not yet part of a
//     complete message. Consumed prefixes are reclaimed by compaction.
//   - [Framer]: Runs the framing loop. Each pushed chunk is appended to the
//     accumulator, then every complete message is cut and emitted in order.
//   - [Queue]: Unbounded FIFO handoff between the framing loop and the
//     dispatch loop. The only synchronization point between the two.
//   - [Stats]: Counters shared by the framing and dispatch paths.
//
// # Guarantees
//
// For a given delimiter set, the emitted messages depend only on the byte
// sequence, never on how the stream was split into chunks. Every message is
// emitted exactly once and in stream order, and always ends with the
// delimiter that terminated it.
package framing
