// Package domain contains the core domain entities and value objects for serialframe.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (serial hardware, file system,
// logging) and contains only pure business logic.
//
// # Entities
//
//   - [Message]: A single framed unit cut from the byte stream, terminator included
//   - [Delimiter]: A terminator byte sequence (at least one byte long)
//   - [DelimiterSet]: An ordered collection of delimiters; order breaks scan ties
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
