// Package kernel provides core domain primitives for the delivery tracking system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Coordinates: A value object for a geographic position (latitude/longitude)
//   - Role and Principal: the authenticated identity model the authorization gate
//     and the order state machine reason about
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
