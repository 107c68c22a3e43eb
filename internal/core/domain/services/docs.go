// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the tracking system.
//
// The package includes:
//   - AccessGate: a domain service deciding read and location-report access
//     from a principal's relation to an order
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
