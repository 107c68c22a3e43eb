// Package order provides domain entities and business logic for order lifecycle
// management in the delivery tracking system. It implements the Order aggregate
// root with role-aware state transitions.
//
// The package includes:
//   - Order: the aggregate root owning identity, parties, items and lifecycle
//   - Status: the five-state lifecycle enumeration with lossless string round-trip
//   - Item: an immutable order line value object
//   - Patch: an atomic mutation request (assignment and/or status change)
//
// Key business rules:
//   - pending -> assigned -> in-progress -> delivered, with cancelled reachable
//     from pending or assigned; delivered and cancelled are terminal
//   - only the vendor assigns delivery partners; assignment forces the status
//     to assigned and re-assignment resets progress
//   - only the assigned delivery partner progresses an order to in-progress
//     and delivered
//   - a vendor may force any status on a non-terminal order (administrative
//     override); terminal orders reject every write
//   - the delivery partner reference is set exactly when the status is
//     assigned, in-progress or delivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
