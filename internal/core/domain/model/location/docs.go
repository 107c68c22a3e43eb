// Package location provides the append-only location report entity used for
// real-time delivery tracking. Reports carry validated coordinates, reference
// the order and the reporting delivery partner, and are never mutated after
// acceptance.
package location
