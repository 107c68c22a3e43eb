// Package realtime provides the in-process broadcast hub connecting the write
// path to live subscribers. Events (location updates and status changes) are
// scoped to a single order; the hub fans them out to the order's subscriber
// group with per-order delivery ordering and non-blocking handoff.
package realtime
