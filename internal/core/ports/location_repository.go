package ports

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for the append-only
// location report trail.
type LocationRepository interface {
	// Add appends a new location report to the order's trail.
	Add(ctx context.Context, report *location.Report) error

	// GetLatest retrieves the most recently appended report for an order.
	// Recency follows insertion order, not the reported timestamps.
	// Returns errs.ObjectNotFoundError when the order has no reports.
	GetLatest(ctx context.Context, orderID kernel.UUID) (*location.Report, error)

	// PruneBefore removes reports appended before the cutoff, always keeping
	// the newest report of each order so GetLatest keeps answering.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
