package queries

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationResponse is the latest-location read model.
type LocationResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	UserID      kernel.UUID
	Coordinates kernel.Coordinates
	Timestamp   time.Time
}

// GetLatestLocationQueryHandler retrieves an order's most recent location
// report. Recency follows insertion order: the report appended last wins even
// when client clocks disagree.
type GetLatestLocationQueryHandler struct {
	db         *gorm.DB
	accessGate services.AccessGate
}

// NewGetLatestLocationQueryHandler creates a handler for gated latest-location reads.
func NewGetLatestLocationQueryHandler(db *gorm.DB, accessGate services.AccessGate) GetLatestLocationQueryHandler {
	return GetLatestLocationQueryHandler{db: db, accessGate: accessGate}
}

// Handle executes the query. The order must exist and the actor must pass the
// read gate; an order without any report yet surfaces as not found.
func (h GetLatestLocationQueryHandler) Handle(
	ctx context.Context,
	query GetLatestLocationQuery,
) (LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return LocationResponse{}, err
	}

	orderResp, err := loadOrder(ctx, h.db, query.OrderID())
	if err != nil {
		return LocationResponse{}, err
	}

	aggregate, err := restoreAggregate(orderResp)
	if err != nil {
		return LocationResponse{}, err
	}

	allowed, err := h.accessGate.CanReadOrder(query.Actor(), aggregate)
	if err != nil {
		return LocationResponse{}, err
	}
	if !allowed {
		return LocationResponse{}, errs.NewAccessForbiddenError(
			query.Actor().UserID().String(), "locations of order "+query.OrderID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			user_id,
			latitude,
			longitude,
			timestamp
		FROM location_reports
		WHERE order_id = ?
		ORDER BY seq DESC
		LIMIT 1
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return LocationResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return LocationResponse{}, err
		}
		return LocationResponse{}, errs.NewObjectNotFoundError("locationReport", query.OrderID())
	}

	var (
		resp                LocationResponse
		id, orderID, userID uuid.UUID
		latitude, longitude float64
	)
	if err = rows.Scan(&id, &orderID, &userID, &latitude, &longitude, &resp.Timestamp); err != nil {
		return LocationResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return LocationResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return LocationResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return LocationResponse{}, err
	}
	if resp.Coordinates, err = kernel.NewCoordinates(latitude, longitude); err != nil {
		return LocationResponse{}, err
	}

	return resp, nil
}
