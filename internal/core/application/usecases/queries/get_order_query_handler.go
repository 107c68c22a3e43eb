package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order and gates it through the
// access rules before returning it.
type GetOrderQueryHandler struct {
	db         *gorm.DB
	accessGate services.AccessGate
}

// NewGetOrderQueryHandler creates a handler for gated single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB, accessGate services.AccessGate) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, accessGate: accessGate}
}

// Handle executes the query. Unknown orders surface as not found; orders the
// actor has no relation to surface as forbidden, which deliberately confirms
// their existence only to their own parties.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	resp, err := loadOrder(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := restoreAggregate(resp)
	if err != nil {
		return OrderResponse{}, err
	}

	allowed, err := h.accessGate.CanReadOrder(query.Actor(), aggregate)
	if err != nil {
		return OrderResponse{}, err
	}
	if !allowed {
		return OrderResponse{}, errs.NewAccessForbiddenError(
			query.Actor().UserID().String(), "order "+query.OrderID().String())
	}

	return resp, nil
}

// loadOrder fetches one order row by ID.
func loadOrder(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", orderID)
	}

	return scanOrderRow(rows)
}
