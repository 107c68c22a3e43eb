package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves the actor's orders from the database.
// Role scoping happens in the WHERE clause, so no foreign order ever leaves
// the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query, matching the actor's user ID against the column
// its role owns. Results are sorted newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var column string
	switch query.Actor().Role() {
	case kernel.RoleVendor:
		column = "vendor_id"
	case kernel.RoleCustomer:
		column = "customer_id"
	case kernel.RoleDelivery:
		column = "delivery_partner_id"
	default:
		return nil, errs.NewValueIsInvalidError("role")
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE `+column+` = ?
		ORDER BY created_at DESC
	`, query.Actor().UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
