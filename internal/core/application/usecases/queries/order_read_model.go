// Package queries contains read operations for the CQRS architecture.
// Query handlers read through gorm with raw SQL, bypassing the aggregate
// write path, and re-apply the access gate before returning anything.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemResponse is one order line in a read model.
type ItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderResponse is the full order read model returned by order queries.
type OrderResponse struct {
	ID                kernel.UUID
	VendorID          kernel.UUID
	CustomerID        kernel.UUID
	DeliveryPartnerID *kernel.UUID
	Items             []ItemResponse
	TotalAmount       float64
	DeliveryAddress   string
	Status            order.Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// orderColumns is the select list every order query scans with scanOrderRow.
const orderColumns = `
	id,
	vendor_id,
	customer_id,
	delivery_partner_id,
	items,
	total_amount,
	delivery_address,
	status,
	created_at,
	updated_at
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp      OrderResponse
		id        uuid.UUID
		vendorID  uuid.UUID
		custID    uuid.UUID
		partnerID uuid.NullUUID
		itemsJSON []byte
		status    string
	)

	if err := rows.Scan(
		&id,
		&vendorID,
		&custID,
		&partnerID,
		&itemsJSON,
		&resp.TotalAmount,
		&resp.DeliveryAddress,
		&status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(custID[:]); err != nil {
		return OrderResponse{}, err
	}
	if partnerID.Valid {
		pid, pidErr := kernel.UUIDFromBytes(partnerID.UUID[:])
		if pidErr != nil {
			return OrderResponse{}, pidErr
		}
		resp.DeliveryPartnerID = &pid
	}

	if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
		return OrderResponse{}, err
	}

	if resp.Status, err = order.StatusFromString(status); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// restoreAggregate rebuilds the domain aggregate from a read model so the
// access gate can run against it. Read access therefore shares the exact
// relation rules of the write path.
func restoreAggregate(resp OrderResponse) (*order.Order, error) {
	items := make([]order.Item, 0, len(resp.Items))
	for _, itemResp := range resp.Items {
		item, err := order.NewItem(itemResp.Name, itemResp.Quantity, itemResp.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		resp.ID, resp.VendorID, resp.CustomerID, resp.DeliveryPartnerID,
		items, resp.TotalAmount, resp.DeliveryAddress,
		resp.Status, resp.CreatedAt, resp.UpdatedAt,
	)
}
