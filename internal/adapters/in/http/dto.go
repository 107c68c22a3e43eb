// Package http exposes the tracking API over echo. Handlers translate
// requests into commands and queries and map domain errors onto status codes;
// no business rule lives here.
package http

import (
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type itemPayload struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type createOrderRequest struct {
	CounterpartID   string        `json:"counterpartId"`
	Items           []itemPayload `json:"items"`
	TotalAmount     float64       `json:"totalAmount"`
	DeliveryAddress string        `json:"deliveryAddress"`
}

type updateOrderRequest struct {
	DeliveryPartnerID *string `json:"deliveryPartnerId"`
	Status            *string `json:"status"`
}

type reportLocationRequest struct {
	OrderID   string  `json:"orderId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type orderResponse struct {
	ID                string        `json:"id"`
	VendorID          string        `json:"vendorId"`
	CustomerID        string        `json:"customerId"`
	DeliveryPartnerID *string       `json:"deliveryPartnerId"`
	Items             []itemPayload `json:"items"`
	TotalAmount       float64       `json:"totalAmount"`
	DeliveryAddress   string        `json:"deliveryAddress"`
	Status            string        `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

type locationResponse struct {
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

func toOrderResponse(resp queries.OrderResponse) orderResponse {
	var partnerID *string
	if resp.DeliveryPartnerID != nil {
		id := resp.DeliveryPartnerID.String()
		partnerID = &id
	}

	items := make([]itemPayload, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, itemPayload{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return orderResponse{
		ID:                resp.ID.String(),
		VendorID:          resp.VendorID.String(),
		CustomerID:        resp.CustomerID.String(),
		DeliveryPartnerID: partnerID,
		Items:             items,
		TotalAmount:       resp.TotalAmount,
		DeliveryAddress:   resp.DeliveryAddress,
		Status:            resp.Status.String(),
		CreatedAt:         resp.CreatedAt,
		UpdatedAt:         resp.UpdatedAt,
	}
}

func toLocationResponse(resp queries.LocationResponse) locationResponse {
	return locationResponse{
		OrderID:   resp.OrderID.String(),
		UserID:    resp.UserID.String(),
		Latitude:  resp.Coordinates.Latitude(),
		Longitude: resp.Coordinates.Longitude(),
		Timestamp: resp.Timestamp,
	}
}

func parsePatch(req updateOrderRequest) (order.Patch, error) {
	var patch order.Patch

	if req.DeliveryPartnerID != nil {
		partnerID, err := kernel.UUIDFromString(*req.DeliveryPartnerID)
		if err != nil {
			return order.Patch{}, err
		}
		patch.DeliveryPartnerID = &partnerID
	}

	if req.Status != nil {
		status, err := order.StatusFromString(*req.Status)
		if err != nil {
			return order.Patch{}, err
		}
		patch.Status = &status
	}

	return patch, nil
}
