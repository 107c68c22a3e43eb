// Package ws serves the live tracking feed over WebSocket. A connection
// authenticates with a bearer token, joins rooms keyed by order ID and
// receives location and status events for those orders as they happen.
package ws

import (
	"time"

	"tracking/internal/realtime"
)

// Inbound frame types.
const (
	typeAuthenticate   = "authenticate"
	typeJoinOrderRoom  = "joinOrderRoom"
	typeLeaveOrderRoom = "leaveOrderRoom"
	typeUpdateLocation = "updateLocation"
)

// Outbound frame types.
const (
	typeAuthenticated  = "authenticated"
	typeUnauthorized   = "unauthorized"
	typeJoinedRoom     = "joinedRoom"
	typeLeftRoom       = "leftRoom"
	typeLocationUpdate = "locationUpdate"
	typeStatusChanged  = "statusChanged"
	typeError          = "error"
)

// inboundFrame is the superset of all client frames. Type selects which of
// the remaining fields matter.
type inboundFrame struct {
	Type      string  `json:"type"`
	Token     string  `json:"token,omitempty"`
	OrderID   string  `json:"orderId,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type authenticatedFrame struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type roomFrame struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type locationUpdateFrame struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type statusChangedFrame struct {
	Type              string    `json:"type"`
	OrderID           string    `json:"orderId"`
	Status            string    `json:"status"`
	DeliveryPartnerID *string   `json:"deliveryPartnerId"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// eventFrame converts a hub event into its outbound frame.
func eventFrame(event realtime.Event) any {
	switch e := event.(type) {
	case realtime.LocationUpdate:
		return locationUpdateFrame{
			Type:      typeLocationUpdate,
			OrderID:   e.OrderID().String(),
			UserID:    e.UserID().String(),
			Latitude:  e.Coordinates().Latitude(),
			Longitude: e.Coordinates().Longitude(),
			Timestamp: e.Timestamp(),
		}
	case realtime.StatusChanged:
		var partnerID *string
		if id := e.DeliveryPartnerID(); id != nil {
			s := id.String()
			partnerID = &s
		}
		return statusChangedFrame{
			Type:              typeStatusChanged,
			OrderID:           e.OrderID().String(),
			Status:            e.Status().String(),
			DeliveryPartnerID: partnerID,
			UpdatedAt:         e.Timestamp(),
		}
	default:
		return nil
	}
}
