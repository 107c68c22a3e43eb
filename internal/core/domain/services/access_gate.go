package services

import (
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// Relation describes how a principal relates to a specific order.
type Relation int

const (
	// RelationNone means the principal has no stake in the order.
	RelationNone Relation = iota

	// RelationOwnerVendor means the principal is the order's selling vendor.
	RelationOwnerVendor

	// RelationOwnerCustomer means the principal is the order's buying customer.
	RelationOwnerCustomer

	// RelationOwnerDelivery means the principal is the currently assigned
	// delivery partner.
	RelationOwnerDelivery
)

// AccessGate is a domain service deciding what a principal may do with an
// order. Every read and every location report passes through it: access is
// derived from the principal's relation to the order, never from the role
// alone.
//
// Business rules:
//   - the vendor, the customer and the currently assigned delivery partner
//     may read an order and its location trail
//   - only the currently assigned delivery partner may report locations, and
//     only while the order is assigned or in-progress
//   - a delivery partner loses all access the moment the order is re-assigned
//     to someone else
type AccessGate struct{}

// NewAccessGate creates a new AccessGate instance.
func NewAccessGate() AccessGate {
	return AccessGate{}
}

// RelationOf resolves the principal's relation to the order. The role and the
// reference must agree: a vendor principal matching the customer reference has
// no relation.
func (g AccessGate) RelationOf(principal kernel.Principal, o *order.Order) (Relation, error) {
	if err := principal.Validate(); err != nil {
		return RelationNone, err
	}
	if err := o.Validate(); err != nil {
		return RelationNone, err
	}

	switch principal.Role() {
	case kernel.RoleVendor:
		if o.VendorID().IsEqual(principal.UserID()) {
			return RelationOwnerVendor, nil
		}
	case kernel.RoleCustomer:
		if o.CustomerID().IsEqual(principal.UserID()) {
			return RelationOwnerCustomer, nil
		}
	case kernel.RoleDelivery:
		if partnerID := o.DeliveryPartnerID(); partnerID != nil && partnerID.IsEqual(principal.UserID()) {
			return RelationOwnerDelivery, nil
		}
	}

	return RelationNone, nil
}

// CanReadOrder reports whether the principal may read the order, its status
// stream and its location trail.
func (g AccessGate) CanReadOrder(principal kernel.Principal, o *order.Order) (bool, error) {
	relation, err := g.RelationOf(principal, o)
	if err != nil {
		return false, err
	}

	return relation != RelationNone, nil
}

// CanReportLocation reports whether the principal may append a location report
// for the order. Only the currently assigned delivery partner qualifies, and
// only while the order is actively moving.
func (g AccessGate) CanReportLocation(principal kernel.Principal, o *order.Order) (bool, error) {
	relation, err := g.RelationOf(principal, o)
	if err != nil {
		return false, err
	}

	if relation != RelationOwnerDelivery {
		return false, nil
	}

	return o.Status() == order.StatusAssigned || o.Status() == order.StatusInProgress, nil
}
