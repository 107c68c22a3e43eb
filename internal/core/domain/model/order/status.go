package order

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> assigned ──> in-progress ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// delivered and cancelled are terminal: no transition leaves them.
// The role-aware transition rules live on Order.Transition; Status only
// knows the shape of the graph and its external representation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created order,
	// waiting for the vendor to assign a delivery partner.
	StatusPending

	// StatusAssigned indicates a delivery partner has been assigned.
	StatusAssigned

	// StatusInProgress indicates the assigned delivery partner has started
	// the delivery and is expected to report positions.
	StatusInProgress

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before delivery. Terminal.
	StatusCancelled
)

// getValidStatusStrings returns the lossless external representation of every
// valid status. Persisted and wire values round-trip through this enumeration.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusAssigned:   "assigned",
		StatusInProgress: "in-progress",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses the external representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the external representation of the status, or "unknown"
// for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// RequiresDeliveryPartner reports whether an order in this status must have a
// delivery partner assigned. The aggregate invariant is: partner set iff
// status is assigned, in-progress or delivered.
func (s Status) RequiresDeliveryPartner() bool {
	return s == StatusAssigned || s == StatusInProgress || s == StatusDelivered
}

// ValidateDeliveryPartner validates the consistency between a status and the
// presence of a delivery partner assignment.
func (s Status) ValidateDeliveryPartner(assigned bool) error {
	if assigned && !s.RequiresDeliveryPartner() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a delivery partner", s))
	}

	if !assigned && s.RequiresDeliveryPartner() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no delivery partner", s))
	}

	return nil
}
