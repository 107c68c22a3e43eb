package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// totalAmountTolerance bounds the float drift allowed between the stored total
// and the sum of item subtotals.
const totalAmountTolerance = 1e-9

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrForbiddenTransition is the sentinel every rejected lifecycle transition
	// unwraps to. A rejected transition leaves the order unchanged; there is no
	// silent no-op, including for writes against delivered or cancelled orders.
	ErrForbiddenTransition = errors.New("forbidden transition")

	// ErrEmptyPatch is returned when a transition request changes nothing.
	ErrEmptyPatch = errs.NewValueIsRequiredError("patch must set a delivery partner or a status")
)

// ForbiddenTransitionError reports a (from, to, actor-role) triple that the
// state machine does not allow.
type ForbiddenTransitionError struct {
	From  Status
	To    Status
	Actor kernel.Role
}

// NewForbiddenTransitionError creates a ForbiddenTransitionError for the rejected edge.
func NewForbiddenTransitionError(from Status, to Status, actor kernel.Role) *ForbiddenTransitionError {
	return &ForbiddenTransitionError{From: from, To: to, Actor: actor}
}

func (e *ForbiddenTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s by %s", ErrForbiddenTransition, e.From, e.To, e.Actor)
}

func (e *ForbiddenTransitionError) Unwrap() error {
	return ErrForbiddenTransition
}

// Patch describes a requested order mutation: a delivery partner assignment,
// a status change, or both in one atomic request.
type Patch struct {
	// DeliveryPartnerID, when set, assigns (or re-assigns) the delivery partner.
	// Assignment always forces the status to assigned; re-assignment resets progress.
	DeliveryPartnerID *kernel.UUID

	// Status, when set, requests an explicit status transition. When combined
	// with an assignment it is validated against the post-assignment state.
	Status *Status
}

// IsEmpty reports whether the patch requests no change at all.
func (p Patch) IsEmpty() bool {
	return p.DeliveryPartnerID == nil && p.Status == nil
}

// Validate checks the patch fields themselves, independent of any order.
func (p Patch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}

	if p.DeliveryPartnerID != nil {
		if err := p.DeliveryPartnerID.Validate(); err != nil {
			return err
		}
	}

	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Order is the aggregate root tracking a purchase through its delivery
// lifecycle. It owns the canonical status and enforces who may move it.
//
// Order maintains these invariants:
//   - vendorID and customerID are always set; deliveryPartnerID is set iff
//     status is assigned, in-progress or delivered
//   - items are non-empty and totalAmount equals the sum of their subtotals
//   - deliveryAddress is non-empty
//   - status transitions follow the role-aware rules of Transition
//   - updatedAt is bumped on every successful mutation, createdAt never changes
//
// Orders are never physically deleted; delivered and cancelled are the
// terminal states.
type Order struct {
	id                kernel.UUID
	vendorID          kernel.UUID
	customerID        kernel.UUID
	deliveryPartnerID *kernel.UUID
	items             []Item
	totalAmount       float64
	deliveryAddress   string
	status            Status
	createdAt         time.Time
	updatedAt         time.Time

	isConstructed bool
}

// NewOrder creates a new pending order. This is the only way (besides
// RestoreOrder, used by persistence) to obtain a valid Order.
//
// The caller supplies the stored total; NewOrder verifies it equals the sum of
// quantity times price over the items rather than recomputing it silently.
func NewOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	totalAmount float64,
	deliveryAddress string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(vendorID, customerID),
		o.setItems(items, totalAmount),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. It revalidates every
// invariant, including the status/partner consistency rule, so a corrupted row
// cannot re-enter the domain as a valid aggregate.
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	deliveryPartnerID *kernel.UUID,
	items []Item,
	totalAmount float64,
	deliveryAddress string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(vendorID, customerID),
		o.setItems(items, totalAmount),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
		status.ValidateDeliveryPartner(deliveryPartnerID != nil),
	); err != nil {
		return nil, err
	}

	if deliveryPartnerID != nil {
		if err := deliveryPartnerID.Validate(); err != nil {
			return nil, err
		}
		partnerID := *deliveryPartnerID
		o.deliveryPartnerID = &partnerID
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VendorID returns the selling vendor's user ID.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// CustomerID returns the buying customer's user ID.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryPartnerID returns the assigned delivery partner's user ID,
// or nil while the order is unassigned.
func (o *Order) DeliveryPartnerID() *kernel.UUID {
	if o.deliveryPartnerID == nil {
		return nil
	}
	id := *o.deliveryPartnerID
	return &id
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryAddress returns the free-text delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last successful mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Transition applies a patch (assignment and/or status change) on behalf of an
// actor, enforcing the role-aware transition table:
//
//	pending   -> assigned     vendor, partner provided and distinct from existing
//	assigned  -> in-progress  delivery partner, actor is the assigned partner
//	in-progress -> delivered  delivery partner, actor is the assigned partner
//	pending/assigned -> cancelled  vendor
//	any non-terminal -> any   vendor (administrative override)
//
// Writes against a terminal order always fail with ErrForbiddenTransition.
// Assignment forces the status to assigned; an explicit status in the same
// patch is then validated against that post-assignment state. The patch is
// atomic: either every field applies and updatedAt is bumped, or the order is
// left untouched.
func (o *Order) Transition(actor kernel.Principal, patch Patch, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		to := o.status
		if patch.Status != nil {
			to = *patch.Status
		}
		return NewForbiddenTransitionError(o.status, to, actor.Role())
	}

	// Stage the outcome first so a rejected patch changes nothing.
	newStatus := o.status
	newPartner := o.deliveryPartnerID

	if patch.DeliveryPartnerID != nil {
		if actor.Role() != kernel.RoleVendor {
			return NewForbiddenTransitionError(o.status, StatusAssigned, actor.Role())
		}
		if newPartner != nil && newPartner.IsEqual(*patch.DeliveryPartnerID) {
			return errs.NewValueIsInvalidErrorWithCause("deliveryPartnerId",
				fmt.Errorf("partner %s is already assigned", patch.DeliveryPartnerID))
		}
		partnerID := *patch.DeliveryPartnerID
		newPartner = &partnerID
		newStatus = StatusAssigned
	}

	if patch.Status != nil {
		target := *patch.Status

		switch actor.Role() {
		case kernel.RoleVendor:
			// Administrative override: a vendor may force any status on a
			// non-terminal order.
			newStatus = target

		case kernel.RoleDelivery:
			if newPartner == nil || !newPartner.IsEqual(actor.UserID()) {
				return NewForbiddenTransitionError(newStatus, target, actor.Role())
			}
			progressing := (newStatus == StatusAssigned && target == StatusInProgress) ||
				(newStatus == StatusInProgress && target == StatusDelivered)
			if !progressing {
				return NewForbiddenTransitionError(newStatus, target, actor.Role())
			}
			newStatus = target

		default:
			return NewForbiddenTransitionError(newStatus, target, actor.Role())
		}
	}

	if newStatus.RequiresDeliveryPartner() && newPartner == nil {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s requires a delivery partner", newStatus))
	}
	if !newStatus.RequiresDeliveryPartner() {
		newPartner = nil
	}

	o.deliveryPartnerID = newPartner
	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(vendorID kernel.UUID, customerID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	o.vendorID = vendorID
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item, totalAmount float64) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var sum float64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		sum += item.Subtotal()
	}

	if math.Abs(sum-totalAmount) > totalAmountTolerance {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%f does not equal the item sum %f", totalAmount, sum))
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}
