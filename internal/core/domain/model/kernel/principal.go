package kernel

import (
	"errors"
	"fmt"

	"tracking/internal/pkg/errs"
)

// Role identifies the kind of account a principal holds in the marketplace.
// A role is fixed per account; authorization rules are role-aware, not just
// identity-aware.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleVendor is a marketplace vendor: creates orders, assigns delivery
	// partners and may administratively override order status.
	RoleVendor

	// RoleDelivery is a delivery partner: progresses assigned orders and
	// reports live positions.
	RoleDelivery

	// RoleCustomer is the buying customer: observes their orders and the
	// live position of the assigned delivery partner.
	RoleCustomer
)

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleVendor:   "vendor",
		RoleDelivery: "delivery",
		RoleCustomer: "customer",
	}
}

// RoleFromString parses the external representation of a role.
// The three-symbol enumeration {vendor, delivery, customer} round-trips losslessly.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role is one of the three valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the external representation of the role, or "unknown".
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Principal is an authenticated identity with a role, as produced by the
// authentication black box. The core never sees credentials, only verified
// principals.
type Principal struct {
	userID UUID
	role   Role
}

// NewPrincipal creates a validated principal.
func NewPrincipal(userID UUID, role Role) (Principal, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Principal{}, err
	}

	return Principal{userID: userID, role: role}, nil
}

// UserID returns the principal's user identifier.
func (p Principal) UserID() UUID {
	return p.userID
}

// Role returns the principal's role.
func (p Principal) Role() Role {
	return p.role
}

// Validate checks that the principal carries a valid identity and role.
func (p Principal) Validate() error {
	return errors.Join(p.userID.Validate(), p.role.Validate())
}
