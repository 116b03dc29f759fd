package entities

import (
	"fmt"
	"regexp"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// Actor is the authenticated caller of a lifecycle operation.
// Customers are identified by phone, partners by partner id.
type Actor struct {
	Role      Role
	Phone     string
	PartnerID string
}

func (a Actor) Validate() error {
	switch a.Role {
	case RoleCustomer:
		if !phoneRe.MatchString(a.Phone) {
			return &ValidationError{Field: "phone", Reason: "must be a 10-digit number"}
		}
	case RolePartner:
		if a.PartnerID == "" {
			return &ValidationError{Field: "partner_id", Reason: "required"}
		}
	default:
		return fmt.Errorf("%w: unknown role %q", ErrForbidden, a.Role)
	}
	return nil
}

func (a Actor) String() string {
	if a.Role == RolePartner {
		return "partner:" + a.PartnerID
	}
	return string(a.Role) + ":" + a.Phone
}
