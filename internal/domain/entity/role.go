// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an identity can have in the storefront.
// The wire values match what the auth API returns in its login response.
type Role string

const (
	// RoleNone indicates no authenticated identity.
	RoleNone Role = ""
	// RoleCustomer indicates a buying visitor.
	RoleCustomer Role = "CUSTOMER"
	// RoleSeller indicates a shop-owning seller.
	RoleSeller Role = "SELLER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid authenticated value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller:
		return true
	default:
		return false
	}
}

// Capability names a gated operation of the storefront client.
type Capability string

const (
	// CapUseCart covers adding to and mutating the shopping cart.
	CapUseCart Capability = "cart.use"
	// CapCheckout covers confirming a checkout.
	CapCheckout Capability = "cart.checkout"
	// CapManageShop covers all seller inventory mutations.
	CapManageShop Capability = "shop.manage"
)

// Decision is the typed outcome of a capability check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns a positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Forbid returns a negative decision carrying the reason.
func Forbid(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}
