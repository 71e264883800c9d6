// Package entity contains the core business objects of the project.
package entity

// Identity is the authenticated principal for the lifetime of the tab/process.
// It is created from a successful login or signup response and destroyed on
// logout; this client never refreshes or expires it on its own.
type Identity struct {
	UserID      int64  // The account identifier assigned by the auth API.
	Role        Role   // CUSTOMER or SELLER.
	DisplayName string // Name shown in the navigation chrome.
	AuthToken   string // Opaque bearer token attached to mutating API calls.
	ShopID      int64  // The seller's shop identifier; 0 unless Role is SELLER.
}

// HasShop reports whether this identity is bound to a shop.
func (i *Identity) HasShop() bool {
	return i != nil && i.ShopID != 0
}
