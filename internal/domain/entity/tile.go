// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Tile is a single catalog item as served by the remote catalog API.
// It is consumed read-only by this client; the API owns the record.
type Tile struct {
	ID          int64     `json:"id"`          // The catalog-wide unique identifier of the tile.
	Name        string    `json:"name"`        // Display name, e.g. "Premium Ceramic Tile".
	Price       float64   `json:"price"`       // Unit price in the marketplace currency.
	ImagePath   string    `json:"imagePath"`   // Server-relative path to the tile's image.
	Size        string    `json:"size"`        // Physical dimensions, e.g. "600x600 mm".
	Stock       int       `json:"stock"`       // Units currently in stock according to the API.
	Description string    `json:"description"` // Free-form description text.
	Category    *Category `json:"category"`    // The tile's category; nil when the API omits it.
	Shop        *Shop     `json:"shop"`        // The owning shop; nil when the API omits it.
}

// Category groups tiles by material, e.g. Ceramic or Marble.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Shop is a seller-owned storefront. Every tile belongs to exactly one shop.
type Shop struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	ContactNumber string `json:"contactNumber"`
}

// ShopID returns the owning shop's identifier, or 0 when the shop is unset.
func (t *Tile) ShopID() int64 {
	if t.Shop == nil {
		return 0
	}

	return t.Shop.ID
}
