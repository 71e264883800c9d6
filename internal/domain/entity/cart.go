// Package entity contains the core business objects of the project.
package entity

// CartLine is one reconciled row of the cart view: the current catalog record
// for a carted tile joined with the desired quantity. Lines are derived data,
// rebuilt on every reconciliation pass and never persisted.
type CartLine struct {
	TileID   int64
	Tile     Tile
	Quantity int
}

// LineTotal returns price times quantity for this line.
func (l CartLine) LineTotal() float64 {
	return l.Tile.Price * float64(l.Quantity)
}
