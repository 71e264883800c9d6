package usecase

import (
	"context"

	"tilemart/internal/domain/entity"
)

// CartUsecase owns the ordered set of carted tile identifiers and their
// session-scoped quantities, and rebuilds the reconciled cart view against
// the live catalog. The identifier list is the only durable state; quantities
// are reseeded to 1 on every load.
type CartUsecase interface {
	// Load reads the persisted identifier list and seeds quantities to 1.
	Load(ctx context.Context) error

	// Add appends tileID iff not already present (set semantics, insertion
	// order preserved) and initializes its quantity to 1. Requires the
	// cart.use capability.
	Add(ctx context.Context, tileID int64) error

	// Remove drops tileID from the identifier list and its quantity entry.
	Remove(ctx context.Context, tileID int64) error

	// SetQuantity overwrites the desired quantity. Values below 1 are
	// rejected as a no-op.
	SetQuantity(tileID int64, quantity int)

	// Clear empties the identifier list and the quantity map.
	Clear(ctx context.Context) error

	// Items returns the identifier list in insertion order.
	Items() []int64

	// Quantity returns the desired quantity for tileID, defaulting to 1.
	Quantity(tileID int64) int

	// Reconcile fetches the current record of every carted tile (one
	// concurrent fetch per identifier, joined before output) and returns the
	// cart lines in identifier-list order. Tiles the catalog no longer has
	// are pruned from the cart; any other fetch failure fails the batch.
	Reconcile(ctx context.Context) ([]entity.CartLine, error)
}
