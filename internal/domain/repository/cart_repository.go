// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// CartRepository is the small persistence port behind the cart store. The
// durable representation is the ordered tile identifier list alone; desired
// quantities are session-scoped and deliberately not persisted.
type CartRepository interface {
	// Load reads the persisted identifier list. A missing store yields an
	// empty list, not an error.
	Load(ctx context.Context) ([]int64, error)

	// Save rewrites the full identifier list. Called on every cart mutation.
	Save(ctx context.Context, tileIDs []int64) error
}
