package usecase

import (
	"context"

	"tilemart/internal/domain/entity"
)

// InventoryUsecase orchestrates create/edit/delete of tiles scoped to the
// authenticated seller's shop. Creates run the image normalizer before the
// multipart upload; deletes pass through the interactive confirmation gate.
type InventoryUsecase interface {
	// NewDraft starts an empty draft in the editing state.
	NewDraft() *entity.TileDraft

	// EditDraft starts a draft prefilled from an existing tile.
	EditDraft(tile *entity.Tile) *entity.TileDraft

	// Create validates the draft, normalizes its image, and submits the
	// multipart upload. On failure the draft is left intact for retry.
	Create(ctx context.Context, draft *entity.TileDraft) (*entity.Tile, error)

	// Update submits the draft's editable fields for an existing tile. On
	// failure the editing state is retained, not reverted.
	Update(ctx context.Context, tileID int64, draft *entity.TileDraft) (*entity.Tile, error)

	// Delete asks the confirmation gate, then removes the tile. On success
	// the tile disappears from the cached listing; on failure it stays.
	Delete(ctx context.Context, tileID int64) error

	// ListOwn fetches the full catalog and filters client-side to tiles
	// owned by the session's shop, preserving catalog order.
	ListOwn(ctx context.Context) ([]entity.Tile, error)
}
