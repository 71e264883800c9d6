// Package entity contains the core business objects of the project.
package entity

// DraftStatus tracks where a seller's tile draft is in its lifecycle.
type DraftStatus string

const (
	// DraftIdle means the draft is not being worked on (initial and post-success state).
	DraftIdle DraftStatus = "idle"
	// DraftEditing means the seller is filling in or correcting fields.
	DraftEditing DraftStatus = "editing"
	// DraftSubmitting means a create or update request is in flight.
	DraftSubmitting DraftStatus = "submitting"
)

// DefaultCategory is preselected on new drafts, matching the upload form.
const DefaultCategory = "Ceramic"

// TileDraft is an in-progress, not-yet-submitted seller edit of a tile.
// A failed submission keeps the draft intact (status back to editing, error
// retained) so the seller can correct and resubmit.
type TileDraft struct {
	Name        string
	Price       float64
	Description string
	Size        string
	Stock       int
	Category    string
	Image       *ImageFile

	Status    DraftStatus
	LastError string
}

// ImageFile is a user-selected image before normalization.
type ImageFile struct {
	Name string // Original file name, preserved through normalization.
	MIME string // Content type as reported by the picker; may be empty.
	Data []byte
}

// NewTileDraft returns an empty draft in the editing state.
func NewTileDraft() *TileDraft {
	return &TileDraft{
		Category: DefaultCategory,
		Status:   DraftEditing,
	}
}

// DraftFromTile returns a draft prefilled from an existing catalog record,
// as the edit form does.
func DraftFromTile(tile *Tile) *TileDraft {
	draft := &TileDraft{
		Name:        tile.Name,
		Price:       tile.Price,
		Description: tile.Description,
		Size:        tile.Size,
		Stock:       tile.Stock,
		Category:    DefaultCategory,
		Status:      DraftEditing,
	}
	if tile.Category != nil && tile.Category.Name != "" {
		draft.Category = tile.Category.Name
	}

	return draft
}
