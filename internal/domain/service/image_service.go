package service

import (
	"context"

	"tilemart/internal/domain/entity"
)

// NormalizedImage is a bounded-dimension, re-encoded image ready for upload.
type NormalizedImage struct {
	Name   string // Original file name, carried over from the source.
	MIME   string // Encoded content type.
	Data   []byte
	Width  int
	Height int
}

// ImageNormalizer shrinks an arbitrary user-selected image into the upload
// bounds. It never upscales and produces no partial output on failure.
type ImageNormalizer interface {
	// Normalize decodes src, applies the width bound and then the height
	// bound (two sequential shrink passes, not a joint fit), and re-encodes
	// at the given quality into the source MIME type. Quality is a factor in
	// (0, 1]; it only affects lossy encodings.
	Normalize(ctx context.Context, src *entity.ImageFile, maxWidth, maxHeight int, quality float64) (*NormalizedImage, error)
}
