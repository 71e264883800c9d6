// Package imaging bounds user-selected images before upload.
package imaging

import (
	"bytes"
	"context"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"math"

	"tilemart/internal/domain/entity"
	"tilemart/internal/domain/service"
	"tilemart/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// defaultMIME is used when the picker did not report a content type.
const defaultMIME = "image/jpeg"

// normalizer implements service.ImageNormalizer with a two-pass
// shrink-to-fit: the width bound is applied first, then the height bound is
// applied to the intermediate result. The aspect ratio is taken from the
// source dimensions once, before either pass.
type normalizer struct {
	logger *slog.Logger
}

// NewNormalizer is the constructor for normalizer.
func NewNormalizer(logger *slog.Logger) service.ImageNormalizer {
	return &normalizer{logger: logger}
}

// Normalize decodes src, shrinks it into the bounds, and re-encodes it at the
// given quality into the source MIME type. It never upscales and produces no
// partial output on failure.
func (n *normalizer) Normalize(ctx context.Context, src *entity.ImageFile, maxWidth, maxHeight int, quality float64) (*service.NormalizedImage, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, errors.Errorf("invalid bounds %dx%d", maxWidth, maxHeight)
	}

	decoded, _, err := image.Decode(bytes.NewReader(src.Data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	bounds := decoded.Bounds()
	srcWidth, srcHeight := bounds.Dx(), bounds.Dy()
	if srcWidth == 0 || srcHeight == 0 {
		return nil, errors.New("image has zero dimension")
	}

	aspect := float64(srcWidth) / float64(srcHeight)

	// Width pass, then height pass against the intermediate result. The two
	// bounds are applied sequentially, not solved jointly.
	width, height := srcWidth, srcHeight
	if width > maxWidth {
		width = maxWidth
		height = int(math.Round(float64(width) / aspect))
	}
	if height > maxHeight {
		height = maxHeight
		width = int(math.Round(float64(height) * aspect))
	}

	scaled := decoded
	if width != srcWidth || height != srcHeight {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), decoded, bounds, draw.Over, nil)
		scaled = dst
	}

	mime := src.MIME
	if mime == "" {
		mime = defaultMIME
	}

	encoded, err := encode(scaled, mime, quality)
	if err != nil {
		return nil, err
	}

	n.logger.Debug("image normalized",
		slog.String("name", src.Name),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("size", util.FormatBytes(int64(len(encoded)))),
	)

	return &service.NormalizedImage{
		Name:   src.Name,
		MIME:   mime,
		Data:   encoded,
		Width:  width,
		Height: height,
	}, nil
}

func encode(img image.Image, mime string, quality float64) ([]byte, error) {
	if quality <= 0 || quality > 1 {
		quality = 0.8
	}

	var buf bytes.Buffer
	switch mime {
	case "image/png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, errors.Wrap(err, "failed to encode png")
		}
	case "image/gif":
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, errors.Wrap(err, "failed to encode gif")
		}
	default:
		opts := &jpeg.Options{Quality: int(math.Round(quality * 100))}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, errors.Wrap(err, "failed to encode jpeg")
		}
	}

	return buf.Bytes(), nil
}
