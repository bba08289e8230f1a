// Package imageproc normalizes uploaded evidence images for embedding in a
// report: rotation, contain-fit display sizing and bounded re-encoding.
package imageproc

import (
	"context"
	"image"
	"log"
	"math"

	"github.com/disintegration/imaging"

	"cmcreport/internal/dimension"
	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// Normalizer implements port.ImageNormalizer.
type Normalizer struct {
	opts Options
}

// NewNormalizer creates a normalizer with the given policy.
func NewNormalizer(opts Options) port.ImageNormalizer {
	return &Normalizer{opts: opts.withDefaults()}
}

// Normalize fits one image into the target box. Every input is fully decoded
// with its EXIF orientation applied. Unrotated images in a format Word can
// embed are then returned byte for byte unless they carry an EXIF rotation or
// break the byte budget or the maximum dimension; everything else is rotated
// clockwise, resized, flattened on white and re-encoded.
func (n *Normalizer) Normalize(ctx context.Context, data []byte, rotation int, orientation domain.Orientation, target domain.TargetDimensions) (*domain.ProcessedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if target.DisplayWidth <= 0 || target.DisplayHeight <= 0 {
		box := dimension.BoxFor(domain.SizeNormal, orientation, 1)
		target.DisplayWidth, target.DisplayHeight = box.WidthPx, box.HeightPx
	}
	target = target.WithDefaults()

	src, err := inspect(data)
	if err != nil {
		return nil, err
	}

	if err := src.decode(); err != nil {
		return nil, err
	}

	rotation = NormalizeRotation(rotation)
	outW, outH := rotatedSize(src.width, src.height, rotation)
	displayW, displayH := FitContain(outW, outH, target.DisplayWidth, target.DisplayHeight)

	if rotation == 0 && !n.mustReencode(src) {
		return &domain.ProcessedImage{
			Buffer:        src.data,
			MimeType:      src.mimeType(),
			DisplayWidth:  displayW,
			DisplayHeight: displayH,
		}, nil
	}

	img := rotate(src.img, rotation)
	outW, outH = img.Bounds().Dx(), img.Bounds().Dy()

	k := renderFactor(outW, outH, displayW, target.RenderScale, target.MinWidth, target.MinHeight, n.opts.AllowUpscale, n.opts.MaxDimension)
	renderW := max(1, int(math.Round(float64(outW)*k)))
	renderH := max(1, int(math.Round(float64(outH)*k)))
	if renderW != outW || renderH != outH {
		img = imaging.Resize(img, renderW, renderH, imaging.Lanczos)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := encode(flatten(img), n.opts.Lossless, target.Quality, n.opts)
	if err != nil {
		log.Printf("imageproc.Normalize: encode failed: %v", err)
		return nil, err
	}
	if n.opts.MaxBytes > 0 && len(out.buf) > n.opts.MaxBytes {
		log.Printf("imageproc.Normalize: %dx%d output is %d bytes at quality %.2f, over budget %d",
			renderW, renderH, len(out.buf), out.quality, n.opts.MaxBytes)
	}

	return &domain.ProcessedImage{
		Buffer:        out.buf,
		MimeType:      out.mimeType,
		DisplayWidth:  displayW,
		DisplayHeight: displayH,
	}, nil
}

// mustReencode also covers EXIF-rotated JPEGs; their pixels are stored
// already turned.
func (n *Normalizer) mustReencode(src *source) bool {
	if !embeddable[src.format] || src.orientation != 1 {
		return true
	}
	if n.opts.MaxBytes > 0 && len(src.data) > n.opts.MaxBytes {
		return true
	}
	return max(src.width, src.height) > n.opts.MaxDimension
}

// rotate turns img clockwise by a normalized angle.
func rotate(img image.Image, rotation int) image.Image {
	switch rotation {
	case 90:
		return imaging.Rotate270(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
