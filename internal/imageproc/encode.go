package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"

	"cmcreport/internal/domain"
)

// flatten draws img over an opaque white canvas so transparent areas never
// turn black in the document.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// encoded is one encoder result.
type encoded struct {
	buf      []byte
	mimeType string
	quality  float64
}

// encode writes PNG when lossless, otherwise JPEG at quality. With a byte
// budget the JPEG quality is multiplied by step on every attempt over the
// budget, never dropping below floor. The last attempt is returned even when
// it is still over budget.
func encode(img image.Image, lossless bool, quality float64, opts Options) (*encoded, error) {
	if lossless {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: png: %v", domain.ErrEncode, err)
		}
		if buf.Len() == 0 {
			return nil, fmt.Errorf("%w: png encoder returned no data", domain.ErrEncode)
		}
		return &encoded{buf: buf.Bytes(), mimeType: domain.MimePNG, quality: 1}, nil
	}

	q := quality
	var last *encoded
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality(q)}); err != nil {
			return nil, fmt.Errorf("%w: jpeg: %v", domain.ErrEncode, err)
		}
		if buf.Len() == 0 {
			return nil, fmt.Errorf("%w: jpeg encoder returned no data", domain.ErrEncode)
		}
		last = &encoded{buf: buf.Bytes(), mimeType: domain.MimeJPEG, quality: q}
		if opts.MaxBytes == 0 || buf.Len() <= opts.MaxBytes || q <= opts.MinQuality {
			break
		}
		q = math.Max(q*opts.QualityStep, opts.MinQuality)
	}
	return last, nil
}

func jpegQuality(q float64) int {
	v := int(math.Round(q * 100))
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}
