package imageproc

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register gif
	_ "image/jpeg" // register jpeg
	_ "image/png"  // register png

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"  // register bmp
	_ "golang.org/x/image/tiff" // register tiff
	_ "golang.org/x/image/webp" // register webp

	"cmcreport/internal/domain"
)

var formatMime = map[string]string{
	"jpeg": domain.MimeJPEG,
	"png":  domain.MimePNG,
	"gif":  domain.MimeGIF,
	"webp": domain.MimeWebP,
	"bmp":  domain.MimeBMP,
	"tiff": domain.MimeTIFF,
}

// embeddable formats can be placed in a .docx as-is.
var embeddable = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

// source is an inspected input image. width and height are as displayed, after
// the EXIF orientation is applied. img is nil until decode is called.
type source struct {
	data        []byte
	format      string
	width       int
	height      int
	orientation int
	img         image.Image
}

// inspect reads the image size from the header and the EXIF orientation of
// JPEGs. When the header cannot be read it falls back to a full decode.
func inspect(data []byte) (*source, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrInput)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		src := &source{data: data, orientation: 1}
		if err := src.decode(); err != nil {
			return nil, err
		}
		return src, nil
	}

	src := &source{data: data, format: format, width: cfg.Width, height: cfg.Height, orientation: 1}
	if format == "jpeg" {
		src.orientation = exifOrientation(data)
	}
	if src.orientation >= 5 {
		src.width, src.height = src.height, src.width
	}
	return src, nil
}

// exifOrientation returns the EXIF orientation tag (1-8), or 1 when the image
// carries none.
func exifOrientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return 1
	}
	return v
}

// decode fully decodes the source with the EXIF orientation applied. Every
// image is decoded once, passthrough included, so truncated data is rejected.
func (s *source) decode() error {
	if s.img != nil {
		return nil
	}
	img, err := imaging.Decode(bytes.NewReader(s.data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("%w: decoding image: %v", domain.ErrInput, err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: image has no pixels", domain.ErrInput)
	}
	s.img = img
	s.width, s.height = b.Dx(), b.Dy()
	return nil
}

func (s *source) mimeType() string {
	if m, ok := formatMime[s.format]; ok {
		return m
	}
	return "application/octet-stream"
}
