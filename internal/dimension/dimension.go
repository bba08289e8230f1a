// Package dimension converts between centimeters, pixels, twips and EMUs and
// computes the geometry of report table cells. All functions are pure and
// total: out-of-range inputs are clamped, never rejected.
package dimension

import (
	"math"

	"cmcreport/internal/domain"
)

// Unit conversion factors.
const (
	PixelsPerCm      = 37.7952755906 // 96 DPI
	TwipsPerInch     = 1440
	CmPerInch        = 2.54
	EMUPerPixel      = 9525
	PageWidthCm      = 21.0 // A4
	MinUsableWidthCm = 0.1
	MinScale         = 0.01

	// DefaultMarginTwips is half an inch.
	DefaultMarginTwips = 720
)

// Box is a named size-class box, both in centimeters and pixels.
type Box struct {
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
	WidthPx  int     `json:"width_px"`
	HeightPx int     `json:"height_px"`
}

// Cell is the pixel geometry of one table cell.
type Cell struct {
	WidthPx       int `json:"width_px"`
	HeightPx      int `json:"height_px"`
	UsableWidthPx int `json:"usable_width_px"`
}

type cmBox struct{ w, h float64 }

// Base boxes. Vertical normal is the 2.97 x 6.17 cm box of the old report
// layout. Its 11 x 5.56 cm horizontal box was wider than a default three
// column cell (about 6.15 cm), so the horizontal classes keep its aspect ratio
// at widths that fit under the cell. Every size class of an orientation keeps
// the aspect ratio of its normal box.
var boxes = map[domain.Orientation]map[domain.SizeClass]cmBox{
	domain.OrientationHorizontal: {
		domain.SizeNormal:  {5.00, 2.53},
		domain.SizeMediana: {5.60, 2.83},
		domain.SizeGrande:  {6.10, 3.08},
	},
	domain.OrientationVertical: {
		domain.SizeNormal:  {2.97, 6.17},
		domain.SizeMediana: {3.80, 7.89},
		domain.SizeGrande:  {4.60, 9.56},
	},
}

// CentimetersToPixels converts centimeters to 96 DPI pixels.
func CentimetersToPixels(cm float64) float64 { return cm * PixelsPerCm }

// PixelsToCentimeters converts 96 DPI pixels to centimeters.
func PixelsToCentimeters(px float64) float64 { return px / PixelsPerCm }

// CentimetersToTwips converts centimeters to twips (1/1440 inch).
func CentimetersToTwips(cm float64) float64 { return cm / CmPerInch * TwipsPerInch }

// TwipsToCentimeters converts twips to centimeters.
func TwipsToCentimeters(tw float64) float64 { return tw / TwipsPerInch * CmPerInch }

// PixelsToEMU converts display pixels to drawing extents.
func PixelsToEMU(px int) int64 { return int64(px) * EMUPerPixel }

// BoxFor returns the base box of the size class and orientation multiplied by
// scale. Unknown size classes fall back to normal.
func BoxFor(size domain.SizeClass, orientation domain.Orientation, scale float64) Box {
	scale = clampScale(scale)
	table := boxes[domain.ParseOrientation(string(orientation))]
	b, ok := table[size]
	if !ok {
		b = table[domain.SizeNormal]
	}
	w, h := b.w*scale, b.h*scale
	return Box{
		WidthCm:  w,
		HeightCm: h,
		WidthPx:  atLeastOne(math.Round(CentimetersToPixels(w))),
		HeightPx: atLeastOne(math.Round(CentimetersToPixels(h))),
	}
}

// AspectRatio is height over width of the orientation's normal box.
func AspectRatio(orientation domain.Orientation) float64 {
	b := boxes[domain.ParseOrientation(string(orientation))][domain.SizeNormal]
	return b.h / b.w
}

// UsableWidthCm is the A4 page width minus both margins, floored at
// MinUsableWidthCm.
func UsableWidthCm(leftTwips, rightTwips int) float64 {
	w := PageWidthCm - TwipsToCentimeters(float64(leftTwips)) - TwipsToCentimeters(float64(rightTwips))
	return math.Max(MinUsableWidthCm, w)
}

// CellTargetDimensions splits the usable page width into columns. The cell
// width is scaled but never exceeds the usable width; the height always
// follows the normal box aspect ratio of the orientation. Widths are floored
// so that columns * WidthPx never exceeds UsableWidthPx at scale 1.
func CellTargetDimensions(columns int, orientation domain.Orientation, leftTwips, rightTwips int, scale float64) Cell {
	if columns < 1 {
		columns = 1
	}
	scale = clampScale(scale)

	usable := atLeastOne(math.Floor(CentimetersToPixels(UsableWidthCm(leftTwips, rightTwips))))
	width := atLeastOne(math.Floor(float64(usable) / float64(columns) * scale))
	if width > usable {
		width = usable
	}
	height := atLeastOne(math.Round(float64(width) * AspectRatio(orientation)))

	return Cell{WidthPx: width, HeightPx: height, UsableWidthPx: usable}
}

// UsableWidthTwips is the usable page width in twips.
func UsableWidthTwips(leftTwips, rightTwips int) int {
	page := int(math.Round(CentimetersToTwips(PageWidthCm)))
	floor := int(math.Ceil(CentimetersToTwips(MinUsableWidthCm)))
	if w := page - leftTwips - rightTwips; w > floor {
		return w
	}
	return floor
}

// CellWidthsTwips returns one width per column whose sum is exactly the usable
// page width. The remainder goes to the leading cells.
func CellWidthsTwips(columns, leftTwips, rightTwips int) []int {
	if columns < 1 {
		columns = 1
	}
	total := UsableWidthTwips(leftTwips, rightTwips)
	base, rem := total/columns, total%columns
	out := make([]int, columns)
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

func clampScale(scale float64) float64 {
	if math.IsNaN(scale) || scale < MinScale {
		return MinScale
	}
	return scale
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
