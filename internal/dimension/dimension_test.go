package dimension

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"cmcreport/internal/domain"
)

func TestConversions_RoundTrip(t *testing.T) {
	assert.InDelta(t, 37.7952755906, CentimetersToPixels(1), 1e-9)
	assert.InDelta(t, 1.0, PixelsToCentimeters(CentimetersToPixels(1)), 1e-9)
	assert.InDelta(t, 1440, CentimetersToTwips(2.54), 1e-9)
	assert.InDelta(t, 2.54, TwipsToCentimeters(1440), 1e-9)
	assert.Equal(t, int64(952500), PixelsToEMU(100))
}

func TestBoxFor(t *testing.T) {
	tests := []struct {
		name        string
		size        domain.SizeClass
		orientation domain.Orientation
		scale       float64
		wantW       int
		wantH       int
	}{
		{"horizontal normal", domain.SizeNormal, domain.OrientationHorizontal, 1, 189, 96},
		{"vertical normal", domain.SizeNormal, domain.OrientationVertical, 1, 112, 233},
		{"unknown size falls back to normal", "huge", domain.OrientationHorizontal, 1, 189, 96},
		{"scaled", domain.SizeNormal, domain.OrientationHorizontal, 2, 378, 191},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BoxFor(tt.size, tt.orientation, tt.scale)
			assert.Equal(t, tt.wantW, b.WidthPx)
			assert.Equal(t, tt.wantH, b.HeightPx)
		})
	}
}

func TestBoxFor_SizeClassesKeepAspect(t *testing.T) {
	for _, o := range domain.Orientations {
		want := AspectRatio(o)
		prevW := 0.0
		for _, s := range domain.SizeClasses {
			b := BoxFor(s, o, 1)
			assert.InDelta(t, want, b.HeightCm/b.WidthCm, 0.005, "%s/%s", o, s)
			assert.Greater(t, b.WidthCm, prevW)
			prevW = b.WidthCm
		}
	}
}

func TestBoxFor_FitsDefaultCell(t *testing.T) {
	cellCm := UsableWidthCm(DefaultMarginTwips, DefaultMarginTwips) / 3

	v := BoxFor(domain.SizeNormal, domain.OrientationVertical, 1)
	assert.InDelta(t, 2.97, v.WidthCm, 1e-9)
	assert.InDelta(t, 6.17, v.HeightCm, 1e-9)
	assert.InDelta(t, 5.56/11.0, AspectRatio(domain.OrientationHorizontal), 0.001)

	for _, o := range domain.Orientations {
		for _, s := range domain.SizeClasses {
			b := BoxFor(s, o, 1)
			assert.LessOrEqual(t, b.WidthCm, cellCm, "%s/%s", o, s)
		}
	}
}

func TestCellTargetDimensions_DefaultLayout(t *testing.T) {
	c := CellTargetDimensions(3, domain.OrientationHorizontal, DefaultMarginTwips, DefaultMarginTwips, 1)

	assert.Equal(t, 697, c.UsableWidthPx)
	assert.Equal(t, 232, c.WidthPx)
	assert.Equal(t, 117, c.HeightPx)
}

func TestCellTargetDimensions_WidthConservation(t *testing.T) {
	margins := []int{0, 360, 720, 1440, 5000, 20000}
	for cols := 1; cols <= 12; cols++ {
		for _, l := range margins {
			for _, r := range margins {
				c := CellTargetDimensions(cols, domain.OrientationHorizontal, l, r, 1)
				assert.GreaterOrEqual(t, c.UsableWidthPx, 1)
				assert.GreaterOrEqual(t, c.WidthPx, 1)
				if c.UsableWidthPx >= cols {
					assert.LessOrEqual(t, cols*c.WidthPx, c.UsableWidthPx, "cols=%d l=%d r=%d", cols, l, r)
				}
			}
		}
	}
}

func TestCellTargetDimensions_Clamps(t *testing.T) {
	c := CellTargetDimensions(0, domain.OrientationVertical, 720, 720, -3)
	assert.GreaterOrEqual(t, c.WidthPx, 1)
	assert.GreaterOrEqual(t, c.HeightPx, 1)

	huge := CellTargetDimensions(3, domain.OrientationHorizontal, 720, 720, 100)
	assert.Equal(t, huge.UsableWidthPx, huge.WidthPx)

	nan := CellTargetDimensions(2, domain.OrientationHorizontal, 720, 720, math.NaN())
	assert.GreaterOrEqual(t, nan.WidthPx, 1)
}

func TestCellTargetDimensions_HeightIgnoresScale(t *testing.T) {
	for _, o := range domain.Orientations {
		for _, scale := range []float64{0.5, 1, 1.5, 2} {
			c := CellTargetDimensions(3, o, 720, 720, scale)
			want := math.Round(float64(c.WidthPx) * AspectRatio(o))
			assert.Equal(t, int(want), c.HeightPx)
		}
	}
}

func TestCellWidthsTwips_SumEqualsUsableWidth(t *testing.T) {
	for cols := 1; cols <= 7; cols++ {
		widths := CellWidthsTwips(cols, 720, 720)
		assert.Len(t, widths, cols)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		assert.Equal(t, UsableWidthTwips(720, 720), sum)
	}
	assert.Equal(t, 10466, UsableWidthTwips(720, 720))
}

func TestUsableWidth_NeverNegative(t *testing.T) {
	assert.Greater(t, UsableWidthTwips(10000, 10000), 0)
	assert.InDelta(t, MinUsableWidthCm, UsableWidthCm(10000, 10000), 1e-9)
}
