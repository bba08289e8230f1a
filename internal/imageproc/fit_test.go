package imageproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRotation(t *testing.T) {
	tests := map[int]int{
		0: 0, 90: 90, 180: 180, 270: 270, 360: 0, 450: 90,
		-90: 270, -180: 180, 44: 0, 46: 90, 315: 0, 300: 270,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeRotation(in), "rotation %d", in)
	}
}

func TestFitContain(t *testing.T) {
	tests := []struct {
		srcW, srcH, boxW, boxH int
		wantW, wantH           int
	}{
		{400, 200, 200, 200, 200, 100},
		{200, 400, 200, 200, 100, 200},
		{100, 50, 400, 400, 400, 200},
		{3000, 1, 10, 10, 10, 1},
		{0, 0, 30, 20, 30, 20},
	}
	for _, tt := range tests {
		w, h := FitContain(tt.srcW, tt.srcH, tt.boxW, tt.boxH)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}

func TestRenderFactor(t *testing.T) {
	// Render scale doubles the display size.
	assert.InDelta(t, 0.5, renderFactor(1000, 500, 250, 2, 0, 0, false, 4096), 1e-9)
	// Minimum width raises the factor, capped at the source.
	assert.InDelta(t, 1.0, renderFactor(1000, 500, 250, 1, 2000, 0, false, 4096), 1e-9)
	assert.InDelta(t, 2.0, renderFactor(1000, 500, 250, 1, 2000, 0, true, 4096), 1e-9)
	// Longest side never exceeds the maximum dimension.
	assert.InDelta(t, 0.1, renderFactor(1000, 500, 250, 4, 0, 0, true, 100), 1e-9)
}
