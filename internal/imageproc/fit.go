package imageproc

import "math"

// NormalizeRotation reduces any angle to one of 0, 90, 180 or 270 by taking it
// modulo 360 and snapping to the nearest right angle.
func NormalizeRotation(deg int) int {
	r := ((deg % 360) + 360) % 360
	return ((r + 45) / 90 * 90) % 360
}

// rotatedSize returns the canvas size after a clockwise rotation.
func rotatedSize(w, h, rotation int) (int, int) {
	if rotation == 90 || rotation == 270 {
		return h, w
	}
	return w, h
}

// FitContain scales (srcW, srcH) to the largest size that fits inside
// (boxW, boxH) without changing the aspect ratio.
func FitContain(srcW, srcH, boxW, boxH int) (int, int) {
	if srcW < 1 || srcH < 1 {
		return max(boxW, 1), max(boxH, 1)
	}
	scale := math.Min(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))
	w := max(1, int(math.Round(float64(srcW)*scale)))
	h := max(1, int(math.Round(float64(srcH)*scale)))
	return min(w, max(boxW, 1)), min(h, max(boxH, 1))
}

// renderFactor is the resize factor applied to the rotated source before
// encoding. It starts from renderScale times the display size, grows toward
// the minimum size, and is capped by the source resolution (unless
// allowUpscale) and by maxDim on the longest side.
func renderFactor(srcW, srcH, displayW int, renderScale float64, minW, minH int, allowUpscale bool, maxDim int) float64 {
	k := float64(displayW) * renderScale / float64(srcW)
	if minW > 0 {
		k = math.Max(k, float64(minW)/float64(srcW))
	}
	if minH > 0 {
		k = math.Max(k, float64(minH)/float64(srcH))
	}
	if !allowUpscale && k > 1 {
		k = 1
	}
	if longest := float64(max(srcW, srcH)); longest*k > float64(maxDim) {
		k = float64(maxDim) / longest
	}
	return k
}
