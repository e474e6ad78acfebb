package squircle

import "math"

// Metric converts density-independent corner declarations to pixels.
// The zero value represents a 1-to-1 scale from dp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float64
}

func (m Metric) pxPerDp() float64 {
	if m.PxPerDp == 0 {
		return 1
	}
	return m.PxPerDp
}

// CornerSize declares the size of one corner. A declaration is resolved
// to a pixel radius against the box the shape is laid out in; the result
// is never negative.
type CornerSize interface {
	Resolve(width, height float64, m Metric) float64
}

// Dp declares a corner radius in density-independent pixels. 1 dp has
// the same apparent size across displays.
type Dp float64

// Resolve converts the dp length to pixels using the metric's density.
func (d Dp) Resolve(width, height float64, m Metric) float64 {
	return math.Max(0, float64(d)*m.pxPerDp())
}

// Px declares a corner radius as an absolute pixel length.
type Px float64

// Resolve returns the pixel length unchanged (clamped to zero).
func (px Px) Resolve(width, height float64, m Metric) float64 {
	return math.Max(0, float64(px))
}

// Percent declares a corner radius as a percentage (0-100) of the
// shape's shorter side. Percent(50) on a square gives a capsule corner.
type Percent float64

// Resolve returns the given percentage of the box's shorter side.
func (pc Percent) Resolve(width, height float64, m Metric) float64 {
	side := math.Min(math.Max(0, width), math.Max(0, height))
	return math.Max(0, side*float64(pc)/100)
}
