package squircle

import "math"

// CornerRadii holds the four corner radii of a rectangle, in pixels.
// All values are non-negative; the zero value is a plain rectangle.
type CornerRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadii returns radii with the same value on all four corners.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{
		TopLeft:     r,
		TopRight:    r,
		BottomRight: r,
		BottomLeft:  r,
	}
}

// IsZero reports whether all four radii are zero.
func (c CornerRadii) IsZero() bool {
	return c == CornerRadii{}
}

// Mirror returns the radii with the left and right corner pairs swapped.
// The path builders are direction-agnostic; callers laying out
// right-to-left swap the declared corners before building.
func (c CornerRadii) Mirror() CornerRadii {
	return CornerRadii{
		TopLeft:     c.TopRight,
		TopRight:    c.TopLeft,
		BottomRight: c.BottomLeft,
		BottomLeft:  c.BottomRight,
	}
}

// ClampForRect returns the radii adjusted to fit a width x height box:
// negative radii become zero, and when the two radii touching any edge
// sum past the edge length all four radii shrink by the same factor, so
// their ratios are preserved. The result never makes the outline of the
// box overlap itself.
func (c CornerRadii) ClampForRect(width, height float64) CornerRadii {
	width = math.Max(0, width)
	height = math.Max(0, height)
	c = CornerRadii{
		TopLeft:     math.Max(0, c.TopLeft),
		TopRight:    math.Max(0, c.TopRight),
		BottomRight: math.Max(0, c.BottomRight),
		BottomLeft:  math.Max(0, c.BottomLeft),
	}

	factor := 1.0
	edges := [4][2]float64{
		{width, c.TopLeft + c.TopRight},
		{width, c.BottomLeft + c.BottomRight},
		{height, c.TopLeft + c.BottomLeft},
		{height, c.TopRight + c.BottomRight},
	}
	for _, e := range edges {
		if e[1] > e[0] {
			factor = math.Min(factor, e[0]/e[1])
		}
	}
	if factor < 1 {
		c.TopLeft *= factor
		c.TopRight *= factor
		c.BottomRight *= factor
		c.BottomLeft *= factor
	}
	return c
}
