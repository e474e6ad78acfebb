package squircle

// Shape describes a continuous-corner rounded rectangle: four corner
// size declarations plus a smoothing factor. A Shape is a value; resolve
// it against a layout box with Path or PathInDirection. A nil corner
// size means a square corner.
type Shape struct {
	TopLeft     CornerSize
	TopRight    CornerSize
	BottomRight CornerSize
	BottomLeft  CornerSize

	// Smoothing interpolates the corner profile between a plain circular
	// arc (0) and the maximum continuous-curve effect (1).
	Smoothing float64
}

// NewShape creates a shape with the same corner size on all four corners.
func NewShape(size CornerSize, smoothing float64) Shape {
	return Shape{
		TopLeft:     size,
		TopRight:    size,
		BottomRight: size,
		BottomLeft:  size,
		Smoothing:   smoothing,
	}
}

// NewShapePerCorner creates a shape with independent corner sizes.
func NewShapePerCorner(topLeft, topRight, bottomRight, bottomLeft CornerSize, smoothing float64) Shape {
	return Shape{
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomRight: bottomRight,
		BottomLeft:  bottomLeft,
		Smoothing:   smoothing,
	}
}

// Radii resolves the declared corner sizes against a box of the given
// pixel size and clamps the result so no edge is overclaimed.
func (s Shape) Radii(width, height float64, m Metric) CornerRadii {
	radii := CornerRadii{
		TopLeft:     resolveSize(s.TopLeft, width, height, m),
		TopRight:    resolveSize(s.TopRight, width, height, m),
		BottomRight: resolveSize(s.BottomRight, width, height, m),
		BottomLeft:  resolveSize(s.BottomLeft, width, height, m),
	}
	return radii.ClampForRect(width, height)
}

// Path traces the shape's outline for a box of the given pixel size.
func (s Shape) Path(width, height float64, m Metric) *Path {
	return SmoothRect(width, height, s.Radii(width, height, m), s.Smoothing)
}

// PathInDirection is Path with layout-direction awareness: in an RTL
// layout the left and right corner declarations swap sides. The geometry
// itself stays direction-agnostic.
func (s Shape) PathInDirection(width, height float64, m Metric, dir Direction) *Path {
	radii := s.Radii(width, height, m)
	if dir == RTL {
		radii = radii.Mirror()
	}
	return SmoothRect(width, height, radii, s.Smoothing)
}

func resolveSize(size CornerSize, width, height float64, m Metric) float64 {
	if size == nil {
		return 0
	}
	return size.Resolve(width, height, m)
}
