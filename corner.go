package squircle

import "math"

// circleK is the control-point offset ratio approximating a quarter
// circle with a single cubic Bezier: 4/3 * (sqrt(2) - 1).
const circleK = 0.5522847498307936

// Ratios of the corner radius used by the two-segment continuous corner.
// Each corner half is one cubic whose end conditions are fixed: zero
// curvature where the curve meets the straight edge, and circle
// curvature 1/radius at the corner's 45 degree midpoint. Solving those
// conditions gives the ratios below.
const (
	// midInset is the midpoint's inset from the corner along both axes:
	// 1 - sqrt(2)/2.
	midInset = 0.2928932188134524

	// tangentStop is the distance from the corner, along the edge, of
	// the control point where the straight control run turns toward the
	// midpoint: 2 - sqrt(2).
	tangentStop = 0.5857864376269049

	// rampMin is the shortest edge runway that satisfies both end
	// conditions: tangentStop plus the straight control run
	// 3*(3-2*sqrt(2))/sqrt(2).
	rampMin = 0.9497474683058345
)

// SmoothRect returns a new path tracing a width x height rectangle whose
// corners are rounded with continuous curves. See AppendSmoothRect.
func SmoothRect(width, height float64, radii CornerRadii, smooth float64) *Path {
	p := NewPath()
	AppendSmoothRect(p, 0, 0, width, height, radii, smooth)
	return p
}

// AppendSmoothRect appends a rectangle with continuous rounded corners
// to p. The outline is emitted clockwise: it starts on the top edge just
// after the top-left corner and visits the top-right, bottom-right,
// bottom-left and top-left corners in order, then closes. The winding is
// the same no matter which radii are zero.
//
// smooth interpolates the corner profile: at 0 each corner is the
// classic single-arc rounded corner, at 1 the curve's tangent runway
// along the adjacent edges is longest. Out-of-range inputs are clamped,
// never rejected: radii shrink proportionally when an edge's pair sums
// past the edge length, smooth is clamped to [0, 1], and negative sizes
// collapse to zero. The result is always a closed path that does not
// self-intersect.
//
// A corner with radius 0 contributes no curve: the two adjacent edges
// meet in a plain right angle.
func AppendSmoothRect(p PathWriter, x, y, width, height float64, radii CornerRadii, smooth float64) {
	width = math.Max(0, width)
	height = math.Max(0, height)
	if smooth < 0 {
		smooth = 0
	} else if smooth > 1 {
		smooth = 1
	}
	if clamped := radii.ClampForRect(width, height); clamped != radii {
		Logger().Debug("corner radii clamped to fit box",
			"width", width, "height", height,
			"requested", radii, "clamped", clamped)
		radii = clamped
	}

	// Per-edge runways: each corner keeps its radius and extends along
	// the edge by up to smooth*radius before the curve starts.
	tlTop, trTop := edgeRunways(width, radii.TopLeft, radii.TopRight, smooth)
	blBottom, brBottom := edgeRunways(width, radii.BottomLeft, radii.BottomRight, smooth)
	tlLeft, blLeft := edgeRunways(height, radii.TopLeft, radii.BottomLeft, smooth)
	trRight, brRight := edgeRunways(height, radii.TopRight, radii.BottomRight, smooth)

	left, top := x, y
	right, bottom := x+width, y+height

	p.MoveTo(left+tlTop, top)

	// Top-right corner: enter on the top edge, exit on the right edge.
	p.LineTo(right-trTop, top)
	if r := radii.TopRight; r > 0 {
		if smooth == 0 {
			k := circleK * r
			p.CubicTo(right-r+k, top, right, top+r-k, right, top+r)
		} else {
			in, out := trTop, trRight
			aIn, aOut := rampRun(in, r), rampRun(out, r)
			t, m := tangentStop*r, midInset*r
			p.CubicTo(right-in+aIn, top, right-t, top, right-m, top+m)
			p.CubicTo(right, top+t, right, top+out-aOut, right, top+out)
		}
	}

	// Bottom-right corner: enter on the right edge, exit on the bottom edge.
	p.LineTo(right, bottom-brRight)
	if r := radii.BottomRight; r > 0 {
		if smooth == 0 {
			k := circleK * r
			p.CubicTo(right, bottom-r+k, right-r+k, bottom, right-r, bottom)
		} else {
			in, out := brRight, brBottom
			aIn, aOut := rampRun(in, r), rampRun(out, r)
			t, m := tangentStop*r, midInset*r
			p.CubicTo(right, bottom-in+aIn, right, bottom-t, right-m, bottom-m)
			p.CubicTo(right-t, bottom, right-out+aOut, bottom, right-out, bottom)
		}
	}

	// Bottom-left corner: enter on the bottom edge, exit on the left edge.
	p.LineTo(left+blBottom, bottom)
	if r := radii.BottomLeft; r > 0 {
		if smooth == 0 {
			k := circleK * r
			p.CubicTo(left+r-k, bottom, left, bottom-r+k, left, bottom-r)
		} else {
			in, out := blBottom, blLeft
			aIn, aOut := rampRun(in, r), rampRun(out, r)
			t, m := tangentStop*r, midInset*r
			p.CubicTo(left+in-aIn, bottom, left+t, bottom, left+m, bottom-m)
			p.CubicTo(left, bottom-t, left, bottom-out+aOut, left, bottom-out)
		}
	}

	// Top-left corner: enter on the left edge, exit on the top edge at
	// the path's starting point.
	p.LineTo(left, top+tlLeft)
	if r := radii.TopLeft; r > 0 {
		if smooth == 0 {
			k := circleK * r
			p.CubicTo(left, top+r-k, left+r-k, top, left+r, top)
		} else {
			in, out := tlLeft, tlTop
			aIn, aOut := rampRun(in, r), rampRun(out, r)
			t, m := tangentStop*r, midInset*r
			p.CubicTo(left, top+in-aIn, left, top+t, left+m, top+m)
			p.CubicTo(left+t, top, left+out-aOut, top, left+out, top)
		}
	}

	p.Close()
}

// edgeRunways splits an edge between its two corners. Each corner keeps
// its radius and receives as much of its smoothing extension as fits;
// when the extensions collide both shrink by the same factor. Radii are
// assumed pre-clamped so r1+r2 <= edge.
func edgeRunways(edge, r1, r2, smooth float64) (p1, p2 float64) {
	e1 := smooth * r1
	e2 := smooth * r2
	avail := edge - r1 - r2
	if avail < 0 {
		avail = 0
	}
	if sum := e1 + e2; sum > avail {
		f := avail / sum
		e1 *= f
		e2 *= f
	}
	return r1 + e1, r2 + e2
}

// rampRun is the length of the straight control run at the start of a
// half-corner cubic: whatever remains of the runway once the fixed turn
// geometry is accounted for. A clamped runway shortens the run first.
func rampRun(runway, r float64) float64 {
	a := runway - rampMin*r
	if a < 0 {
		a = 0
	}
	return a
}
