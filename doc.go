// Package squircle builds rectangle outlines whose corners are rounded
// with a continuous, superellipse-like curve instead of a plain circular
// arc — the corner profile used by iOS icons and "smooth corner" UI
// shapes.
//
// # Overview
//
// The package is a shape factory for UI toolkits: it computes vector
// paths, it never draws. The core is a single pure function that turns a
// box size, four per-corner pixel radii and a smoothing factor into an
// ordered sequence of path elements (move, line, cubic curve, close).
// Everything else is thin glue: corner sizes declared in dp, px or
// percent are resolved against the box by [CornerSize], [Shape] bundles
// the four declarations with a smoothing factor, and the backend
// sub-packages adapt the element sequence to concrete rendering targets
// (ebiten, an image rasterizer, SVG path data).
//
// # Quick Start
//
//	import "github.com/gogpu/squircle"
//
//	// A shape with 16dp corners at 60% smoothing.
//	shape := squircle.NewShape(squircle.Dp(16), 0.6)
//
//	// Resolve it against a layout box.
//	path := shape.Path(200, 100, squircle.Metric{PxPerDp: 2})
//
//	// Hand path.Elements() to a backend, e.g. backend/svgpath.
//
// At smoothing 0 every corner degenerates to the classic single-arc
// rounded rectangle; at smoothing 1 the curve's tangent runway along the
// adjacent edges is longest and the transition into the straight edge is
// most gradual. All inputs are clamped rather than rejected: the builder
// always returns a closed, non-self-intersecting path.
//
// # Thread Safety
//
// Path construction is a pure function of its inputs and allocates only
// caller-owned output; it is safe to call from any goroutine without
// coordination. Paths themselves are not synchronized: do not mutate a
// Path from multiple goroutines.
package squircle
