// Package ebitenpath adapts paths to ebiten's vector path primitive, for
// games and UIs rendering with github.com/hajimehoshi/ebiten/v2.
package ebitenpath

import (
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/squircle"
)

// Writer streams path commands into an ebiten vector path. It implements
// squircle.PathWriter.
type Writer struct {
	Path *vector.Path
}

// MoveTo starts a new subpath at (x, y).
func (w Writer) MoveTo(x, y float64) { w.Path.MoveTo(float32(x), float32(y)) }

// LineTo adds a line segment.
func (w Writer) LineTo(x, y float64) { w.Path.LineTo(float32(x), float32(y)) }

// CubicTo adds a cubic curve segment.
func (w Writer) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	w.Path.CubicTo(
		float32(c1x), float32(c1y),
		float32(c2x), float32(c2y),
		float32(x), float32(y),
	)
}

// Close closes the current subpath.
func (w Writer) Close() { w.Path.Close() }

// Append replays p into an existing ebiten vector path.
func Append(dst *vector.Path, p *squircle.Path) {
	p.Replay(Writer{Path: dst})
}

// Path converts p to a new ebiten vector path. Feed the result to
// vector.Path.AppendVerticesAndIndicesForFilling (or the stroke variant)
// to draw it.
func Path(p *squircle.Path) *vector.Path {
	var out vector.Path
	Append(&out, p)
	return &out
}
