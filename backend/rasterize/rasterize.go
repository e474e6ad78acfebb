// Package rasterize fills paths into images using the
// golang.org/x/image/vector rasterizer. It covers the fill and clip-mask
// output boundary for software rendering targets.
package rasterize

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/squircle"
)

// Writer streams path commands into a vector rasterizer. It implements
// squircle.PathWriter. The rasterizer accumulates coverage; call its
// Draw method to composite the result.
type Writer struct {
	Rasterizer *vector.Rasterizer
}

// MoveTo starts a new subpath at (x, y).
func (w Writer) MoveTo(x, y float64) { w.Rasterizer.MoveTo(float32(x), float32(y)) }

// LineTo adds a line segment.
func (w Writer) LineTo(x, y float64) { w.Rasterizer.LineTo(float32(x), float32(y)) }

// CubicTo adds a cubic curve segment.
func (w Writer) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	w.Rasterizer.CubeTo(
		float32(c1x), float32(c1y),
		float32(c2x), float32(c2y),
		float32(x), float32(y),
	)
}

// Close closes the current subpath.
func (w Writer) Close() { w.Rasterizer.ClosePath() }

// Fill rasterizes p and composites it over dst with a uniform color.
// Path coordinates are interpreted relative to dst's bounds origin.
func Fill(dst draw.Image, p *squircle.Path, c color.Color) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	p.Replay(Writer{Rasterizer: r})
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Mask rasterizes p into a new width x height alpha mask, suitable as a
// clip mask for draw.DrawMask.
func Mask(width, height int, p *squircle.Path) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src
	p.Replay(Writer{Rasterizer: r})
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 0xff}), image.Point{})
	return dst
}
