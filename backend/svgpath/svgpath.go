// Package svgpath serialises paths to SVG path data, for rendering
// targets that consume the "d" attribute of an SVG <path> element.
package svgpath

import (
	"strconv"
	"strings"

	"github.com/gogpu/squircle"
)

// Writer accumulates SVG path data. It implements squircle.PathWriter,
// so geometry can be streamed into it directly. The zero value is ready
// to use.
type Writer struct {
	b strings.Builder
}

// MoveTo appends an absolute moveto command.
func (w *Writer) MoveTo(x, y float64) { w.command('M', x, y) }

// LineTo appends an absolute lineto command.
func (w *Writer) LineTo(x, y float64) { w.command('L', x, y) }

// CubicTo appends an absolute cubic curveto command.
func (w *Writer) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	w.command('C', c1x, c1y, c2x, c2y, x, y)
}

// Close appends a closepath command.
func (w *Writer) Close() {
	if w.b.Len() > 0 {
		w.b.WriteByte(' ')
	}
	w.b.WriteByte('Z')
}

// Data returns the accumulated path data, e.g.
// "M 10 0 L 90 0 C 95.5 0 100 4.5 100 10 Z".
func (w *Writer) Data() string { return w.b.String() }

func (w *Writer) command(op byte, coords ...float64) {
	if w.b.Len() > 0 {
		w.b.WriteByte(' ')
	}
	w.b.WriteByte(op)
	for _, c := range coords {
		w.b.WriteByte(' ')
		w.b.WriteString(coord(c))
	}
}

// coord formats a coordinate with up to four decimal places, trailing
// zeros trimmed.
func coord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Data returns the SVG path data string for p.
func Data(p *squircle.Path) string {
	var w Writer
	p.Replay(&w)
	return w.Data()
}
