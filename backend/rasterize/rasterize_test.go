package rasterize

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/squircle"
)

func TestMask_SmoothRect(t *testing.T) {
	const w, h = 100, 60
	p := squircle.SmoothRect(w, h, squircle.UniformRadii(20), 0.8)
	mask := Mask(w, h, p)

	if got := mask.Bounds(); got != image.Rect(0, 0, w, h) {
		t.Fatalf("mask bounds = %v", got)
	}

	// The center is fully covered.
	if a := mask.AlphaAt(w/2, h/2).A; a != 0xff {
		t.Errorf("center alpha = %d, want 255", a)
	}
	// The extreme corners are cut away by the rounding.
	for _, pt := range []image.Point{{0, 0}, {w - 1, 0}, {w - 1, h - 1}, {0, h - 1}} {
		if a := mask.AlphaAt(pt.X, pt.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", pt, a)
		}
	}
	// Edge midpoints sit on the outline's straight runs.
	if a := mask.AlphaAt(w/2, 1).A; a == 0 {
		t.Error("top edge midpoint should be covered")
	}
}

func TestMask_SquareCornersStayCovered(t *testing.T) {
	const w, h = 80, 80
	radii := squircle.CornerRadii{TopRight: 40, BottomLeft: 40}
	mask := Mask(w, h, squircle.SmoothRect(w, h, radii, 1))

	// Square corners are kept...
	if a := mask.AlphaAt(1, 1).A; a != 0xff {
		t.Errorf("top-left square corner alpha = %d, want 255", a)
	}
	if a := mask.AlphaAt(w-2, h-2).A; a != 0xff {
		t.Errorf("bottom-right square corner alpha = %d, want 255", a)
	}
	// ...rounded ones are cut.
	if a := mask.AlphaAt(w-1, 0).A; a != 0 {
		t.Errorf("top-right rounded corner alpha = %d, want 0", a)
	}
	if a := mask.AlphaAt(0, h-1).A; a != 0 {
		t.Errorf("bottom-left rounded corner alpha = %d, want 0", a)
	}
}

func TestFill(t *testing.T) {
	const w, h = 60, 40
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	Fill(dst, squircle.SmoothRect(w, h, squircle.UniformRadii(10), 0.5), color.RGBA{R: 255, A: 255})

	if got := dst.RGBAAt(w/2, h/2); got.R != 255 || got.A != 255 {
		t.Errorf("center pixel = %v, want opaque red", got)
	}
	if got := dst.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner pixel = %v, want untouched", got)
	}
}
