package squircle

import (
	"math"
	"testing"
)

func TestCornerRadii_ClampForRect(t *testing.T) {
	tests := []struct {
		name  string
		radii CornerRadii
		w, h  float64
		want  CornerRadii
	}{
		{
			name:  "fits unchanged",
			radii: UniformRadii(10),
			w:     100, h: 50,
			want: UniformRadii(10),
		},
		{
			name:  "top edge overclaimed",
			radii: CornerRadii{TopLeft: 60, TopRight: 60},
			w:     100, h: 50,
			// 120 > 100 on top, 60 > 50 on both sides; the tightest
			// factor is 100/120 == 50/60, so both end up at 50.
			want: CornerRadii{TopLeft: 50, TopRight: 50},
		},
		{
			name:  "ratio preserved",
			radii: CornerRadii{TopLeft: 90, TopRight: 30},
			w:     60, h: 1000,
			want: CornerRadii{TopLeft: 45, TopRight: 15},
		},
		{
			name:  "negative radii zeroed",
			radii: CornerRadii{TopLeft: -5, TopRight: 10},
			w:     100, h: 100,
			want: CornerRadii{TopRight: 10},
		},
		{
			name:  "empty box zeroes everything",
			radii: UniformRadii(10),
			w:     0, h: 100,
			want: CornerRadii{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.radii.ClampForRect(tt.w, tt.h)
			if !radiiNear(got, tt.want, 1e-12) {
				t.Errorf("ClampForRect(%v, %g, %g) = %v, want %v",
					tt.radii, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestCornerRadii_ClampPreservesEdgeSum(t *testing.T) {
	got := CornerRadii{TopLeft: 60, TopRight: 60}.ClampForRect(100, 50)
	if sum := got.TopLeft + got.TopRight; math.Abs(sum-100) > 1e-12 {
		t.Errorf("top edge sum = %g, want 100", sum)
	}
	if got.TopLeft != got.TopRight {
		t.Errorf("1:1 ratio not preserved: %v", got)
	}
}

func TestCornerRadii_Mirror(t *testing.T) {
	c := CornerRadii{TopLeft: 1, TopRight: 2, BottomRight: 3, BottomLeft: 4}
	got := c.Mirror()
	want := CornerRadii{TopLeft: 2, TopRight: 1, BottomRight: 4, BottomLeft: 3}
	if got != want {
		t.Errorf("Mirror() = %v, want %v", got, want)
	}
	if back := got.Mirror(); back != c {
		t.Errorf("double mirror = %v, want original %v", back, c)
	}
}

func TestCornerRadii_IsZero(t *testing.T) {
	if !(CornerRadii{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if UniformRadii(1).IsZero() {
		t.Error("non-zero radii should not report IsZero")
	}
}

func radiiNear(a, b CornerRadii, tol float64) bool {
	return math.Abs(a.TopLeft-b.TopLeft) <= tol &&
		math.Abs(a.TopRight-b.TopRight) <= tol &&
		math.Abs(a.BottomRight-b.BottomRight) <= tol &&
		math.Abs(a.BottomLeft-b.BottomLeft) <= tol
}
