package squircle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathBuilder_Basic(t *testing.T) {
	path := BuildPath().
		MoveTo(0, 0).
		LineTo(100, 0).
		LineTo(100, 100).
		Close().
		Build()

	if path == nil {
		t.Fatal("expected non-nil path")
	}
	if count := len(path.Elements()); count != 4 { // MoveTo, LineTo, LineTo, Close
		t.Errorf("expected 4 elements, got %d", count)
	}
}

func TestPathBuilder_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		builder func() *PathBuilder
		elems   int
	}{
		{"Rect", func() *PathBuilder { return BuildPath().Rect(0, 0, 100, 100) }, 5},
		{"RoundRect", func() *PathBuilder { return BuildPath().RoundRect(0, 0, 100, 100, 10) }, 10},
		{"SmoothRect", func() *PathBuilder {
			return BuildPath().SmoothRect(0, 0, 100, 100, UniformRadii(10), 0.5)
		}, 14},
		{"SmoothRectSquare", func() *PathBuilder {
			return BuildPath().SmoothRect(0, 0, 100, 100, CornerRadii{}, 0.5)
		}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.builder().Build()
			if count := len(path.Elements()); count != tt.elems {
				t.Errorf("expected %d elements, got %d", tt.elems, count)
			}
		})
	}
}

func TestPathBuilder_Chaining(t *testing.T) {
	path := BuildPath().
		Rect(0, 0, 50, 50).
		SmoothRect(100, 0, 50, 50, UniformRadii(10), 1).
		Build()

	// Rect: 5 elements, smooth rect: 14.
	if count := len(path.Elements()); count != 19 {
		t.Errorf("expected 19 elements from chained shapes, got %d", count)
	}
}

func TestPathBuilder_SmoothRectMatchesAppend(t *testing.T) {
	built := BuildPath().SmoothRect(5, 5, 90, 40, UniformRadii(8), 0.7).Build()
	direct := NewPath()
	AppendSmoothRect(direct, 5, 5, 90, 40, UniformRadii(8), 0.7)
	if diff := cmp.Diff(direct.Elements(), built.Elements()); diff != "" {
		t.Errorf("builder output differs from AppendSmoothRect (-want +got):\n%s", diff)
	}
}
