package bounds

import (
	"math"
	"testing"
)

func TestPathBuilder_Basic(t *testing.T) {
	p := BuildPath().
		MoveTo(0, 0).
		LineTo(10, 0).
		QuadTo(15, 5, 10, 10).
		CubicTo(5, 15, 0, 15, 0, 10).
		ArcTo(5, 5, 0, false, true, 0, 0).
		Close().
		Build()

	if got := len(p.Segments()); got != 6 {
		t.Fatalf("len(Segments()) = %d, want 6", got)
	}
	if _, ok := p.Segments()[4].(ArcTo); !ok {
		t.Errorf("segment 4 = %T, want ArcTo", p.Segments()[4])
	}
	if !pointsEqual(p.CurrentPoint(), Pt(0, 0), epsilon10) {
		t.Errorf("CurrentPoint() = %v, want (0, 0)", p.CurrentPoint())
	}
}

func TestPathBuilder_ShapeBounds(t *testing.T) {
	tests := []struct {
		name string
		b    *PathBuilder
		want BoundingBox
	}{
		{
			name: "rect",
			b:    BuildPath().Rect(1, 2, 3, 4),
			want: BoundingBox{Left: 1, Right: 4, Bottom: 2, Top: 6},
		},
		{
			name: "round rect",
			b:    BuildPath().RoundRect(0, 0, 10, 6, 2),
			want: BoundingBox{Left: 0, Right: 10, Bottom: 0, Top: 6},
		},
		{
			name: "round rect zero radius",
			b:    BuildPath().RoundRect(0, 0, 10, 6, 0),
			want: BoundingBox{Left: 0, Right: 10, Bottom: 0, Top: 6},
		},
		{
			name: "circle",
			b:    BuildPath().Circle(5, 5, 3),
			want: BoundingBox{Left: 2, Right: 8, Bottom: 2, Top: 8},
		},
		{
			name: "ellipse",
			b:    BuildPath().Ellipse(0, 0, 4, 1),
			want: BoundingBox{Left: -4, Right: 4, Bottom: -1, Top: 1},
		},
		{
			name: "hexagon",
			b:    BuildPath().Polygon(0, 0, 2, 6),
			want: BoundingBox{Left: -math.Sqrt(3), Right: math.Sqrt(3), Bottom: -2, Top: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.b.Bounds()
			if err != nil {
				t.Fatalf("Bounds() error = %v", err)
			}
			if !boxesEqual(got, tt.want, 1e-9) {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathBuilder_RoundRectRadiusClamping(t *testing.T) {
	// A radius larger than half the short side becomes a stadium.
	box, err := BuildPath().RoundRect(0, 0, 10, 4, 100).Bounds()
	if err != nil {
		t.Fatalf("Bounds() error = %v", err)
	}
	want := BoundingBox{Left: 0, Right: 10, Bottom: 0, Top: 4}
	if !boxesEqual(box, want, 1e-9) {
		t.Errorf("Bounds() = %v, want %v", box, want)
	}
}

func TestPathBuilder_InvalidPolygon(t *testing.T) {
	p := BuildPath().Polygon(0, 0, 10, 2).Build()
	if len(p.Segments()) != 0 {
		t.Errorf("Polygon with 2 sides added %d segments, want 0", len(p.Segments()))
	}
}

func TestPathBuilder_EmptyPath(t *testing.T) {
	if _, err := BuildPath().Bounds(); err == nil {
		t.Error("Bounds() of an empty path should fail")
	}
}
