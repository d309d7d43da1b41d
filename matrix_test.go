package bounds

import (
	"math"
	"testing"
)

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(3, 4), Pt(13, 2)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"skewX 45deg", SkewX(math.Pi / 4), Pt(0, 2), Pt(2, 2)},
		{"skewY 45deg", SkewY(math.Pi / 4), Pt(2, 0), Pt(2, 2)},
		{"svg matrix", NewMatrix(1, 2, 3, 4, 5, 6), Pt(1, 1), Pt(9, 12)},
		{"rotate about", RotateAbout(math.Pi/2, 1, 1), Pt(2, 1), Pt(1, 2)},
		{"translate after scale", Translate(1, 1).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 3)},
		{"scale after translate", Scale(2, 2).Multiply(Translate(1, 1)), Pt(1, 1), Pt(4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointsEqual(got, tt.want, 1e-9) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrix_IsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"zero translation", Translate(0, 0), true},
		{"scale 1,1", Scale(1, 1), true},
		{"translation", Translate(1, 0), false},
		{"rotation", Rotate(0.1), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestMatrix_IsFinite(t *testing.T) {
	if !Rotate(1).IsFinite() {
		t.Error("Rotate(1) should be finite")
	}
	if (Matrix{A: math.NaN(), E: 1}).IsFinite() {
		t.Error("matrix with NaN should not be finite")
	}
	if (Matrix{A: 1, E: 1, C: math.Inf(1)}).IsFinite() {
		t.Error("matrix with Inf should not be finite")
	}
}
