package bounds

import (
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		// ax^2 + bx + c = 0
		{
			name: "x^2 - 5 = 0 (two roots)",
			a:    1, b: 0, c: -5,
			expected: []float64{-math.Sqrt(5), math.Sqrt(5)},
		},
		{
			name: "x^2 + 5 = 0 (no real roots)",
			a:    1, b: 0, c: 5,
			expected: nil,
		},
		{
			name: "x + 5 = 0 (linear)",
			a:    0, b: 1, c: 5,
			expected: []float64{-5},
		},
		{
			name: "x^2 + 2x + 1 = 0 (double root at -1)",
			a:    1, b: 2, c: 1,
			expected: []float64{-1},
		},
		{
			name: "x^2 - 5x + 6 = 0 (roots at 2 and 3)",
			a:    1, b: -5, c: 6,
			expected: []float64{2, 3},
		},
		{
			name: "2x^2 - 10x + 12 = 0 (roots at 2 and 3)",
			a:    2, b: -10, c: 12,
			expected: []float64{2, 3},
		},
		{
			name: "x^2 - x = 0 (root at zero)",
			a:    1, b: -1, c: 0,
			expected: []float64{0, 1},
		},
		{
			name: "0 = 5 (no roots)",
			a:    0, b: 0, c: 5,
			expected: nil,
		},
		{
			name: "all zero (no isolated root)",
			a:    0, b: 0, c: 0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := SolveQuadratic(tt.a, tt.b, tt.c)
			if len(roots) != len(tt.expected) {
				t.Fatalf("got %d roots %v, want %v", len(roots), roots, tt.expected)
			}
			for i := range roots {
				if !almostEqual(roots[i], tt.expected[i], 1e-10) {
					t.Errorf("root[%d] = %v, want %v", i, roots[i], tt.expected[i])
				}
				if !isFinite(roots[i]) {
					t.Errorf("root[%d] = %v is not finite", i, roots[i])
				}
			}
		})
	}
}

func TestSolveQuadratic_NearZeroLeading(t *testing.T) {
	// A leading coefficient below the relative epsilon is treated as zero.
	roots := SolveQuadratic(1e-20, 2, -1)
	if len(roots) != 1 || !almostEqual(roots[0], 0.5, 1e-12) {
		t.Errorf("SolveQuadratic(1e-20, 2, -1) = %v, want [0.5]", roots)
	}
}

func TestNegligible(t *testing.T) {
	tests := []struct {
		v, scale float64
		want     bool
	}{
		{0, 0, true},
		{0, 10, true},
		{1e-15, 10, true},
		{1e-9, 10, false},
		{1, 0, false},
	}
	for _, tt := range tests {
		if got := negligible(tt.v, tt.scale); got != tt.want {
			t.Errorf("negligible(%v, %v) = %v, want %v", tt.v, tt.scale, got, tt.want)
		}
	}
}
