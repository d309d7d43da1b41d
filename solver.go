package bounds

import "math"

// Root finding for Bezier derivatives.
//
// Every division in this file is preceded by a test against the shared
// epsilon policy: a coefficient is treated as zero when its magnitude is
// at most epsilon times the magnitude of the coordinates that produced it.
// Below that threshold the root is skipped instead of divided out, so no
// NaN or Inf can reach a bounding box.

// epsilon is the relative tolerance for degenerate denominators.
const epsilon = 1e-12

// negligible reports whether v is zero relative to scale.
func negligible(v, scale float64) bool {
	return math.Abs(v) <= epsilon*scale
}

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// A zero a degrades to the linear equation bx + c = 0; when b is zero as
// well there is no isolated root and nil is returned.
func SolveQuadratic(a, b, c float64) []float64 {
	scale := math.Abs(a) + math.Abs(b) + math.Abs(c)
	roots, n := solveQuadratic(a, b, c, scale)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	copy(out, roots[:n])
	return out
}

// solveQuadratic returns up to two finite roots of ax^2 + bx + c = 0,
// sorted ascending. scale is the magnitude used by the zero tests.
func solveQuadratic(a, b, c, scale float64) ([2]float64, int) {
	var roots [2]float64

	if negligible(a, scale) {
		// Derivative degenerates to a line.
		if negligible(b, scale) {
			return roots, 0
		}
		t := -c / b
		if !isFinite(t) {
			return roots, 0
		}
		roots[0] = t
		return roots, 1
	}

	disc := b*b - 4*a*c
	switch {
	case !isFinite(disc) || disc < 0:
		return roots, 0
	case disc == 0:
		t := -b / (2 * a)
		if !isFinite(t) {
			return roots, 0
		}
		roots[0] = t
		return roots, 1
	}

	// Numerically stable form: avoid cancellation between -b and sqrt(disc).
	// See: https://math.stackexchange.com/questions/866331
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	n := 0
	if t := q / a; isFinite(t) {
		roots[n] = t
		n++
	}
	if q != 0 {
		if t := c / q; isFinite(t) {
			roots[n] = t
			n++
		}
	}
	if n == 2 && roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return roots, n
}

// insideUnit reports whether t lies strictly between 0 and 1.
// Roots at the interval ends coincide with curve endpoints, which are
// always part of the box already.
func insideUnit(t float64) bool {
	return t > 0 && t < 1
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
