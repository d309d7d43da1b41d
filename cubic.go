package bounds

import "math"

// CubicBounds returns the tight bounding box of the cubic Bezier curve
// from p0 through controls p1, p2 to p3.
func CubicBounds(p0, p1, p2, p3 Point) BoundingBox {
	return BoxOf(p0, p3).ExtendCubic(p0, p1, p2, p3)
}

// ExtendCubic returns b grown to contain the cubic Bezier curve from p0
// through controls p1, p2 to p3.
//
// An axis on which b already contains both p1 and p2 is skipped: the
// curve cannot leave the convex hull of its control points.
func (b BoundingBox) ExtendCubic(p0, p1, p2, p3 Point) BoundingBox {
	b = b.Extend(p0).Extend(p3)

	if !b.ContainsX(p1.X) || !b.ContainsX(p2.X) {
		roots, n := cubicExtrema(p0.X, p1.X, p2.X, p3.X)
		for _, t := range roots[:n] {
			if x := cubicAt(p0.X, p1.X, p2.X, p3.X, t); isFinite(x) {
				b = b.ExtendX(x)
			}
		}
	}
	if !b.ContainsY(p1.Y) || !b.ContainsY(p2.Y) {
		roots, n := cubicExtrema(p0.Y, p1.Y, p2.Y, p3.Y)
		for _, t := range roots[:n] {
			if y := cubicAt(p0.Y, p1.Y, p2.Y, p3.Y, t); isFinite(y) {
				b = b.ExtendY(y)
			}
		}
	}
	return b
}

// cubicExtrema returns the parameters in (0, 1) where the derivative of a
// one-axis cubic Bezier vanishes. The derivative is the quadratic
//
//	a*t^2 + b*t + c
//	a = 3(-p0 + 3p1 - 3p2 + p3)
//	b = 6(p0 - 2p1 + p2)
//	c = 3(p1 - p0)
func cubicExtrema(p0, p1, p2, p3 float64) ([2]float64, int) {
	a := 3 * (-p0 + 3*p1 - 3*p2 + p3)
	b := 6 * (p0 - 2*p1 + p2)
	c := 3 * (p1 - p0)
	scale := math.Abs(p0) + math.Abs(p1) + math.Abs(p2) + math.Abs(p3)

	roots, n := solveQuadratic(a, b, c, scale)
	var out [2]float64
	m := 0
	for _, t := range roots[:n] {
		if insideUnit(t) {
			out[m] = t
			m++
		}
	}
	return out, m
}
