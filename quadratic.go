package bounds

import "math"

// QuadraticBounds returns the tight bounding box of the quadratic Bezier
// curve from p0 through control p1 to p2.
func QuadraticBounds(p0, p1, p2 Point) BoundingBox {
	return BoxOf(p0, p2).ExtendQuadratic(p0, p1, p2)
}

// ExtendQuadratic returns b grown to contain the quadratic Bezier curve
// from p0 through control p1 to p2.
//
// The curve lies in the convex hull of its control points, so an axis on
// which b already contains p1 needs no extremum search.
func (b BoundingBox) ExtendQuadratic(p0, p1, p2 Point) BoundingBox {
	b = b.Extend(p0).Extend(p2)

	if !b.ContainsX(p1.X) {
		if t, ok := quadraticExtremum(p0.X, p1.X, p2.X); ok {
			if x := quadraticAt(p0.X, p1.X, p2.X, t); isFinite(x) {
				b = b.ExtendX(x)
			}
		}
	}
	if !b.ContainsY(p1.Y) {
		if t, ok := quadraticExtremum(p0.Y, p1.Y, p2.Y); ok {
			if y := quadraticAt(p0.Y, p1.Y, p2.Y, t); isFinite(y) {
				b = b.ExtendY(y)
			}
		}
	}
	return b
}

// quadraticExtremum returns the parameter in (0, 1) where the derivative
// of a one-axis quadratic Bezier vanishes:
//
//	t = (p1 - p0) / ((p1 - p0) - (p2 - p1))
//
// Collinear control values give a zero denominator and no extremum.
func quadraticExtremum(p0, p1, p2 float64) (float64, bool) {
	q0 := p1 - p0
	q1 := p2 - p1
	denom := q0 - q1
	if negligible(denom, math.Abs(p0)+2*math.Abs(p1)+math.Abs(p2)) {
		return 0, false
	}
	t := q0 / denom
	return t, insideUnit(t)
}
