package bounds

// Curve types for 2D geometry operations.
// Each type evaluates its own points and reports its exact bounding box.

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// BoundingBox returns the axis-aligned bounding box of the line.
func (l Line) BoundingBox() BoundingBox {
	return BoxOf(l.P0, l.P1)
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	return Point{
		X: quadraticAt(q.P0.X, q.P1.X, q.P2.X, t),
		Y: quadraticAt(q.P0.Y, q.P1.Y, q.P2.Y, t),
	}
}

// Extrema returns the parameter values in (0, 1) where the derivative of
// the x or y coordinate vanishes, x first.
func (q QuadBez) Extrema() []float64 {
	var result []float64
	if t, ok := quadraticExtremum(q.P0.X, q.P1.X, q.P2.X); ok {
		result = append(result, t)
	}
	if t, ok := quadraticExtremum(q.P0.Y, q.P1.Y, q.P2.Y); ok {
		result = append(result, t)
	}
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() BoundingBox {
	return QuadraticBounds(q.P0, q.P1, q.P2)
}

// quadraticAt evaluates the quadratic Bernstein basis on one axis.
func quadraticAt(p0, p1, p2, t float64) float64 {
	mt := 1 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return mt*mt*p0 + 2*mt*t*p1 + t*t*p2
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	return Point{
		X: cubicAt(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t),
		Y: cubicAt(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t),
	}
}

// Extrema returns the parameter values in (0, 1) where the derivative of
// the x or y coordinate vanishes, x roots first.
func (c CubicBez) Extrema() []float64 {
	var result []float64
	roots, n := cubicExtrema(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	result = append(result, roots[:n]...)
	roots, n = cubicExtrema(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	result = append(result, roots[:n]...)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() BoundingBox {
	return CubicBounds(c.P0, c.P1, c.P2, c.P3)
}

// cubicAt evaluates the cubic Bernstein basis on one axis.
func cubicAt(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return mt2*mt*p0 + 3*mt2*t*p1 + 3*mt*t2*p2 + t2*t*p3
}
