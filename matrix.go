package bounds

import "math"

// Matrix is a 2D affine transform applied to control points:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The zero value is not the identity; use Identity.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// NewMatrix returns the transform written matrix(a b c d e f) in SVG,
// whose entries are listed column by column.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: c, C: e, D: b, E: d, F: f}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scale about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a counter-clockwise rotation about the origin, in
// radians. In a y-down coordinate system it appears clockwise.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// RotateAbout returns a rotation by angle radians about (cx, cy).
func RotateAbout(angle, cx, cy float64) Matrix {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// SkewX returns a skew along x by angle radians.
func SkewX(angle float64) Matrix {
	return Matrix{A: 1, B: math.Tan(angle), E: 1}
}

// SkewY returns a skew along y by angle radians.
func SkewY(angle float64) Matrix {
	return Matrix{A: 1, D: math.Tan(angle), E: 1}
}

// Multiply returns m·other: the result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsFinite reports whether all six coefficients are finite.
func (m Matrix) IsFinite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if !isFinite(v) {
			return false
		}
	}
	return true
}
