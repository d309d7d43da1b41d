package bounds

import "math"

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
//
// Rounded corners and ellipses are emitted as true elliptical arcs, so
// their bounds are exact rather than those of a cubic approximation.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo starts a new subpath.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.path.QuadraticTo(cx, cy, x, y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// ArcTo draws an elliptical arc. rot is in degrees.
func (b *PathBuilder) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *PathBuilder {
	b.path.ArcTo(rx, ry, rot, large, sweep, x, y)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.Rectangle(x, y, w, h)
	return b
}

// RoundRect adds a rectangle with circular corners of radius r.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	r = min(r, min(w, h)/2)
	if r <= 0 {
		return b.Rect(x, y, w, h)
	}

	b.path.MoveTo(x+r, y)
	b.path.LineTo(x+w-r, y)
	b.path.ArcTo(r, r, 0, false, true, x+w, y+r)
	b.path.LineTo(x+w, y+h-r)
	b.path.ArcTo(r, r, 0, false, true, x+w-r, y+h)
	b.path.LineTo(x+r, y+h)
	b.path.ArcTo(r, r, 0, false, true, x, y+h-r)
	b.path.LineTo(x, y+r)
	b.path.ArcTo(r, r, 0, false, true, x+r, y)
	b.path.Close()
	return b
}

// Circle adds a circle to the path.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds an axis-aligned ellipse to the path.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	b.path.Ellipse(cx, cy, rx, ry)
	return b
}

// Polygon adds a regular polygon to the path.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := math.Pi / 2 // first vertex on top

	for i := 0; i < sides; i++ {
		sin, cos := math.Sincos(startAngle + float64(i)*angleStep)
		x := cx + radius*cos
		y := cy + radius*sin
		if i == 0 {
			b.path.MoveTo(x, y)
		} else {
			b.path.LineTo(x, y)
		}
	}
	b.path.Close()
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}

// Bounds computes the bounding box of the path built so far.
func (b *PathBuilder) Bounds(opts ...Option) (BoundingBox, error) {
	return b.path.Bounds(opts...)
}
