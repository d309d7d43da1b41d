package bounds

import (
	"fmt"
	"math"
)

// BoundingBox is an axis-aligned box with Left <= Right and Bottom <= Top.
//
// A BoundingBox is a value: every combinator returns a new box and leaves
// the receiver untouched, so boxes can be copied and shared freely.
// The zero value is the zero-area box at the origin.
type BoundingBox struct {
	Left, Right float64
	Bottom, Top float64
}

// NewBox creates a box from two unordered x-values and two unordered
// y-values. The lower x becomes Left, the lower y becomes Bottom.
func NewBox(x0, x1, y0, y1 float64) BoundingBox {
	return BoundingBox{
		Left:   math.Min(x0, x1),
		Right:  math.Max(x0, x1),
		Bottom: math.Min(y0, y1),
		Top:    math.Max(y0, y1),
	}
}

// BoxAt returns the zero-area box located at p.
func BoxAt(p Point) BoundingBox {
	return BoundingBox{Left: p.X, Right: p.X, Bottom: p.Y, Top: p.Y}
}

// BoxOf returns the smallest box containing both points.
func BoxOf(p, q Point) BoundingBox {
	return NewBox(p.X, q.X, p.Y, q.Y)
}

// Width returns Right - Left.
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns Top - Bottom.
func (b BoundingBox) Height() float64 {
	return b.Top - b.Bottom
}

// Min returns the (Left, Bottom) corner.
func (b BoundingBox) Min() Point {
	return Point{X: b.Left, Y: b.Bottom}
}

// Max returns the (Right, Top) corner.
func (b BoundingBox) Max() Point {
	return Point{X: b.Right, Y: b.Top}
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return b.ContainsX(p.X) && b.ContainsY(p.Y)
}

// ContainsX reports whether x lies within [Left, Right].
func (b BoundingBox) ContainsX(x float64) bool {
	return x >= b.Left && x <= b.Right
}

// ContainsY reports whether y lies within [Bottom, Top].
func (b BoundingBox) ContainsY(y float64) bool {
	return y >= b.Bottom && y <= b.Top
}

// Combine returns the smallest box containing both b and other.
func (b BoundingBox) Combine(other BoundingBox) BoundingBox {
	return BoundingBox{
		Left:   math.Min(b.Left, other.Left),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Min(b.Bottom, other.Bottom),
		Top:    math.Max(b.Top, other.Top),
	}
}

// Extend returns b grown as necessary to contain p.
func (b BoundingBox) Extend(p Point) BoundingBox {
	return b.ExtendX(p.X).ExtendY(p.Y)
}

// ExtendX returns b grown horizontally as necessary to contain x.
func (b BoundingBox) ExtendX(x float64) BoundingBox {
	b.Left = math.Min(b.Left, x)
	b.Right = math.Max(b.Right, x)
	return b
}

// ExtendY returns b grown vertically as necessary to contain y.
func (b BoundingBox) ExtendY(y float64) BoundingBox {
	b.Bottom = math.Min(b.Bottom, y)
	b.Top = math.Max(b.Top, y)
	return b
}

// IsFinite reports whether all four edges are finite.
func (b BoundingBox) IsFinite() bool {
	return isFinite(b.Left) && isFinite(b.Right) && isFinite(b.Bottom) && isFinite(b.Top)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[left=%g right=%g bottom=%g top=%g]", b.Left, b.Right, b.Bottom, b.Top)
}
