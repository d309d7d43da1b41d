package bounds

// Segment is a single element of a path. All coordinates are absolute.
//
// The set of segment kinds is closed: MoveTo, LineTo, QuadTo, CubicTo,
// ArcTo and Close.
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isSegment() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// ArcTo draws an SVG elliptical arc to Point.
// Rotation is in degrees.
type ArcTo struct {
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
	Point    Point
}

func (ArcTo) isSegment() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isSegment() {}

// Path represents a vector path.
type Path struct {
	segments []Segment
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]Segment, 0, 16),
	}
}

// PathOf creates a path holding the given segments.
func PathOf(segs ...Segment) *Path {
	p := NewPath()
	for _, s := range segs {
		p.Append(s)
	}
	return p
}

// Append adds a segment and advances the current point.
func (p *Path) Append(s Segment) {
	p.segments = append(p.segments, s)
	switch s := s.(type) {
	case MoveTo:
		p.start = s.Point
		p.current = s.Point
	case LineTo:
		p.current = s.Point
	case QuadTo:
		p.current = s.Point
	case CubicTo:
		p.current = s.Point
	case ArcTo:
		p.current = s.Point
	case Close:
		p.current = p.start
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.Append(MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.Append(LineTo{Point: Pt(x, y)})
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.Append(QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Append(CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// ArcTo draws an SVG elliptical arc to (x, y). rot is in degrees.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	p.Append(ArcTo{
		RX: rx, RY: ry, Rotation: rot,
		LargeArc: large, Sweep: sweep,
		Point: Pt(x, y),
	})
}

// Close closes the current subpath; the current point returns to its start.
func (p *Path) Close() {
	p.Append(Close{})
}

// Segments returns the path segments.
func (p *Path) Segments() []Segment {
	return p.segments
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds computes the bounding box of the path. See ComputeBounds.
func (p *Path) Bounds(opts ...Option) (BoundingBox, error) {
	return ComputeBounds(p.segments, opts...)
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds a full ellipse to the path as two half arcs.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	p.MoveTo(cx+rx, cy)
	p.ArcTo(rx, ry, 0, false, true, cx-rx, cy)
	p.ArcTo(rx, ry, 0, false, true, cx+rx, cy)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.segments = make([]Segment, len(p.segments))
	copy(result.segments, p.segments)
	result.start = p.start
	result.current = p.current
	return result
}
