package bounds

import "log/slog"

// ComputeBounds returns the bounding box of an absolute-coordinate segment
// sequence. The sequence must start with a MoveTo.
//
// Lines and moves extend the box by their end point; curves and arcs are
// bounded exactly from the current point. Close ends the current subpath
// and returns the current point to the subpath start; later segments are
// still included unless WithFirstSubpathOnly is given.
//
// Every segment is validated before any bounding starts: an unknown kind
// yields an *UnsupportedSegmentKindError and a non-finite coordinate,
// radius or rotation yields an *InvalidPreconditionError. On error the
// returned box is the zero value, never a partial result.
func ComputeBounds(segs []Segment, opts ...Option) (BoundingBox, error) {
	o := newOptions(opts)
	box, err := accumulate(segs, &o)
	if err != nil {
		Logger().Debug("bounds: path rejected", slog.Int("segments", len(segs)), slog.Any("err", err))
		return BoundingBox{}, err
	}
	return box, nil
}

// accumulate folds segs into one box.
func accumulate(segs []Segment, o *options) (BoundingBox, error) {
	if o.hasBox && !o.box.IsFinite() {
		return BoundingBox{}, &InvalidPreconditionError{Index: -1, Field: "existing box", Reason: "non-finite edge"}
	}
	if len(segs) == 0 {
		return BoundingBox{}, &InvalidPreconditionError{Index: -1, Field: "path", Reason: "no segments"}
	}
	if err := validateSegments(segs); err != nil {
		return BoundingBox{}, err
	}
	first, ok := segs[0].(MoveTo)
	if !ok {
		return BoundingBox{}, &InvalidPreconditionError{Index: 0, Field: "segment", Reason: "path must start with MoveTo"}
	}

	w := walker{opts: o}
	start, err := w.point(0, first.Point)
	if err != nil {
		return BoundingBox{}, err
	}
	box := BoxAt(start)
	current, subpathStart := start, start

walk:
	for i := 1; i < len(segs); i++ {
		switch s := segs[i].(type) {
		case MoveTo:
			p, err := w.point(i, s.Point)
			if err != nil {
				return BoundingBox{}, err
			}
			box = box.Extend(p)
			current, subpathStart = p, p

		case LineTo:
			p, err := w.point(i, s.Point)
			if err != nil {
				return BoundingBox{}, err
			}
			box = box.Extend(p)
			current = p

		case CubicTo:
			pts, err := w.points(i, s.Control1, s.Control2, s.Point)
			if err != nil {
				return BoundingBox{}, err
			}
			box = box.ExtendCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]

		case QuadTo:
			pts, err := w.points(i, s.Control, s.Point)
			if err != nil {
				return BoundingBox{}, err
			}
			box = box.ExtendQuadratic(current, pts[0], pts[1])
			current = pts[1]

		case ArcTo:
			p, err := w.point(i, s.Point)
			if err != nil {
				return BoundingBox{}, err
			}
			box = box.ExtendArc(current, s.RX, s.RY, s.Rotation, s.LargeArc, s.Sweep, p)
			current = p

		case Close:
			if o.firstSubpathOnly {
				break walk
			}
			current = subpathStart

		default:
			return BoundingBox{}, &UnsupportedSegmentKindError{Index: i, Segment: s}
		}
	}

	if o.hasBox {
		box = o.box.Combine(box)
	}
	return box, nil
}

// walker reads control points through the configured transforms.
type walker struct {
	opts *options
	buf  [3]Point
}

// point transforms p and rejects a non-finite result.
func (w *walker) point(i int, p Point) (Point, error) {
	q := w.opts.apply(p)
	if !q.IsFinite() {
		return Point{}, &InvalidPreconditionError{Index: i, Field: "transformed point", Reason: "non-finite coordinate " + q.String()}
	}
	return q, nil
}

// points transforms up to three points into the walker's buffer.
func (w *walker) points(i int, ps ...Point) ([]Point, error) {
	out := w.buf[:0]
	for _, p := range ps {
		q, err := w.point(i, p)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// validateSegments checks every segment kind and raw value up front so
// that no computation starts on bad input.
func validateSegments(segs []Segment) error {
	for i, seg := range segs {
		var pts []Point
		switch s := seg.(type) {
		case MoveTo:
			pts = []Point{s.Point}
		case LineTo:
			pts = []Point{s.Point}
		case QuadTo:
			pts = []Point{s.Control, s.Point}
		case CubicTo:
			pts = []Point{s.Control1, s.Control2, s.Point}
		case ArcTo:
			pts = []Point{s.Point}
			switch {
			case !isFinite(s.RX), !isFinite(s.RY):
				return &InvalidPreconditionError{Index: i, Field: "arc radius", Reason: "non-finite value"}
			case !isFinite(s.Rotation):
				return &InvalidPreconditionError{Index: i, Field: "arc rotation", Reason: "non-finite value"}
			}
		case Close:
		default:
			return &UnsupportedSegmentKindError{Index: i, Segment: seg}
		}
		for _, p := range pts {
			if !p.IsFinite() {
				return &InvalidPreconditionError{Index: i, Field: "point", Reason: "non-finite coordinate " + p.String()}
			}
		}
	}
	return nil
}
