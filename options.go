package bounds

// Option configures a bounds computation.
// Use functional options to customize ComputeBounds behavior.
//
// Example:
//
//	// Plain bounds
//	box, err := bounds.ComputeBounds(segs)
//
//	// Extend an existing box with transformed geometry
//	box, err := bounds.ComputeBounds(segs,
//		bounds.WithBox(prev),
//		bounds.WithMatrix(bounds.Translate(10, 0)))
type Option func(*options)

// options holds optional configuration for a computation.
type options struct {
	box              BoundingBox
	hasBox           bool
	transforms       []func(Point) Point
	firstSubpathOnly bool
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// apply runs p through every configured transform in order.
func (o *options) apply(p Point) Point {
	for _, fn := range o.transforms {
		p = fn(p)
	}
	return p
}

// WithBox sets an existing box the result is combined with.
func WithBox(b BoundingBox) Option {
	return func(o *options) {
		o.box = b
		o.hasBox = true
	}
}

// WithTransform applies fn to every control point read from a segment
// before it is bounded. The box itself is never transformed, so the
// result stays tight under rotation and skew.
//
// Transforms given by several options are applied in the order the
// options are listed.
func WithTransform(fn func(Point) Point) Option {
	return func(o *options) {
		if fn != nil {
			o.transforms = append(o.transforms, fn)
		}
	}
}

// WithMatrix is WithTransform for an affine matrix.
// The identity matrix is ignored.
func WithMatrix(m Matrix) Option {
	return func(o *options) {
		if !m.IsIdentity() {
			o.transforms = append(o.transforms, m.TransformPoint)
		}
	}
}

// WithFirstSubpathOnly stops the traversal at the first Close, ignoring
// any later subpaths.
func WithFirstSubpathOnly() Option {
	return func(o *options) {
		o.firstSubpathOnly = true
	}
}
