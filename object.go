package bounds

// Drawable is a document object whose bounds may be requested.
//
// The set of kinds is closed. PathObject carries its own geometry;
// OpaqueObject stands for any kind this package cannot bound.
type Drawable interface {
	isDrawable()
}

// PathObject is a path-like object with an optional transform.
type PathObject struct {
	Segments []Segment
	// Transform, when set, is applied to every control point before any
	// transform passed as an option.
	Transform *Matrix
}

func (PathObject) isDrawable() {}

// OpaqueObject is an object without path geometry, such as text or an
// embedded image. Kind names it for diagnostics.
type OpaqueObject struct {
	Kind string
}

func (OpaqueObject) isDrawable() {}

// ObjectBounds returns the bounding box of obj.
//
// Objects without path geometry bound to the zero-area box at the origin;
// callers that need real bounds for them must supply their own geometry.
// As with ComputeBounds, WithBox combines the result with an existing box.
func ObjectBounds(obj Drawable, opts ...Option) (BoundingBox, error) {
	switch o := obj.(type) {
	case PathObject:
		if o.Transform != nil {
			if !o.Transform.IsFinite() {
				return BoundingBox{}, &InvalidPreconditionError{Index: -1, Field: "object transform", Reason: "non-finite coefficient"}
			}
			opts = append([]Option{WithMatrix(*o.Transform)}, opts...)
		}
		return ComputeBounds(o.Segments, opts...)
	case *PathObject:
		if o == nil {
			return opaqueBounds(opts)
		}
		return ObjectBounds(*o, opts...)
	default:
		return opaqueBounds(opts)
	}
}

// opaqueBounds is the result for objects without geometry.
func opaqueBounds(opts []Option) (BoundingBox, error) {
	o := newOptions(opts)
	box := BoundingBox{}
	if o.hasBox {
		if !o.box.IsFinite() {
			return BoundingBox{}, &InvalidPreconditionError{Index: -1, Field: "existing box", Reason: "non-finite edge"}
		}
		box = o.box.Combine(box)
	}
	return box, nil
}
