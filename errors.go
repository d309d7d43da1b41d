package bounds

import (
	"errors"
	"fmt"
)

// Sentinel errors for bounds computations.
var (
	// ErrUnsupportedSegmentKind is returned when a path holds a segment
	// the accumulator does not know how to bound.
	ErrUnsupportedSegmentKind = errors.New("bounds: unsupported segment kind")

	// ErrInvalidPrecondition is returned when an input is non-finite or
	// the path does not start with a MoveTo.
	ErrInvalidPrecondition = errors.New("bounds: invalid precondition")
)

// UnsupportedSegmentKindError reports the offending segment of a path.
type UnsupportedSegmentKindError struct {
	Index   int
	Segment Segment
}

func (e *UnsupportedSegmentKindError) Error() string {
	return fmt.Sprintf("bounds: unsupported segment kind %T at index %d", e.Segment, e.Index)
}

// Unwrap returns ErrUnsupportedSegmentKind.
func (e *UnsupportedSegmentKindError) Unwrap() error {
	return ErrUnsupportedSegmentKind
}

// InvalidPreconditionError describes a rejected input. Index is the
// segment index, or -1 when the input is not tied to a segment.
type InvalidPreconditionError struct {
	Index  int
	Field  string
	Reason string
}

func (e *InvalidPreconditionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("bounds: invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("bounds: invalid %s at segment %d: %s", e.Field, e.Index, e.Reason)
}

// Unwrap returns ErrInvalidPrecondition.
func (e *InvalidPreconditionError) Unwrap() error {
	return ErrInvalidPrecondition
}
