// Package bounds computes tight axis-aligned bounding boxes for 2D vector
// paths.
//
// # Overview
//
// A path is a sequence of absolute-coordinate segments: moves, lines,
// quadratic and cubic Bezier curves, SVG elliptical arcs and closes.
// Each curve kind is bounded in closed form by solving for the parameters
// where its derivative vanishes, so the result is exact rather than the
// loose control-point hull.
//
// # Quick Start
//
//	import "github.com/gogpu/bounds"
//
//	p := bounds.NewPath()
//	p.MoveTo(0, 0)
//	p.QuadraticTo(2, 2, 4, 0)
//	p.ArcTo(2, 2, 0, false, true, 0, 0)
//	p.Close()
//
//	box, err := p.Bounds()
//	// box.Left, box.Right, box.Bottom, box.Top
//
// Single segments can be bounded directly with QuadraticBounds,
// CubicBounds and ArcBounds, or folded into an existing box with the
// BoundingBox.Extend* methods.
//
// # Numerical Robustness
//
// Divisions in root finding are guarded by a relative epsilon: collinear
// control points, zero radii and coincident arc endpoints all have a
// defined finite result. For finite inputs the returned box never holds
// NaN or Inf. Non-finite inputs are rejected with ErrInvalidPrecondition.
//
// # Concurrency
//
// All computations are pure. Independent paths may be bounded
// concurrently; ComputeAll does this over a worker pool.
//
// # Related Packages
//
//   - svgpath: parses SVG path data and transform lists into segments
//     and matrices
//   - glyph: bounds font glyph outlines
package bounds

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
