// Package svgpath reads SVG path data and transform lists.
//
// ParsePath turns a "d" attribute into absolute bounds.Segment values
// ready for bounds.ComputeBounds; ParseTransform turns a "transform"
// attribute into a bounds.Matrix for bounds.WithMatrix.
//
//	segs, err := svgpath.ParsePath("M10 10 h 20 a5 5 0 0 1 5 5 z")
//	m, err := svgpath.ParseTransform("rotate(30 15 15)")
//	box, err := bounds.ComputeBounds(segs, bounds.WithMatrix(m))
package svgpath
