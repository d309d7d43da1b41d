// Package glyph bounds font glyph outlines.
//
// Outlines loaded with golang.org/x/image/font/sfnt or
// github.com/go-text/typesetting are converted to bounds.Segment values
// and bounded exactly: the box hugs the curves of the glyph rather than
// its control points.
//
// The two font stacks use different axes. sfnt outlines are in pixels
// with y growing downward; go-text outlines are scaled from font units
// with y growing upward. Converted segments keep the source convention.
package glyph
