package glyph

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/bounds"
)

// ErrNoOutline is returned for glyphs without vector outlines, such as
// the space character or bitmap glyphs.
var ErrNoOutline = errors.New("glyph: no outline")

// FromSFNT converts sfnt segments to absolute bounds segments.
// Coordinates are converted from 26.6 fixed point to pixels.
func FromSFNT(segs sfnt.Segments) []bounds.Segment {
	out := make([]bounds.Segment, 0, len(segs))
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out = append(out, bounds.MoveTo{Point: fixedToPoint(seg.Args[0])})
		case sfnt.SegmentOpLineTo:
			out = append(out, bounds.LineTo{Point: fixedToPoint(seg.Args[0])})
		case sfnt.SegmentOpQuadTo:
			out = append(out, bounds.QuadTo{
				Control: fixedToPoint(seg.Args[0]),
				Point:   fixedToPoint(seg.Args[1]),
			})
		case sfnt.SegmentOpCubeTo:
			out = append(out, bounds.CubicTo{
				Control1: fixedToPoint(seg.Args[0]),
				Control2: fixedToPoint(seg.Args[1]),
				Point:    fixedToPoint(seg.Args[2]),
			})
		}
	}
	return out
}

// fixedToPoint converts a fixed.Point26_6 to a Point.
func fixedToPoint(p fixed.Point26_6) bounds.Point {
	return bounds.Pt(float64(p.X)/64, float64(p.Y)/64)
}

// SFNTBounds returns the tight bounding box of glyph x of f at ppem
// pixels per em. buf may be nil.
func SFNTBounds(f *sfnt.Font, buf *sfnt.Buffer, x sfnt.GlyphIndex, ppem fixed.Int26_6, opts ...bounds.Option) (bounds.BoundingBox, error) {
	if buf == nil {
		buf = &sfnt.Buffer{}
	}
	segs, err := f.LoadGlyph(buf, x, ppem, nil)
	if err != nil {
		return bounds.BoundingBox{}, fmt.Errorf("glyph: load glyph %d: %w", x, err)
	}
	if len(segs) == 0 {
		return bounds.BoundingBox{}, fmt.Errorf("glyph %d: %w", x, ErrNoOutline)
	}
	box, err := bounds.ComputeBounds(FromSFNT(segs), opts...)
	if err != nil {
		return bounds.BoundingBox{}, fmt.Errorf("glyph %d: %w", x, err)
	}
	bounds.Logger().Debug("glyph: sfnt outline bounded", slog.Int("glyph", int(x)), slog.Int("segments", len(segs)))
	return box, nil
}

// RuneBounds looks up r in f and returns the bounds of its glyph at ppem.
func RuneBounds(f *sfnt.Font, r rune, ppem fixed.Int26_6, opts ...bounds.Option) (bounds.BoundingBox, error) {
	var buf sfnt.Buffer
	x, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return bounds.BoundingBox{}, fmt.Errorf("glyph: lookup %q: %w", r, err)
	}
	if x == 0 {
		return bounds.BoundingBox{}, fmt.Errorf("glyph: rune %q not in font: %w", r, ErrNoOutline)
	}
	return SFNTBounds(f, &buf, x, ppem, opts...)
}
