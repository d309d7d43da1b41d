package glyph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/bounds"
)

// FromGoText converts a go-text outline to bounds segments, multiplying
// font units by scale.
func FromGoText(o font.GlyphOutline, scale float64) []bounds.Segment {
	pt := func(p opentype.SegmentPoint) bounds.Point {
		return bounds.Pt(float64(p.X)*scale, float64(p.Y)*scale)
	}
	out := make([]bounds.Segment, 0, len(o.Segments))
	for _, s := range o.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			out = append(out, bounds.MoveTo{Point: pt(s.Args[0])})
		case opentype.SegmentOpLineTo:
			out = append(out, bounds.LineTo{Point: pt(s.Args[0])})
		case opentype.SegmentOpQuadTo:
			out = append(out, bounds.QuadTo{Control: pt(s.Args[0]), Point: pt(s.Args[1])})
		case opentype.SegmentOpCubeTo:
			out = append(out, bounds.CubicTo{
				Control1: pt(s.Args[0]),
				Control2: pt(s.Args[1]),
				Point:    pt(s.Args[2]),
			})
		}
	}
	return out
}

// GoTextBounds returns the bounds of the glyph for r in face, scaled so
// that one em is size units.
func GoTextBounds(face *font.Face, r rune, size float64, opts ...bounds.Option) (bounds.BoundingBox, error) {
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return bounds.BoundingBox{}, fmt.Errorf("glyph: rune %q not in font: %w", r, ErrNoOutline)
	}
	return glyphBounds(face, gid, size/float64(face.Upem()), opts)
}

// StringBounds returns the bounds of s laid out on one line from the
// origin, advancing by each glyph's horizontal advance. Runes without an
// outline, such as spaces, only advance the pen. Kerning and shaping
// are not applied.
func StringBounds(face *font.Face, s string, size float64, opts ...bounds.Option) (bounds.BoundingBox, error) {
	scale := size / float64(face.Upem())
	var (
		box bounds.BoundingBox
		has bool
		x   float64
	)
	for _, r := range s {
		gid, ok := face.NominalGlyph(r)
		if !ok {
			continue
		}
		glyphOpts := append([]bounds.Option{bounds.WithMatrix(bounds.Translate(x, 0))}, opts...)
		if has {
			glyphOpts = append(glyphOpts, bounds.WithBox(box))
		}
		x += float64(face.HorizontalAdvance(gid)) * scale

		b, err := glyphBounds(face, gid, scale, glyphOpts)
		if errors.Is(err, ErrNoOutline) {
			continue
		}
		if err != nil {
			return bounds.BoundingBox{}, err
		}
		box, has = b, true
	}
	if !has {
		return bounds.BoundingBox{}, fmt.Errorf("glyph: %q: %w", s, ErrNoOutline)
	}
	return box, nil
}

func glyphBounds(face *font.Face, gid font.GID, scale float64, opts []bounds.Option) (bounds.BoundingBox, error) {
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return bounds.BoundingBox{}, fmt.Errorf("glyph %d: %w", gid, ErrNoOutline)
	}
	box, err := bounds.ComputeBounds(FromGoText(outline, scale), opts...)
	if err != nil {
		return bounds.BoundingBox{}, fmt.Errorf("glyph %d: %w", gid, err)
	}
	bounds.Logger().Debug("glyph: go-text outline bounded", slog.Int("glyph", int(gid)), slog.Int("segments", len(outline.Segments)))
	return box, nil
}
