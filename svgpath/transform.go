package svgpath

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/alecthomas/participle/v2"
	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gogpu/bounds"
)

var transformParser = participle.MustBuild[TransformList](
	participle.Lexer(TransformLexer),
	participle.Elide("Whitespace"),
)

// ParseTransform parses an SVG transform list such as
// "translate(10 20) rotate(45)" into one matrix.
//
// Functions apply right to left, as in SVG: the last listed transform is
// applied to the geometry first. Angles are in degrees.
func ParseTransform(s string) (bounds.Matrix, error) {
	list, err := transformParser.ParseString("", s)
	if err != nil {
		return bounds.Matrix{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	m := bounds.Identity()
	for _, item := range list.Items {
		t, err := item.matrix()
		if err != nil {
			return bounds.Matrix{}, err
		}
		m = m.Multiply(t)
	}
	bounds.Logger().Debug("svgpath: parsed transform", slog.Int("functions", len(list.Items)))
	return m, nil
}

func (it *TransformItem) matrix() (bounds.Matrix, error) {
	a := make([]float64, len(it.Args))
	for i, s := range it.Args {
		v, n := strconv.ParseFloat([]byte(s))
		if n != len(s) || math.IsInf(v, 0) || math.IsNaN(v) {
			return bounds.Matrix{}, it.errorf("invalid number %q", s)
		}
		a[i] = v
	}

	switch it.Name {
	case "matrix":
		if len(a) != 6 {
			return bounds.Matrix{}, it.errorf("got %d arguments, want 6", len(a))
		}
		return bounds.NewMatrix(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	case "translate":
		switch len(a) {
		case 1:
			return bounds.Translate(a[0], 0), nil
		case 2:
			return bounds.Translate(a[0], a[1]), nil
		}
	case "scale":
		switch len(a) {
		case 1:
			return bounds.Scale(a[0], a[0]), nil
		case 2:
			return bounds.Scale(a[0], a[1]), nil
		}
	case "rotate":
		switch len(a) {
		case 1:
			return bounds.Rotate(radians(a, 0)), nil
		case 3:
			return bounds.RotateAbout(radians(a, 0), a[1], a[2]), nil
		}
	case "skewX":
		if len(a) == 1 {
			return bounds.SkewX(radians(a, 0)), nil
		}
	case "skewY":
		if len(a) == 1 {
			return bounds.SkewY(radians(a, 0)), nil
		}
	default:
		return bounds.Matrix{}, it.errorf("unknown transform function")
	}
	return bounds.Matrix{}, it.errorf("wrong number of arguments: %d", len(a))
}

func (it *TransformItem) errorf(format string, args ...any) error {
	return &CommandError{Pos: it.Pos, Command: it.Name, Reason: fmt.Sprintf(format, args...)}
}

// radians returns a[i] converted from degrees, or 0 when a is too short.
func radians(a []float64, i int) float64 {
	if i >= len(a) {
		return 0
	}
	return a[i] * math.Pi / 180
}
