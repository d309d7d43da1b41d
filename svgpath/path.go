package svgpath

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/alecthomas/participle/v2"
	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gogpu/bounds"
)

var pathParser = participle.MustBuild[PathData](
	participle.Lexer(PathLexer),
	participle.Elide("Whitespace"),
)

// arity is the number of arguments consumed by one repetition of each
// command, keyed by upper-case letter.
var arity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// Parse parses SVG path data into its syntax tree without interpreting it.
func Parse(d string) (*PathData, error) {
	data, err := pathParser.ParseString("", d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return data, nil
}

// ParsePath parses SVG path data into absolute-coordinate segments.
//
// Relative commands are resolved against the current point, H and V
// become lines, S and T get their reflected control point, and extra
// coordinate pairs after a move are lines. Arc flags must be separate
// numbers; the compact form "a1 1 0 011 1" is rejected.
func ParsePath(d string) ([]bounds.Segment, error) {
	data, err := Parse(d)
	if err != nil {
		return nil, err
	}
	segs, err := Normalize(data)
	if err != nil {
		return nil, err
	}
	bounds.Logger().Debug("svgpath: parsed path", slog.Int("commands", len(data.Commands)), slog.Int("segments", len(segs)))
	return segs, nil
}

// Bounds parses path data and computes its bounding box.
func Bounds(d string, opts ...bounds.Option) (bounds.BoundingBox, error) {
	segs, err := ParsePath(d)
	if err != nil {
		return bounds.BoundingBox{}, err
	}
	return bounds.ComputeBounds(segs, opts...)
}

// Normalize converts a parsed path to absolute-coordinate segments.
func Normalize(data *PathData) ([]bounds.Segment, error) {
	var n normalizer
	for i, cmd := range data.Commands {
		if i == 0 && cmd.Name != "M" && cmd.Name != "m" {
			return nil, &CommandError{Pos: cmd.Pos, Command: cmd.Name, Reason: "path data must begin with a move"}
		}
		if err := n.command(cmd); err != nil {
			return nil, err
		}
	}
	return n.segs, nil
}

// normalizer tracks the pen while commands are expanded.
type normalizer struct {
	segs    []bounds.Segment
	current bounds.Point
	start   bounds.Point
	// control is the last control point of a cubic (S) or quadratic (T)
	// command, valid only while last names that kind.
	control bounds.Point
	last    byte
}

func (n *normalizer) command(cmd *Command) error {
	letter := cmd.Name[0] &^ 0x20 // upper case
	want := arity[letter]

	args := make([]float64, len(cmd.Args))
	for i, s := range cmd.Args {
		v, m := strconv.ParseFloat([]byte(s))
		if m != len(s) || math.IsInf(v, 0) || math.IsNaN(v) {
			return &CommandError{Pos: cmd.Pos, Command: cmd.Name, Reason: fmt.Sprintf("invalid number %q", s)}
		}
		args[i] = v
	}

	switch {
	case want == 0 && len(args) != 0:
		return &CommandError{Pos: cmd.Pos, Command: cmd.Name, Reason: "takes no arguments"}
	case want == 0:
		n.emit(letter, false, nil)
		return nil
	case len(args) == 0 || len(args)%want != 0:
		return &CommandError{Pos: cmd.Pos, Command: cmd.Name, Reason: fmt.Sprintf("got %d arguments, want a multiple of %d", len(args), want)}
	}

	rel := cmd.Relative()
	for i := 0; i < len(args); i += want {
		l := letter
		if l == 'M' && i > 0 {
			l = 'L'
		}
		if l == 'A' {
			for _, f := range args[i+3 : i+5] {
				if f != 0 && f != 1 {
					return &CommandError{Pos: cmd.Pos, Command: cmd.Name, Reason: fmt.Sprintf("arc flag %v is not 0 or 1", f)}
				}
			}
		}
		n.emit(l, rel, args[i:i+want])
	}
	return nil
}

// abs resolves a coordinate pair against the current point.
func (n *normalizer) abs(rel bool, x, y float64) bounds.Point {
	if rel {
		return bounds.Pt(n.current.X+x, n.current.Y+y)
	}
	return bounds.Pt(x, y)
}

// reflect mirrors the previous control point through the current point
// when the previous command is one of kinds, and returns the current
// point otherwise.
func (n *normalizer) reflect(kinds string) bounds.Point {
	for i := 0; i < len(kinds); i++ {
		if n.last == kinds[i] {
			return n.current.Mul(2).Sub(n.control)
		}
	}
	return n.current
}

func (n *normalizer) emit(letter byte, rel bool, a []float64) {
	var end bounds.Point
	switch letter {
	case 'M':
		end = n.abs(rel, a[0], a[1])
		n.start = end
		n.segs = append(n.segs, bounds.MoveTo{Point: end})
	case 'L':
		end = n.abs(rel, a[0], a[1])
		n.segs = append(n.segs, bounds.LineTo{Point: end})
	case 'H':
		end = bounds.Pt(a[0], n.current.Y)
		if rel {
			end.X += n.current.X
		}
		n.segs = append(n.segs, bounds.LineTo{Point: end})
	case 'V':
		end = bounds.Pt(n.current.X, a[0])
		if rel {
			end.Y += n.current.Y
		}
		n.segs = append(n.segs, bounds.LineTo{Point: end})
	case 'C':
		c1 := n.abs(rel, a[0], a[1])
		n.control = n.abs(rel, a[2], a[3])
		end = n.abs(rel, a[4], a[5])
		n.segs = append(n.segs, bounds.CubicTo{Control1: c1, Control2: n.control, Point: end})
	case 'S':
		c1 := n.reflect("CS")
		n.control = n.abs(rel, a[0], a[1])
		end = n.abs(rel, a[2], a[3])
		n.segs = append(n.segs, bounds.CubicTo{Control1: c1, Control2: n.control, Point: end})
	case 'Q':
		n.control = n.abs(rel, a[0], a[1])
		end = n.abs(rel, a[2], a[3])
		n.segs = append(n.segs, bounds.QuadTo{Control: n.control, Point: end})
	case 'T':
		n.control = n.reflect("QT")
		end = n.abs(rel, a[0], a[1])
		n.segs = append(n.segs, bounds.QuadTo{Control: n.control, Point: end})
	case 'A':
		end = n.abs(rel, a[5], a[6])
		n.segs = append(n.segs, bounds.ArcTo{
			RX: a[0], RY: a[1], Rotation: a[2],
			LargeArc: a[3] == 1, Sweep: a[4] == 1,
			Point: end,
		})
	case 'Z':
		end = n.start
		n.segs = append(n.segs, bounds.Close{})
	}
	n.current = end
	n.last = letter
}
