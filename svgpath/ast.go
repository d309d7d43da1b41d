package svgpath

import "github.com/alecthomas/participle/v2/lexer"

// PathData is the syntax tree of an SVG "d" attribute.
type PathData struct {
	Commands []*Command `parser:"@@*"`
}

// Command is one command letter with its raw arguments.
// Implicit repetitions are kept in Args and expanded during conversion.
type Command struct {
	Pos  lexer.Position
	Name string   `parser:"@Command"`
	Args []string `parser:"( @Number Comma? )*"`
}

// Relative reports whether the command uses relative coordinates.
func (c *Command) Relative() bool {
	return c.Name[0] >= 'a' && c.Name[0] <= 'z'
}

// TransformList is the syntax tree of an SVG "transform" attribute.
type TransformList struct {
	Items []*TransformItem `parser:"( @@ Comma? )*"`
}

// TransformItem is a single transform function such as rotate(30 5 5).
type TransformItem struct {
	Pos  lexer.Position
	Name string   `parser:"@Ident LParen"`
	Args []string `parser:"( @Number Comma? )* RParen"`
}
