package svgpath

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// number matches the SVG number production. A sign or a second decimal
// point starts a new number, so "1.5.5-2" lexes as 1.5, .5 and -2.
const number = `[-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`

// PathLexer defines the lexical structure of SVG path data.
var PathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Command", Pattern: `[MmZzLlHhVvCcSsQqTtAa]`},
	{Name: "Number", Pattern: number},
})

// TransformLexer defines the lexical structure of an SVG transform list.
var TransformLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Number", Pattern: number},
})
