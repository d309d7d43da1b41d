package svgpath

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrSyntax is returned for malformed path data or transform lists.
var ErrSyntax = errors.New("svgpath: syntax error")

// CommandError reports a command whose arguments do not fit it.
type CommandError struct {
	Pos     lexer.Position
	Command string
	Reason  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("svgpath: %d:%d: command %q: %s", e.Pos.Line, e.Pos.Column, e.Command, e.Reason)
}

// Unwrap returns ErrSyntax.
func (e *CommandError) Unwrap() error {
	return ErrSyntax
}
