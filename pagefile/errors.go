package pagefile

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ParseError.
var (
	// ErrSyntax is returned for YAML that does not have the shape of a
	// page file.
	ErrSyntax = errors.New("pagefile: syntax error")

	// ErrUnknownCommand is returned for a name that is neither a marker,
	// a directive nor Declare.
	ErrUnknownCommand = errors.New("pagefile: unknown command")

	// ErrMissingOperand is returned when a command requires an operand and
	// none was given.
	ErrMissingOperand = errors.New("pagefile: missing operand")

	// ErrBadOperand is returned when an operand has the wrong type or
	// cannot be parsed.
	ErrBadOperand = errors.New("pagefile: bad operand")

	// ErrUnbalanced is returned when Opened and Closed markers do not nest.
	ErrUnbalanced = errors.New("pagefile: unbalanced markers")
)

// ParseError reports the command that failed to decode.
type ParseError struct {
	// Page is the page or fragment name, empty for file level errors.
	Page string
	// Index is the position of the command in the page, or -1.
	Index int
	// Line is the 1-based YAML line, or 0 when unknown.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	where := "pagefile"
	if e.Page != "" {
		where += fmt.Sprintf(": %q", e.Page)
	}
	if e.Index >= 0 {
		where += fmt.Sprintf(" command %d", e.Index)
	}
	if e.Line > 0 {
		where += fmt.Sprintf(" (line %d)", e.Line)
	}
	return where + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
