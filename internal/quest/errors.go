package quest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGrammarMismatch is returned when a line fits none of the line forms.
var ErrGrammarMismatch = errors.New("grammar mismatch")

// ErrTrailingInput is returned when parsing stops before the end of the input.
var ErrTrailingInput = errors.New("trailing input")

// ParseError locates a parse failure. Kind is one of the sentinel errors above,
// so callers can match it with errors.Is.
type ParseError struct {
	Kind      error
	Line      int
	Col       int
	Msg       string
	Remainder string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v at line %d col %d", e.Kind, e.Line, e.Col)
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Remainder != "" {
		// Only the first unparsed line goes into the message.
		rest, _, _ := strings.Cut(e.Remainder, "\n")
		msg += fmt.Sprintf(" (remaining %q)", rest)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
