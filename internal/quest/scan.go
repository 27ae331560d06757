package quest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cursor walks one physical line of the source. Offsets are absolute so the
// unparsed suffix of the whole input is always available for diagnostics.
type cursor struct {
	src   string
	line  int
	start int
	end   int
	pos   int
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func (c *cursor) skipBlanks() {
	for c.pos < c.end && isBlank(c.src[c.pos]) {
		c.pos++
	}
}

func (c *cursor) peek(b byte) bool {
	return c.pos < c.end && c.src[c.pos] == b
}

// literal consumes lit when the line continues with it.
func (c *cursor) literal(lit string) bool {
	if !strings.HasPrefix(c.src[c.pos:c.end], lit) {
		return false
	}
	c.pos += len(lit)
	return true
}

// identifier consumes one or more letters or digits.
func (c *cursor) identifier() (string, bool) {
	from := c.pos
	for c.pos < c.end {
		r, size := utf8.DecodeRuneInString(c.src[c.pos:c.end])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		c.pos += size
	}
	if c.pos == from {
		return "", false
	}
	return c.src[from:c.pos], true
}

// restOfLine consumes everything up to the line terminator. It never fails;
// the result may be empty.
func (c *cursor) restOfLine() string {
	text := c.src[c.pos:c.end]
	c.pos = c.end
	return text
}

func (c *cursor) col() int {
	return utf8.RuneCountInString(c.src[c.start:c.pos]) + 1
}

func (c *cursor) mismatch(msg string) error {
	return &ParseError{
		Kind:      ErrGrammarMismatch,
		Line:      c.line,
		Col:       c.col(),
		Msg:       msg,
		Remainder: c.src[c.pos:],
	}
}

func (c *cursor) trailing() error {
	return &ParseError{
		Kind:      ErrTrailingInput,
		Line:      c.line,
		Col:       c.col(),
		Remainder: c.src[c.pos:],
	}
}

// skipWS runs inner with blanks absorbed on both sides. Newlines are never
// blanks: each cursor only ever sees a single line.
func skipWS[T any](c *cursor, inner func(*cursor) (T, error)) (T, error) {
	c.skipBlanks()
	v, err := inner(c)
	if err != nil {
		return v, err
	}
	c.skipBlanks()
	return v, nil
}

type segment struct {
	number int
	start  int
	end    int
}

// segments splits src into physical lines. A '\r' right before '\n' belongs to
// the terminator, and a final terminator does not open another line.
func segments(src string) []segment {
	var out []segment
	start := 0
	for number := 1; start < len(src); number++ {
		next := strings.IndexByte(src[start:], '\n')
		if next < 0 {
			out = append(out, segment{number: number, start: start, end: len(src)})
			break
		}
		end := start + next
		stop := end
		if stop > start && src[stop-1] == '\r' {
			stop--
		}
		out = append(out, segment{number: number, start: start, end: stop})
		start = end + 1
	}
	return out
}
