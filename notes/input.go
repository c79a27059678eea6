package notes

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a location in the notes text. Line and Column start at 1.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Input is the unconsumed part of the text being parsed. Parsers take an
// Input by value and hand back a new one, so a failed parse leaves the
// caller's Input untouched.
type Input struct {
	text string
	pos  Position
}

// NewInput returns an Input positioned at the start of text.
func NewInput(text string) Input {
	return Input{text: text, pos: Position{Line: 1, Column: 1}}
}

// Position returns the location of the next unconsumed byte.
func (in Input) Position() Position {
	return in.pos
}

// Rest returns the unconsumed text.
func (in Input) Rest() string {
	return in.text[in.pos.Offset:]
}

// AtEOF reports whether all input has been consumed.
func (in Input) AtEOF() bool {
	return in.pos.Offset >= len(in.text)
}

func (in Input) peek() byte {
	if in.AtEOF() {
		return 0
	}
	return in.text[in.pos.Offset]
}

func (in Input) advance(n int) Input {
	for i := 0; i < n && !in.AtEOF(); i++ {
		if in.text[in.pos.Offset] == '\n' {
			in.pos.Line++
			in.pos.Column = 1
		} else {
			in.pos.Column++
		}
		in.pos.Offset++
	}
	return in
}

func (in Input) errorf(rule, format string, args ...any) *ParseError {
	return &ParseError{Pos: in.pos, Rule: rule, Msg: fmt.Sprintf(format, args...)}
}

// describe names the next byte for error messages.
func (in Input) describe() string {
	if in.AtEOF() {
		return "end of input"
	}
	return strconv.QuoteRune(rune(in.peek()))
}

// literal consumes lit. On mismatch the error points at the first byte that
// differs.
func (in Input) literal(rule, lit string) (Input, error) {
	rest := in.Rest()
	if strings.HasPrefix(rest, lit) {
		return in.advance(len(lit)), nil
	}
	n := 0
	for n < len(lit) && n < len(rest) && lit[n] == rest[n] {
		n++
	}
	at := in.advance(n)
	return in, at.errorf(rule, "expected %q, found %s", lit, at.describe())
}

// number consumes an unsigned decimal integer that fits in 64 bits.
func (in Input) number() (uint64, Input, error) {
	rest := in.Rest()
	n := 0
	for n < len(rest) && isDigit(rest[n]) {
		n++
	}
	if n == 0 {
		return 0, in, in.errorf("integer", "expected digit, found %s", in.describe())
	}
	v, err := strconv.ParseUint(rest[:n], 10, 64)
	if err != nil {
		return 0, in, in.errorf("integer", "%s does not fit in 64 bits", rest[:n])
	}
	return v, in.advance(n), nil
}

// lineBreak consumes "\n" or "\r\n".
func (in Input) lineBreak(rule string) (Input, error) {
	rest := in.Rest()
	switch {
	case strings.HasPrefix(rest, "\n"):
		return in.advance(1), nil
	case strings.HasPrefix(rest, "\r\n"):
		return in.advance(2), nil
	}
	return in, in.errorf(rule, "expected line break, found %s", in.describe())
}

// indent consumes exactly n leading spaces.
func (in Input) indent(n int) (Input, error) {
	rest := in.Rest()
	count := 0
	for count < len(rest) && rest[count] == ' ' {
		count++
	}
	if count != n {
		return in, in.errorf("indentation", "expected %d leading spaces, found %d", n, count)
	}
	return in.advance(n), nil
}

// blanks consumes one or more spaces or tabs.
func (in Input) blanks(rule string) (Input, error) {
	rest := in.Rest()
	n := 0
	for n < len(rest) && (rest[n] == ' ' || rest[n] == '\t') {
		n++
	}
	if n == 0 {
		return in, in.errorf(rule, "expected blank, found %s", in.describe())
	}
	return in.advance(n), nil
}

// whitespace consumes a run of whitespace and reports whether it contained
// a line break.
func (in Input) whitespace() (Input, bool) {
	rest := in.Rest()
	n := 0
	newline := false
	for n < len(rest) && isSpace(rest[n]) {
		if rest[n] == '\n' {
			newline = true
		}
		n++
	}
	return in.advance(n), newline
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
