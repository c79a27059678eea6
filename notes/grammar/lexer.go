package grammar

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Position represents a location in the input.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a match of one production, or an ERROR run up to the end of the
// line when nothing matched.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

const noMatch = -1

type memoKey struct {
	name   string
	offset int
}

// Lexer splits input into the longest matches of a set of productions.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int  // match length or noMatch; offsets are absolute so entries stay valid
	visiting map[memoKey]bool // left recursion guard
}

// NewLexer creates a lexer for input. Tokens are matched against kinds; with
// no kinds every production starting with an upper case letter is tried, in
// name order.
func NewLexer(g ebnf.Grammar, input []byte, filename string, kinds ...string) *Lexer {
	if len(kinds) == 0 {
		for name, prod := range g {
			if prod.Expr != nil && isToken(name) {
				kinds = append(kinds, name)
			}
		}
		sort.Strings(kinds)
	}
	return &Lexer{
		grammar:  g,
		kinds:    kinds,
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

func isToken(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(ch)
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// Match reports whether the production start matches the whole input.
func (l *Lexer) Match(start string) bool {
	return l.tryMatchName(start, 0) == len(l.input)
}

// NextToken returns the longest match among the lexer's kinds at the
// current position. It returns io.EOF once the input is exhausted.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: "EOF", Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	startOffset := l.pos

	bestKind := ""
	bestLen := 0
	for _, name := range l.kinds {
		if n := l.tryMatchName(name, startOffset); n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		// Swallow the rest of the line so one bad line yields one token.
		for l.pos < len(l.input) && l.input[l.pos] != '\n' {
			l.advance()
		}
		if l.pos == startOffset {
			l.advance()
		}
		return Token{
			Kind:     "ERROR",
			Literal:  string(l.input[startOffset:l.pos]),
			Position: startPos,
		}, nil
	}

	for i := 0; i < bestLen; i++ {
		l.advance()
	}

	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[startOffset : startOffset+bestLen]),
		Position: startPos,
	}, nil
}

// Tokenize reads all tokens from input, ending with an EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// tryMatch returns the length matched by expr at offset, or noMatch.
// A zero length is a successful empty match.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.tryMatchToken(e.String, offset)

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.tryMatch(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := l.tryMatch(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.tryMatch(e.Body, offset+total)
			if n <= 0 {
				break
			}
			total += n
		}
		return total

	case *ebnf.Option:
		if n := l.tryMatch(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)

	default:
		return noMatch
	}
}

// tryMatchName matches a named production with memoization and cycle
// detection.
func (l *Lexer) tryMatchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if result, ok := l.memo[key]; ok {
		return result
	}
	if l.visiting[key] {
		return noMatch
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = noMatch
		return noMatch
	}

	l.visiting[key] = true
	result := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = result
	return result
}

func (l *Lexer) tryMatchToken(token string, offset int) int {
	if bytes.HasPrefix(l.input[offset:], []byte(token)) {
		return len(token)
	}
	return noMatch
}

// tryMatchRange matches a single byte range such as "0" … "9".
func (l *Lexer) tryMatchRange(begin, end string, offset int) int {
	if offset >= len(l.input) || len(begin) != 1 || len(end) != 1 {
		return noMatch
	}
	ch := l.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return 1
	}
	return noMatch
}
