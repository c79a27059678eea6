// Package grammar describes the monkey notes format as an EBNF grammar and
// provides a grammar-driven lexer for it. It is independent of the
// hand-written parser in package notes and serves as a cross-check for it.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/exp/ebnf"
)

//go:embed notes.ebnf
var source []byte

// Start is the production matching a whole notes file.
const Start = "Notes"

// LineKinds are the productions that each match one line (or the blank
// lines between blocks). Earlier kinds win ties.
var LineKinds = []string{"Header", "Items", "Operation", "Test", "IfTrue", "IfFalse", "Separator", "Padding"}

// Source returns the EBNF text of the notes grammar.
func Source() []byte {
	return source
}

// Load parses and verifies the embedded notes grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("notes.ebnf", bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// LoadFile loads an EBNF grammar from a file.
func LoadFile(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Matches reports whether text as a whole is valid notes according to the
// grammar. Unlike notes.ParseBatch it does not check that integers fit in
// 64 bits.
func Matches(text string) (bool, error) {
	g, err := Load()
	if err != nil {
		return false, err
	}
	return NewLexer(g, []byte(text), "").Match(Start), nil
}
