package notes

import "fmt"

// ParseError reports where the notes stopped matching the grammar and which
// rule was being applied.
type ParseError struct {
	Pos  Position
	Rule string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Rule, e.Msg)
}
