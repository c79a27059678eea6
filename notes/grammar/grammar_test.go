package grammar

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/dhamidi/advent/notes"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/ebnf"
)

const sample = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0
`

func TestLoad(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, name := range append([]string{Start}, LineKinds...) {
		if _, ok := g[name]; !ok {
			t.Errorf("missing production %s", name)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"blank lines", "\n \n", true},
		{"sample", sample, true},
		{"no trailing newline", strings.TrimSuffix(sample, "\n"), true},
		{"test indented by three", strings.Replace(sample, "  Test", "   Test", 1), false},
		{"branch indented by two", strings.Replace(sample, "    If true", "  If true", 1), false},
		{"unknown operator", strings.Replace(sample, "old * 19", "old - 19", 1), false},
		{"monkeys on one line", strings.Replace(sample, "monkey 3\n\n", "monkey 3 ", 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Matches(tt.input)
			if err != nil {
				t.Fatalf("Matches: %v", err)
			}
			if got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesLargeInput(t *testing.T) {
	text := strings.Repeat(sample+"\n", 2000)
	got, err := Matches(text)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if !got {
		t.Error("Matches = false for repeated sample")
	}
}

func BenchmarkMatches(b *testing.B) {
	text := strings.Repeat(sample+"\n", 500)
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		if ok, err := Matches(text); err != nil || !ok {
			b.Fatalf("Matches = %v, %v", ok, err)
		}
	}
}

// The grammar and the hand-written parser must agree on rendered notes.
func TestMatchesRenderedBatches(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := func(b notes.Batch) bool {
		return NewLexer(g, []byte(b.String()), "").Match(Start)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 30}); err != nil {
		t.Error(err)
	}
}

func TestTokenize(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tokens, err := NewLexer(g, []byte(sample), "sample.txt", LineKinds...).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	var kinds []string
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []string{
		"Header", "Items", "Operation", "Test", "IfTrue", "IfFalse", "Separator",
		"Header", "Items", "Operation", "Test", "IfTrue", "IfFalse", "Separator",
		"EOF",
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}

	if got := tokens[7].Position.String(); got != "sample.txt:8:1" {
		t.Errorf("second header at %s, want sample.txt:8:1", got)
	}
}

func TestTokenizeError(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	input := "Monkey 0:\n  Starting items: 1\n  Operation: new = old / 2\n"
	tokens, err := NewLexer(g, []byte(input), "", LineKinds...).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	var bad *Token
	for i := range tokens {
		if tokens[i].Kind == "ERROR" {
			bad = &tokens[i]
			break
		}
	}
	if bad == nil {
		t.Fatalf("expected an ERROR token in %v", tokens)
	}
	if bad.Position.Line != 3 {
		t.Errorf("ERROR token on line %d, want 3", bad.Position.Line)
	}
}

func TestLexerDefaultKinds(t *testing.T) {
	g, err := ebnf.Parse("test", strings.NewReader(`
		Word = letter { letter } .
		Gap = " " { " " } .
		letter = "a" … "z" .
	`))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}

	tokens, err := NewLexer(g, []byte("ab  cd"), "").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	var got []string
	for _, tok := range tokens {
		got = append(got, tok.Kind+":"+tok.Literal)
	}
	want := []string{"Word:ab", "Gap:  ", "Word:cd", "EOF:"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}
