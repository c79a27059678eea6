package notes

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const sampleMonkey = `Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0
`

// The second block is separated by a whitespace-only line and has no
// trailing line break.
const sampleTwoMonkeys = "Monkey 1:\n" +
	"  Starting items: 54, 65, 75, 74\n" +
	"  Operation: new = old + 6\n" +
	"  Test: divisible by 19\n" +
	"    If true: throw to monkey 2\n" +
	"    If false: throw to monkey 0\n" +
	"    \n" +
	"Monkey 2:\n" +
	"  Starting items: 54, 65, 75, 74\n" +
	"  Operation: new = old * 7\n" +
	"  Test: divisible by 19\n" +
	"    If true: throw to monkey 2\n" +
	"    If false: throw to monkey 0"

var equateEmpty = cmpopts.EquateEmpty()

func TestParse(t *testing.T) {
	got, err := Parse(sampleMonkey)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Monkey{
		ID:        1,
		Items:     []uint64{54, 65, 75, 74},
		Operation: Operation{Op: Add, Operand: 6},
		Test:      Test{Divisor: 19, IfTrue: 2, IfFalse: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBatch(t *testing.T) {
	got, err := ParseBatch(sampleTwoMonkeys)
	if err != nil {
		t.Fatalf("ParseBatch: %v", err)
	}
	test := Test{Divisor: 19, IfTrue: 2, IfFalse: 0}
	want := Batch{
		{ID: 1, Items: []uint64{54, 65, 75, 74}, Operation: Operation{Op: Add, Operand: 6}, Test: test},
		{ID: 2, Items: []uint64{54, 65, 75, 74}, Operation: Operation{Op: Multiply, Operand: 7}, Test: test},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseBatch mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBatchCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"only blank lines", "\n\n  \n", 0},
		{"one", sampleMonkey, 1},
		{"one without trailing newline", strings.TrimSuffix(sampleMonkey, "\n"), 1},
		{"leading blank lines", "\n\n" + sampleMonkey, 1},
		{"single newline separator", strings.TrimSuffix(sampleMonkey, "\n") + "\n" + sampleMonkey, 2},
		{"many blank lines", sampleMonkey + "\n\n\n" + sampleMonkey + "\n" + sampleMonkey, 3},
		{"crlf", strings.ReplaceAll(sampleMonkey+"\n"+sampleMonkey, "\n", "\r\n"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := ParseBatch(tt.input)
			if err != nil {
				t.Fatalf("ParseBatch: %v", err)
			}
			if len(batch) != tt.want {
				t.Errorf("got %d monkeys, want %d", len(batch), tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rule  string
		pos   string
	}{
		{
			"bad header prefix",
			"Monk 1:\n",
			"header", "1:5",
		},
		{
			"missing colon",
			"Monkey 1\n",
			"header", "1:9",
		},
		{
			"non numeric id",
			"Monkey x:\n",
			"integer", "1:8",
		},
		{
			"id overflows",
			"Monkey 18446744073709551616:\n",
			"integer", "1:8",
		},
		{
			"unterminated list",
			"Monkey 1:\n  Starting items: 54, \n",
			"items", "2:23",
		},
		{
			"list without line break",
			"Monkey 1:\n  Starting items: 54, 65",
			"items", "2:25",
		},
		{
			"unknown operator",
			"Monkey 1:\n  Starting items: 1\n  Operation: new = old - 3\n",
			"operation", "3:24",
		},
		{
			"missing operand",
			"Monkey 1:\n  Starting items: 1\n  Operation: new = old +\n",
			"operation", "3:25",
		},
		{
			"wrong test literal",
			"Monkey 1:\n  Starting items: 1\n  Operation: new = old * 3\n  Test: divisible bx 3\n",
			"test", "4:20",
		},
		{
			"trailing garbage",
			sampleMonkey + "Monkey",
			"header", "7:7",
		},
		{
			"garbage on same line",
			strings.TrimSuffix(sampleMonkey, "\n") + " x",
			"separator", "6:33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBatch(tt.input)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if perr.Rule != tt.rule {
				t.Errorf("rule = %q, want %q (%v)", perr.Rule, tt.rule, err)
			}
			if got := perr.Pos.String(); got != tt.pos {
				t.Errorf("position = %s, want %s (%v)", got, tt.pos, err)
			}
		})
	}
}

func TestIndentation(t *testing.T) {
	lines := func(testIndent, branchIndent int) string {
		return strings.Repeat(" ", testIndent) + "Test: divisible by 19\n" +
			strings.Repeat(" ", branchIndent) + "If true: throw to monkey 2\n" +
			strings.Repeat(" ", branchIndent) + "If false: throw to monkey 0\n"
	}

	tests := []struct {
		name         string
		testIndent   int
		branchIndent int
		ok           bool
	}{
		{"exact", 2, 4, true},
		{"test 1", 1, 4, false},
		{"test 3", 3, 4, false},
		{"test 5", 5, 4, false},
		{"branch 2", 2, 2, false},
		{"branch 3", 2, 3, false},
		{"branch 5", 2, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseTest(NewInput(lines(tt.testIndent, tt.branchIndent)))
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseTest: %v", err)
				}
				return
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if perr.Rule != "indentation" {
				t.Errorf("rule = %q, want indentation", perr.Rule)
			}
		})
	}
}

func TestSubParsers(t *testing.T) {
	t.Run("header", func(t *testing.T) {
		id, rest, err := ParseHeader(NewInput("Monkey 42:\nrest"))
		if err != nil {
			t.Fatalf("ParseHeader: %v", err)
		}
		if id != 42 || rest.Rest() != "rest" {
			t.Errorf("got %d %q", id, rest.Rest())
		}
	})

	t.Run("items", func(t *testing.T) {
		items, rest, err := ParseItems(NewInput("  Starting items: 54, 65, 75, 74\n"))
		if err != nil {
			t.Fatalf("ParseItems: %v", err)
		}
		if diff := cmp.Diff([]uint64{54, 65, 75, 74}, items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
		if !rest.AtEOF() {
			t.Errorf("unconsumed input %q", rest.Rest())
		}
	})

	t.Run("empty items", func(t *testing.T) {
		items, _, err := ParseItems(NewInput("  Starting items: \n"))
		if err != nil {
			t.Fatalf("ParseItems: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("got %v, want no items", items)
		}
	})

	t.Run("operator", func(t *testing.T) {
		op, rest, err := ParseOperator(NewInput("*   19\n"))
		if err != nil {
			t.Fatalf("ParseOperator: %v", err)
		}
		if op != (Operation{Op: Multiply, Operand: 19}) {
			t.Errorf("got %v", op)
		}
		if rest.Rest() != "\n" {
			t.Errorf("rest = %q, want line break", rest.Rest())
		}
	})

	t.Run("test without trailing newline", func(t *testing.T) {
		got, rest, err := ParseTest(NewInput("  Test: divisible by 19\n    If true: throw to monkey 2\n    If false: throw to monkey 0"))
		if err != nil {
			t.Fatalf("ParseTest: %v", err)
		}
		if got != (Test{Divisor: 19, IfTrue: 2, IfFalse: 0}) {
			t.Errorf("got %+v", got)
		}
		if !rest.AtEOF() {
			t.Errorf("unconsumed input %q", rest.Rest())
		}
	})
}

func TestFailedParseDoesNotConsume(t *testing.T) {
	in := NewInput("Monkey 1:\n  Starting items: 1, 2\n  Operation: new = old / 2\n")
	before := in

	_, after, err := ParseMonkey(in)
	if err == nil {
		t.Fatal("expected error")
	}
	if after != before {
		t.Errorf("failed parse moved input from %s to %s", before.Position(), after.Position())
	}
	if in != before {
		t.Errorf("caller input changed")
	}
}

func TestRoundTrip(t *testing.T) {
	f := func(m Monkey) bool {
		got, err := Parse(m.String())
		if err != nil {
			t.Logf("Parse(%q): %v", m.String(), err)
			return false
		}
		return cmp.Equal(m, got, equateEmpty)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestBatchRoundTrip(t *testing.T) {
	f := func(b Batch) bool {
		got, err := ParseBatch(b.String())
		if err != nil {
			t.Logf("ParseBatch: %v", err)
			return false
		}
		return cmp.Equal(b, got, equateEmpty)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 50}); err != nil {
		t.Error(err)
	}
}

func TestSubParserRoundTrip(t *testing.T) {
	t.Run("header", func(t *testing.T) {
		f := func(id uint64) bool {
			m := Monkey{ID: id}
			got, _, err := ParseHeader(NewInput(strings.SplitAfter(m.String(), "\n")[0]))
			return err == nil && got == id
		}
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
	})

	t.Run("items", func(t *testing.T) {
		f := func(items []uint64) bool {
			got, _, err := ParseItems(NewInput("  Starting items: " + joinItems(items) + "\n"))
			return err == nil && cmp.Equal(items, got, equateEmpty)
		}
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
	})

	t.Run("test", func(t *testing.T) {
		f := func(divisor, ifTrue, ifFalse uint64) bool {
			want := Test{Divisor: divisor, IfTrue: ifTrue, IfFalse: ifFalse}
			got, _, err := ParseTest(NewInput(want.String() + "\n"))
			return err == nil && got == want
		}
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
	})
}

func TestBatchString(t *testing.T) {
	batch, err := ParseBatch(sampleTwoMonkeys)
	if err != nil {
		t.Fatalf("ParseBatch: %v", err)
	}
	got := batch.String()
	if !strings.Contains(got, "    If false: throw to monkey 0\n\nMonkey 2:\n") {
		t.Errorf("monkeys not separated by one blank line:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("missing trailing line break")
	}
	if m, ok := batch.Lookup(2); !ok || m.Operation.Op != Multiply {
		t.Errorf("Lookup(2) = %v, %v", m, ok)
	}
}
