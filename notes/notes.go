// Package notes parses and renders monkey notes: blocks of six lines that
// describe each monkey's items, how it inspects them and whom it throws to.
package notes

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator is the arithmetic applied by an Operation.
type Operator uint8

const (
	Add Operator = iota + 1
	Multiply
)

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Multiply:
		return "*"
	default:
		return fmt.Sprintf("Operator(%d)", uint8(o))
	}
}

// Operation is the right hand side of "new = old <op> <operand>".
type Operation struct {
	Op      Operator
	Operand uint64
}

func (o Operation) String() string {
	return fmt.Sprintf("new = old %s %d", o.Op, o.Operand)
}

// Test decides where an item goes: IfTrue when the worry level is
// divisible by Divisor, IfFalse otherwise.
type Test struct {
	Divisor uint64
	IfTrue  uint64
	IfFalse uint64
}

// String renders the three test lines with their indentation and without a
// trailing line break.
func (t Test) String() string {
	return fmt.Sprintf("  Test: divisible by %d\n    If true: throw to monkey %d\n    If false: throw to monkey %d",
		t.Divisor, t.IfTrue, t.IfFalse)
}

// Monkey is one parsed block of notes.
type Monkey struct {
	ID        uint64
	Items     []uint64
	Operation Operation
	Test      Test
}

// String renders m in the form accepted by Parse. The last line is not
// terminated.
func (m Monkey) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Monkey %d:\n", m.ID)
	fmt.Fprintf(&b, "  Starting items: %s\n", joinItems(m.Items))
	fmt.Fprintf(&b, "  Operation: %s\n", m.Operation)
	b.WriteString(m.Test.String())
	return b.String()
}

func joinItems(items []uint64) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.FormatUint(item, 10)
	}
	return strings.Join(parts, ", ")
}

// Batch is every monkey of one input, in input order.
type Batch []Monkey

// String renders the batch with one blank line between monkeys.
func (b Batch) String() string {
	if len(b) == 0 {
		return ""
	}
	blocks := make([]string, len(b))
	for i, m := range b {
		blocks[i] = m.String()
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// Lookup returns the first monkey with the given id.
func (b Batch) Lookup(id uint64) (Monkey, bool) {
	for _, m := range b {
		if m.ID == id {
			return m, true
		}
	}
	return Monkey{}, false
}
