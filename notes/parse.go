package notes

// ParseHeader parses "Monkey <id>:" and the line break that ends it.
func ParseHeader(in Input) (uint64, Input, error) {
	next, err := in.literal("header", "Monkey ")
	if err != nil {
		return 0, in, err
	}
	id, next, err := next.number()
	if err != nil {
		return 0, in, err
	}
	if next, err = next.literal("header", ":"); err != nil {
		return 0, in, err
	}
	if next, err = next.lineBreak("header"); err != nil {
		return 0, in, err
	}
	return id, next, nil
}

// ParseItems parses the starting items line. The list may be empty.
func ParseItems(in Input) ([]uint64, Input, error) {
	next, err := in.literal("items", "  Starting items: ")
	if err != nil {
		return nil, in, err
	}
	items := []uint64{}
	if isDigit(next.peek()) {
		var item uint64
		item, next, err = next.number()
		if err != nil {
			return nil, in, err
		}
		items = append(items, item)
		for {
			sep, err := next.literal("items", ", ")
			if err != nil {
				break
			}
			item, next, err = sep.number()
			if err != nil {
				return nil, in, sep.errorf("items", "unterminated list: expected item after \", \", found %s", sep.describe())
			}
			items = append(items, item)
		}
	}
	if next, err = next.lineBreak("items"); err != nil {
		return nil, in, err
	}
	return items, next, nil
}

// ParseOperator parses "+ <operand>" or "* <operand>".
func ParseOperator(in Input) (Operation, Input, error) {
	var op Operator
	switch in.peek() {
	case '+':
		op = Add
	case '*':
		op = Multiply
	default:
		return Operation{}, in, in.errorf("operation", "unknown operator %s", in.describe())
	}
	next, err := in.advance(1).blanks("operation")
	if err != nil {
		return Operation{}, in, err
	}
	operand, next, err := next.number()
	if err != nil {
		return Operation{}, in, err
	}
	return Operation{Op: op, Operand: operand}, next, nil
}

// ParseOperation parses the whole operation line including its line break.
func ParseOperation(in Input) (Operation, Input, error) {
	next, err := in.literal("operation", "  Operation: new = old ")
	if err != nil {
		return Operation{}, in, err
	}
	op, next, err := ParseOperator(next)
	if err != nil {
		return Operation{}, in, err
	}
	if next, err = next.lineBreak("operation"); err != nil {
		return Operation{}, in, err
	}
	return op, next, nil
}

// ParseTest parses the divisibility test and both branch lines. The false
// branch may end the input, so its line break is left unconsumed.
func ParseTest(in Input) (Test, Input, error) {
	var t Test
	next, err := indented(in, 2, "test", "Test: divisible by ", &t.Divisor)
	if err != nil {
		return Test{}, in, err
	}
	if next, err = next.lineBreak("test"); err != nil {
		return Test{}, in, err
	}
	if next, err = indented(next, 4, "if true", "If true: throw to monkey ", &t.IfTrue); err != nil {
		return Test{}, in, err
	}
	if next, err = next.lineBreak("if true"); err != nil {
		return Test{}, in, err
	}
	if next, err = indented(next, 4, "if false", "If false: throw to monkey ", &t.IfFalse); err != nil {
		return Test{}, in, err
	}
	return t, next, nil
}

// indented parses exactly depth spaces, prefix and a number into dst.
func indented(in Input, depth int, rule, prefix string, dst *uint64) (Input, error) {
	next, err := in.indent(depth)
	if err != nil {
		return in, err
	}
	if next, err = next.literal(rule, prefix); err != nil {
		return in, err
	}
	v, next, err := next.number()
	if err != nil {
		return in, err
	}
	*dst = v
	return next, nil
}

// ParseMonkey parses one six line block.
func ParseMonkey(in Input) (Monkey, Input, error) {
	var m Monkey
	id, next, err := ParseHeader(in)
	if err != nil {
		return Monkey{}, in, err
	}
	m.ID = id
	if m.Items, next, err = ParseItems(next); err != nil {
		return Monkey{}, in, err
	}
	if m.Operation, next, err = ParseOperation(next); err != nil {
		return Monkey{}, in, err
	}
	if m.Test, next, err = ParseTest(next); err != nil {
		return Monkey{}, in, err
	}
	return m, next, nil
}

// Parse parses text holding exactly one monkey. Trailing whitespace is
// allowed.
func Parse(text string) (Monkey, error) {
	m, next, err := ParseMonkey(NewInput(text))
	if err != nil {
		return Monkey{}, err
	}
	if next, _ = next.whitespace(); !next.AtEOF() {
		return Monkey{}, next.errorf("separator", "unexpected %s after monkey", next.describe())
	}
	return m, nil
}

// ParseBatch parses zero or more monkeys separated by blank lines.
func ParseBatch(text string) (Batch, error) {
	batch := Batch{}
	in, _ := NewInput(text).whitespace()
	for !in.AtEOF() {
		m, next, err := ParseMonkey(in)
		if err != nil {
			return nil, err
		}
		batch = append(batch, m)

		sep, newline := next.whitespace()
		if sep.AtEOF() {
			break
		}
		if !newline {
			return nil, sep.errorf("separator", "expected line break before %s", sep.describe())
		}
		in = sep
	}
	return batch, nil
}
