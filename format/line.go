package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/advent/notes"
)

// LineEncoder writes one tab separated line per monkey:
// id, items, operator, operand, divisor, if-true and if-false target.
type LineEncoder struct {
	w     io.Writer
	batch notes.Batch
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(batch notes.Batch) error {
	e.batch = batch
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, m := range e.batch {
		fmt.Fprintf(&sb, "monkey\t%d\t%s\t%s\t%d\t%d\t%d\t%d\n",
			m.ID,
			itemsStr(m.Items),
			m.Operation.Op,
			m.Operation.Operand,
			m.Test.Divisor,
			m.Test.IfTrue,
			m.Test.IfFalse,
		)
	}
	return []byte(sb.String()), nil
}

func itemsStr(items []uint64) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.FormatUint(item, 10)
	}
	return strings.Join(parts, ",")
}
