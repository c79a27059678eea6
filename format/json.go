package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/advent/notes"
)

type JSONEncoder struct {
	w     io.Writer
	batch notes.Batch
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(batch notes.Batch) error {
	e.batch = batch
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildMonkeys(), "", "  ")
}

type jsonMonkey struct {
	ID        uint64        `json:"id"`
	Items     []uint64      `json:"items"`
	Operation jsonOperation `json:"operation"`
	Test      jsonTest      `json:"test"`
}

type jsonOperation struct {
	Op      string `json:"op"`
	Operand uint64 `json:"operand"`
}

type jsonTest struct {
	Divisor uint64 `json:"divisor"`
	IfTrue  uint64 `json:"ifTrue"`
	IfFalse uint64 `json:"ifFalse"`
}

func (e *JSONEncoder) buildMonkeys() []jsonMonkey {
	data := make([]jsonMonkey, 0, len(e.batch))
	for _, m := range e.batch {
		items := m.Items
		if items == nil {
			items = []uint64{}
		}
		data = append(data, jsonMonkey{
			ID:    m.ID,
			Items: items,
			Operation: jsonOperation{
				Op:      m.Operation.Op.String(),
				Operand: m.Operation.Operand,
			},
			Test: jsonTest{
				Divisor: m.Test.Divisor,
				IfTrue:  m.Test.IfTrue,
				IfFalse: m.Test.IfFalse,
			},
		})
	}
	return data
}
