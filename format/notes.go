package format

import (
	"io"

	"github.com/dhamidi/advent/notes"
)

// NotesEncoder writes the canonical notes text, which notes.ParseBatch
// reads back unchanged.
type NotesEncoder struct {
	w     io.Writer
	batch notes.Batch
}

func NewNotesEncoder(w io.Writer) *NotesEncoder {
	return &NotesEncoder{w: w}
}

func (e *NotesEncoder) Encode(batch notes.Batch) error {
	e.batch = batch
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *NotesEncoder) MarshalText() ([]byte, error) {
	return []byte(e.batch.String()), nil
}
