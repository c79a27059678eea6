// Package format encodes parsed monkey notes for output.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/advent/notes"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(batch notes.Batch) error
}

// NewEncoder returns the encoder registered under name: json, notes or line.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "notes":
		return NewNotesEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
