package handheld

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Magic starts every program image.
const Magic = 0x48484C44 // "HHLD"

// Image layout, all big-endian:
//
//	u4 magic
//	u4 instruction count
//	count × { u1 opcode, s4 argument }

type reader struct {
	r   io.Reader
	err error
}

func (r *reader) readU1() uint8 {
	if r.err != nil {
		return 0
	}
	var buf [1]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return buf[0]
}

func (r *reader) readU4() uint32 {
	if r.err != nil {
		return 0
	}
	var buf [4]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

// ReadImageFile reads a program image from path.
func ReadImageFile(path string) (Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open program image: %w", err)
	}
	defer f.Close()
	return ReadImage(f)
}

// ReadImage decodes a program written by WriteImage.
func ReadImage(rd io.Reader) (Program, error) {
	r := &reader{r: rd}

	magic := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0x%X)", magic, Magic)
	}

	count := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read instruction count: %w", r.err)
	}

	var prog Program
	for i := uint32(0); i < count; i++ {
		op := Opcode(r.readU1())
		arg := int32(r.readU4())
		if r.err != nil {
			return nil, fmt.Errorf("failed to read instruction %d: %w", i, r.err)
		}
		if int(op) >= len(mnemonics) {
			return nil, fmt.Errorf("instruction %d: invalid opcode %d", i, uint8(op))
		}
		prog = append(prog, Instruction{Op: op, Arg: arg})
	}
	return prog, nil
}

// WriteImage encodes p in the binary image format.
func WriteImage(w io.Writer, p Program) error {
	buf := make([]byte, 0, 8+5*len(p))
	buf = binary.BigEndian.AppendUint32(buf, Magic)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(p)))
	for _, ins := range p {
		buf = append(buf, byte(ins.Op))
		buf = binary.BigEndian.AppendUint32(buf, uint32(ins.Arg))
	}
	_, err := w.Write(buf)
	return err
}
