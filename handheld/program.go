// Package handheld runs the boot code of a handheld game console: a program
// of nop, jmp and acc instructions that operate on a single accumulator.
package handheld

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Opcode identifies an instruction.
type Opcode uint8

const (
	Nop Opcode = iota
	Jmp
	Acc
)

var mnemonics = [...]string{
	Nop: "nop",
	Jmp: "jmp",
	Acc: "acc",
}

func (o Opcode) String() string {
	if int(o) < len(mnemonics) {
		return mnemonics[o]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(o))
}

// ErrUnknownMnemonic is wrapped by a SyntaxError for an unrecognised opcode.
var ErrUnknownMnemonic = errors.New("unknown mnemonic")

// ParseOpcode maps a mnemonic to its Opcode.
func ParseOpcode(s string) (Opcode, error) {
	for op, m := range mnemonics {
		if m == s {
			return Opcode(op), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMnemonic, s)
}

// Instruction is one line of a program.
type Instruction struct {
	Op  Opcode
	Arg int32
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s %+d", i.Op, i.Arg)
}

// Program is an immutable list of instructions indexed by the program
// counter.
type Program []Instruction

func (p Program) String() string {
	var b strings.Builder
	for _, ins := range p {
		b.WriteString(ins.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// SyntaxError reports a line that is not "<mnemonic> <signed integer>".
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ParseInstruction parses a single "<mnemonic> <signed integer>" line. The
// sign is optional for positive arguments.
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Instruction{}, fmt.Errorf("expected mnemonic and argument, found %d fields", len(fields))
	}
	op, err := ParseOpcode(fields[0])
	if err != nil {
		return Instruction{}, err
	}
	arg, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return Instruction{}, fmt.Errorf("argument: %w", err)
	}
	return Instruction{Op: op, Arg: int32(arg)}, nil
}

// ParseProgram parses one instruction per non-empty line.
func ParseProgram(text string) (Program, error) {
	var prog Program
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ins, err := ParseInstruction(line)
		if err != nil {
			return nil, &SyntaxError{Line: i + 1, Text: strings.TrimRight(line, "\r"), Err: err}
		}
		prog = append(prog, ins)
	}
	return prog, nil
}

// MustParseProgram is like ParseProgram but panics on malformed input. It is
// meant for programs that are known to be valid, such as puzzle input that
// has already been checked.
func MustParseProgram(text string) Program {
	prog, err := ParseProgram(text)
	if err != nil {
		panic(fmt.Sprintf("handheld: %v", err))
	}
	return prog
}
