package handheld

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when the accumulator or the program counter would
// leave the int32 range. Values never wrap around.
var ErrOverflow = errors.New("integer overflow")

// Counter is the program counter.
type Counter int32

// Accumulator is the console's only register.
type Accumulator int32

// Advance returns the counter moved by delta.
func (c Counter) Advance(delta int32) (Counter, error) {
	v, ok := add32(int32(c), delta)
	if !ok {
		return c, fmt.Errorf("counter %d%+d: %w", c, delta, ErrOverflow)
	}
	return Counter(v), nil
}

// Increment returns the accumulator plus amount.
func (a Accumulator) Increment(amount int32) (Accumulator, error) {
	v, ok := add32(int32(a), amount)
	if !ok {
		return a, fmt.Errorf("accumulator %d%+d: %w", a, amount, ErrOverflow)
	}
	return Accumulator(v), nil
}

func add32(a, b int32) (int32, bool) {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, false
	}
	return int32(sum), true
}

// State is the machine state between two instructions.
type State struct {
	PC  Counter
	Acc Accumulator
}

// Step executes ins against s.
func Step(ins Instruction, s State) (State, error) {
	var err error
	switch ins.Op {
	case Nop:
		s.PC, err = s.PC.Advance(1)
	case Acc:
		if s.Acc, err = s.Acc.Increment(ins.Arg); err != nil {
			return s, err
		}
		s.PC, err = s.PC.Advance(1)
	case Jmp:
		s.PC, err = s.PC.Advance(ins.Arg)
	default:
		return s, fmt.Errorf("unknown opcode %s", ins.Op)
	}
	return s, err
}

// BoundsError is returned when the program counter points outside the
// program.
type BoundsError struct {
	PC  Counter
	Len int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("program counter %d outside program of %d instructions", e.PC, e.Len)
}

// Fetch returns the instruction at pc.
func (p Program) Fetch(pc Counter) (Instruction, error) {
	if pc < 0 || int(pc) >= len(p) {
		return Instruction{}, &BoundsError{PC: pc, Len: len(p)}
	}
	return p[pc], nil
}

// RunUntilRepeat runs p from a zeroed state and stops right before an
// instruction would execute a second time. It returns the accumulator at
// that point. A program counter that leaves the program yields a
// *BoundsError.
func RunUntilRepeat(p Program) (Accumulator, error) {
	var last State
	err := run(p, func(s State) { last = s })
	if err != nil {
		return 0, err
	}
	return last.Acc, nil
}

// Trace runs p like RunUntilRepeat and returns every state in which an
// instruction was about to execute, followed by the state at which the run
// halted.
func Trace(p Program) ([]State, error) {
	var states []State
	err := run(p, func(s State) { states = append(states, s) })
	return states, err
}

// run calls visit with each state before its instruction executes and with
// the halting state. The visited set is local to the call, so runs never
// share state.
func run(p Program, visit func(State)) error {
	var s State
	visited := make(map[Counter]struct{}, len(p))
	for {
		visit(s)
		if _, seen := visited[s.PC]; seen {
			return nil
		}
		ins, err := p.Fetch(s.PC)
		if err != nil {
			return err
		}
		visited[s.PC] = struct{}{}
		if s, err = Step(ins, s); err != nil {
			return fmt.Errorf("pc %d: %w", s.PC, err)
		}
	}
}
