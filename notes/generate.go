package notes

import (
	"math/rand"
	"reflect"
)

// Generate implements quick.Generator for property tests in this package and
// in notes/grammar. It produces valid monkeys with arbitrary ids, operands
// and up to size items.
func (Monkey) Generate(r *rand.Rand, size int) reflect.Value {
	items := make([]uint64, r.Intn(size+1))
	for i := range items {
		items[i] = r.Uint64()
	}
	op := Add
	if r.Intn(2) == 1 {
		op = Multiply
	}
	return reflect.ValueOf(Monkey{
		ID:        r.Uint64(),
		Items:     items,
		Operation: Operation{Op: op, Operand: r.Uint64()},
		Test:      Test{Divisor: r.Uint64(), IfTrue: r.Uint64(), IfFalse: r.Uint64()},
	})
}
