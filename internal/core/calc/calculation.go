package calc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Calculation pairs two operands with an operation. Values are
// immutable after construction; the result is never stored, it is
// recomputed on demand.
type Calculation struct {
	A  decimal.Decimal
	B  decimal.Decimal
	Op Operation
}

// New builds a Calculation. Construction has no side effects and never
// fails; an invalid operation surfaces from Compute.
func New(a, b decimal.Decimal, op Operation) Calculation {
	return Calculation{A: a, B: b, Op: op}
}

// Compute applies the stored operation to the stored operands. It is
// pure and idempotent; division by zero surfaces as ErrDivisionByZero.
func (c Calculation) Compute() (decimal.Decimal, error) {
	return c.Op.Apply(c.A, c.B)
}

// String renders the calculation for diagnostics, using the canonical
// operation name: "Calculation(5, 3, addition)".
func (c Calculation) String() string {
	return fmt.Sprintf("Calculation(%s, %s, %s)", c.A, c.B, c.Op.Name())
}
