// Package calc defines the exact-decimal arithmetic primitives: the
// Operation type and the Calculation value it applies to.
package calc

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrDivisionByZero is returned when a division's divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperation is returned when an operation name is not one
	// of the four canonical names.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Operation is one of the four basic arithmetic operations. The
// canonical lowercase name doubles as the serialization key in the
// history file, so these values must never change. The zero value is
// not a valid operation.
type Operation string

const (
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
	Multiplication Operation = "multiplication"
	Division       Operation = "division"
)

// operations is the fixed name -> function table used in both
// serialization directions. Operations are always resolved by name,
// never by function identity.
var operations = map[Operation]func(a, b decimal.Decimal) (decimal.Decimal, error){
	Addition: func(a, b decimal.Decimal) (decimal.Decimal, error) {
		return a.Add(b), nil
	},
	Subtraction: func(a, b decimal.Decimal) (decimal.Decimal, error) {
		return a.Sub(b), nil
	},
	Multiplication: func(a, b decimal.Decimal) (decimal.Decimal, error) {
		return a.Mul(b), nil
	},
	Division: divide,
}

// divide returns the exact quotient where it terminates. A
// non-terminating quotient is kept to decimal.DivisionPrecision
// fractional digits (16 unless configured otherwise), with the last
// digit rounded half away from zero.
func divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	return a.Div(b), nil
}

// FromName maps a stored operation name back to its Operation through
// the fixed table.
func FromName(name string) (Operation, error) {
	op := Operation(name)
	if _, ok := operations[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// Names returns the canonical operation names in a stable order.
func Names() []string {
	return []string{
		string(Addition),
		string(Subtraction),
		string(Multiplication),
		string(Division),
	}
}

// Name returns the canonical lowercase name.
func (o Operation) Name() string { return string(o) }

// Apply performs the operation on a and b. Division by zero returns
// ErrDivisionByZero; an operation outside the fixed table returns
// ErrUnknownOperation.
func (o Operation) Apply(a, b decimal.Decimal) (decimal.Decimal, error) {
	fn, ok := operations[o]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownOperation, string(o))
	}
	return fn(a, b)
}
