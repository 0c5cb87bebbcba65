// Package calculator ties the arithmetic operations to the calculation
// history.
package calculator

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/colonyops/tally/internal/core/calc"
	"github.com/colonyops/tally/internal/core/history"
	"github.com/colonyops/tally/internal/core/logging"
)

// Calculator performs arithmetic and records each successful
// calculation in the shared history. Failed calculations, such as a
// division by zero, are never recorded.
type Calculator struct {
	history *history.History
	log     zerolog.Logger
}

// New creates a calculator recording into h.
func New(h *history.History) *Calculator {
	return &Calculator{
		history: h,
		log:     logging.Component("calculator"),
	}
}

// Do resolves an operation by its canonical name and computes it. An
// unknown name returns calc.ErrUnknownOperation without attempting any
// computation.
func (c *Calculator) Do(name string, a, b decimal.Decimal) (decimal.Decimal, error) {
	op, err := calc.FromName(name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.compute(calc.New(a, b, op))
}

// Add computes a + b and records the calculation.
func (c *Calculator) Add(a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.compute(calc.New(a, b, calc.Addition))
}

// Subtract computes a - b and records the calculation.
func (c *Calculator) Subtract(a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.compute(calc.New(a, b, calc.Subtraction))
}

// Multiply computes a * b and records the calculation.
func (c *Calculator) Multiply(a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.compute(calc.New(a, b, calc.Multiplication))
}

// Divide computes a / b and records the calculation. Division by zero
// returns calc.ErrDivisionByZero and records nothing.
func (c *Calculator) Divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.compute(calc.New(a, b, calc.Division))
}

func (c *Calculator) compute(cl calc.Calculation) (decimal.Decimal, error) {
	result, err := cl.Compute()
	if err != nil {
		c.log.Warn().Stringer("calculation", cl).Err(err).Msg("calculation failed")
		return decimal.Decimal{}, err
	}

	c.history.Add(cl)
	c.log.Info().Stringer("calculation", cl).Str("result", result.String()).Msg("calculation recorded")
	return result, nil
}
