package repl

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// equalFoldExit reports whether line is the reserved exit token.
func equalFoldExit(line string) bool {
	return strings.EqualFold(line, "exit")
}

// parseOperands splits a "<num1> <num2>" input line into two decimal
// operands. Both operands must parse or neither is returned; the
// operation is skipped entirely on invalid input.
func parseOperands(line string) (decimal.Decimal, decimal.Decimal, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("invalid input format, use: <operand1> <operand2>")
	}

	a, errA := decimal.NewFromString(fields[0])
	b, errB := decimal.NewFromString(fields[1])
	if errA != nil || errB != nil {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("invalid number input: %s or %s is not a valid number", fields[0], fields[1])
	}

	return a, b, nil
}
