package repl

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/colonyops/tally/internal/core/calc"
	"github.com/colonyops/tally/internal/core/styles"
)

// operationCommand runs one arithmetic operation in a sub-prompt loop:
// the user enters "<num1> <num2>" repeatedly until typing exit.
type operationCommand struct {
	name        string
	title       string
	description string
	apply       func(a, b decimal.Decimal) (decimal.Decimal, error)
	repl        *REPL
}

func (c *operationCommand) Name() string        { return c.name }
func (c *operationCommand) Description() string { return c.description }

func (c *operationCommand) Execute(args []string) error {
	out := c.repl.out

	fmt.Fprintln(out, styles.Title.Render("Operation: "+c.title))
	fmt.Fprintln(out, styles.Muted.Render("Enter two numbers separated by a space, e.g. '2 3'."))
	fmt.Fprintln(out, styles.Muted.Render("Type 'exit' to return to the main menu."))

	for {
		line, ok := c.repl.prompt(fmt.Sprintf("[%s]: ", c.title))
		if !ok || equalFoldExit(line) {
			return nil
		}
		if line == "" {
			continue
		}

		c.calculate(line)
	}
}

// calculate parses one input line and performs the operation. All
// failures are recovered here with a message; nothing propagates.
func (c *operationCommand) calculate(line string) {
	out := c.repl.out

	a, b, err := parseOperands(line)
	if err != nil {
		fmt.Fprintln(out, styles.Error.Render(err.Error()))
		return
	}

	result, err := c.apply(a, b)
	switch {
	case errors.Is(err, calc.ErrDivisionByZero):
		fmt.Fprintln(out, styles.Error.Render("Cannot divide by zero."))
	case err != nil:
		fmt.Fprintln(out, styles.Error.Render("An unexpected error occurred: "+err.Error()))
	default:
		fmt.Fprintf(out, "The result of %s %s %s is %s\n", a, c.name, b, styles.Result.Render(result.String()))
	}
}
