package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tally/internal/core/calc"
)

// verbs maps the short command verbs to canonical operation names, so
// `tally eval add 5 3` and `tally eval addition 5 3` both work.
var verbs = map[string]calc.Operation{
	"add":      calc.Addition,
	"subtract": calc.Subtraction,
	"multiply": calc.Multiplication,
	"divide":   calc.Division,
}

type EvalCmd struct {
	flags *Flags
}

// NewEvalCmd creates a new eval command
func NewEvalCmd(flags *Flags) *EvalCmd {
	return &EvalCmd{flags: flags}
}

// Register adds the eval command to the application
func (cmd *EvalCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "eval",
		Usage:     "Compute a single operation and print the result",
		UsageText: "tally eval <operation> <operand1> <operand2>",
		Description: `Computes one operation without starting the interactive prompt and
without touching the calculation history.

The operation may be a verb (add, subtract, multiply, divide) or a
canonical name (addition, subtraction, multiplication, division).`,
		Action: cmd.run,
	})

	return app
}

func (cmd *EvalCmd) run(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) != 3 {
		return fmt.Errorf("expected <operation> <operand1> <operand2>, got %d argument(s)", len(args))
	}

	op, err := resolveOperation(args[0])
	if err != nil {
		return err
	}

	a, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid operand1 %q: not a valid number", args[1])
	}
	b, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("invalid operand2 %q: not a valid number", args[2])
	}

	result, err := calc.New(a, b, op).Compute()
	if err != nil {
		if errors.Is(err, calc.ErrDivisionByZero) {
			return fmt.Errorf("cannot divide by zero")
		}
		return err
	}

	fmt.Fprintln(c.Root().Writer, result.String())
	return nil
}

// resolveOperation accepts a verb or a canonical operation name.
func resolveOperation(name string) (calc.Operation, error) {
	if op, ok := verbs[name]; ok {
		return op, nil
	}

	op, err := calc.FromName(name)
	if err != nil {
		return "", fmt.Errorf("unknown operation %q, expected one of add, subtract, multiply, divide", name)
	}
	return op, nil
}
