// Package repl implements tally's interactive read-eval-print loop and
// the commands registered in it.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/tally/internal/core/calculator"
	"github.com/colonyops/tally/internal/core/history"
	"github.com/colonyops/tally/internal/core/logging"
	"github.com/colonyops/tally/internal/core/registry"
	"github.com/colonyops/tally/internal/core/styles"
)

// REPL reads command lines, dispatches them through the registry, and
// keeps running until the user exits.
type REPL struct {
	in       *bufio.Scanner
	out      io.Writer
	registry *registry.Registry
	log      zerolog.Logger
}

// New wires a REPL over in/out with a freshly populated command
// registry. historyPath is only used in user-facing messages about the
// backing file.
func New(in io.Reader, out io.Writer, calcSvc *calculator.Calculator, hist *history.History, historyPath string) *REPL {
	r := &REPL{
		in:  bufio.NewScanner(in),
		out: out,
		log: logging.Component("repl"),
	}

	// Commands are registered from a static table; there is no runtime
	// plugin discovery.
	reg := registry.New(out)
	for _, cmd := range []registry.Command{
		&operationCommand{
			name:        "add",
			title:       "Addition",
			description: "Add two numbers together.",
			apply:       calcSvc.Add,
			repl:        r,
		},
		&operationCommand{
			name:        "subtract",
			title:       "Subtraction",
			description: "Subtract the second number from the first.",
			apply:       calcSvc.Subtract,
			repl:        r,
		},
		&operationCommand{
			name:        "multiply",
			title:       "Multiplication",
			description: "Multiply two numbers together.",
			apply:       calcSvc.Multiply,
			repl:        r,
		},
		&operationCommand{
			name:        "divide",
			title:       "Division",
			description: "Divide the first number by the second.",
			apply:       calcSvc.Divide,
			repl:        r,
		},
		&historyCommand{history: hist, path: historyPath, repl: r},
		&menuCommand{registry: reg, out: out},
	} {
		reg.Register(cmd)
	}

	r.registry = reg
	return r
}

// Run processes input lines until the user types exit or input ends.
// Unknown commands show the menu; command failures never abort the
// loop.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, styles.Title.Render("tally"))
	fmt.Fprintln(r.out, styles.Muted.Render("Press enter to see the menu, type 'exit' to quit."))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := r.prompt(">>> ")
		if !ok {
			// EOF or read failure; either way the loop is done.
			return r.in.Err()
		}

		if strings.EqualFold(line, "exit") {
			r.log.Info().Msg("user requested exit")
			return nil
		}

		if line == "" {
			_ = r.registry.Dispatch("menu", nil)
			continue
		}

		fields := strings.Fields(line)
		if err := r.registry.Dispatch(fields[0], fields[1:]); err != nil {
			r.log.Warn().Str("command", fields[0]).Msg("unknown command")
			fmt.Fprintln(r.out, styles.Error.Render(fmt.Sprintf("Unknown command %q.", fields[0])))
			_ = r.registry.Dispatch("menu", nil)
		}
	}
}

// prompt prints p and reads one trimmed line. The second return is
// false once input is exhausted.
func (r *REPL) prompt(p string) (string, bool) {
	fmt.Fprint(r.out, p)
	if !r.in.Scan() {
		fmt.Fprintln(r.out)
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}
