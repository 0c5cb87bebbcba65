// Package commands defines the CLI surface of tally.
package commands

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tally/internal/core/calculator"
	"github.com/colonyops/tally/internal/core/history"
	"github.com/colonyops/tally/internal/repl"
	"github.com/colonyops/tally/internal/store/csvfile"
)

type ReplCmd struct {
	flags *Flags
}

// NewReplCmd creates a new repl command
func NewReplCmd(flags *Flags) *ReplCmd {
	return &ReplCmd{flags: flags}
}

// Register adds the repl command to the application
func (cmd *ReplCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "repl",
		Usage:     "Start the interactive calculator",
		UsageText: "tally repl",
		Description: `Starts the interactive prompt. Type a command name to run it, press
enter on an empty line to see the menu, or type 'exit' to quit.`,
		Action: cmd.Run,
	})

	return app
}

// Run starts the interactive loop. It is also the application's
// default action when no subcommand is given.
func (cmd *ReplCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	store := csvfile.New(cfg.HistoryPath())
	hist := history.New(store)
	calcSvc := calculator.New(hist)

	r := repl.New(os.Stdin, c.Root().Writer, calcSvc, hist, cfg.HistoryPath())
	return r.Run(ctx)
}
