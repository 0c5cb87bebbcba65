package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tally/internal/core/calc"
	"github.com/colonyops/tally/internal/core/history"
	"github.com/colonyops/tally/internal/store/csvfile"
	"github.com/colonyops/tally/pkg/iojson"
)

type HistoryCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	force      bool
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "List the persisted calculation history",
		UsageText: "tally history [--json]",
		Description: `Displays the saved history with recomputed results. Only the operation
and its operands are stored; results are always recomputed.

Use --json for JSON-lines output.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.list,
		Commands: []*cli.Command{
			{
				Name:      "clear",
				Usage:     "Delete the persisted history file",
				UsageText: "tally history clear --force",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "force",
						Usage:       "confirm deleting the history file",
						Destination: &cmd.force,
					},
				},
				Action: cmd.clear,
			},
		},
	})

	return app
}

func (cmd *HistoryCmd) list(ctx context.Context, c *cli.Command) error {
	store := csvfile.New(cmd.flags.Config.HistoryPath())

	calcs, err := store.Read()
	switch {
	case errors.Is(err, history.ErrNoFile), errors.Is(err, history.ErrNoRecords):
		if !cmd.jsonOutput {
			fmt.Fprintln(os.Stderr, "No saved history")
		}
		return nil
	case err != nil:
		return fmt.Errorf("read history: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, entry := range calcs {
			if err := iojson.WriteLine(out, buildEntryInfo(entry)); err != nil {
				return fmt.Errorf("encode history entry: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tOPERATION\tOPERAND1\tOPERAND2\tRESULT")

	for i, entry := range calcs {
		result := "error"
		if value, err := entry.Compute(); err == nil {
			result = value.String()
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, entry.Op.Name(), entry.A, entry.B, result)
	}

	return w.Flush()
}

func (cmd *HistoryCmd) clear(ctx context.Context, c *cli.Command) error {
	if !cmd.force {
		return fmt.Errorf("refusing to delete the history file without --force")
	}

	path := cmd.flags.Config.HistoryPath()
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "No saved history")
			return nil
		}
		return fmt.Errorf("delete history file: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Deleted %s\n", path)
	return nil
}

// entryInfo is the JSON output format for tally history --json.
type entryInfo struct {
	Operation string `json:"operation"`
	Operand1  string `json:"operand1"`
	Operand2  string `json:"operand2"`
	Result    string `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
}

func buildEntryInfo(entry calc.Calculation) entryInfo {
	info := entryInfo{
		Operation: entry.Op.Name(),
		Operand1:  entry.A.String(),
		Operand2:  entry.B.String(),
	}

	result, err := entry.Compute()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.Result = result.String()
	return info
}
