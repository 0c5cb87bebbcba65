package repl

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/colonyops/tally/internal/core/calc"
	"github.com/colonyops/tally/internal/core/history"
	"github.com/colonyops/tally/internal/core/styles"
)

// historyCommand manages the calculation history through a numbered
// sub-menu.
type historyCommand struct {
	history *history.History
	path    string
	repl    *REPL
}

func (c *historyCommand) Name() string { return "history" }

func (c *historyCommand) Description() string {
	return "Manage calculation history (show, clear, save, load, delete)."
}

func (c *historyCommand) Execute(args []string) error {
	out := c.repl.out

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Title.Render("History"))
		fmt.Fprintln(out, "  1. Show the most recent calculation")
		fmt.Fprintln(out, "  2. Show all calculations")
		fmt.Fprintln(out, "  3. Clear calculation history")
		fmt.Fprintln(out, "  4. Save calculation history to file")
		fmt.Fprintln(out, "  5. Load calculation history from file")
		fmt.Fprintln(out, "  6. Delete a calculation from history")
		fmt.Fprintln(out, styles.Muted.Render("Type 'exit' to return to the main menu."))

		choice, ok := c.repl.prompt("Enter your choice: ")
		if !ok || equalFoldExit(choice) {
			return nil
		}

		c.process(choice)
	}
}

func (c *historyCommand) process(choice string) {
	switch choice {
	case "1":
		c.showLatest()
	case "2":
		c.showAll()
	case "3":
		c.clear()
	case "4":
		c.save()
	case "5":
		c.load()
	case "6":
		c.delete()
	default:
		fmt.Fprintln(c.repl.out, styles.Error.Render("Invalid choice. Pick 1-6 or type 'exit'."))
	}
}

func (c *historyCommand) showLatest() {
	latest, ok := c.history.Latest()
	if !ok {
		fmt.Fprintln(c.repl.out, "No calculations in history.")
		return
	}
	fmt.Fprintln(c.repl.out, formatCalculation(latest))
}

func (c *historyCommand) showAll() {
	entries := c.history.All()
	if len(entries) == 0 {
		fmt.Fprintln(c.repl.out, "No calculations in history.")
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(c.repl.out, "%3d. %s\n", i+1, formatCalculation(entry))
	}
}

func (c *historyCommand) clear() {
	c.history.Clear()
	fmt.Fprintln(c.repl.out, "Calculation history cleared.")
}

func (c *historyCommand) save() {
	err := c.history.Save()
	switch {
	case errors.Is(err, history.ErrNothingToSave):
		fmt.Fprintln(c.repl.out, "No calculations in history to save.")
	case err != nil:
		fmt.Fprintln(c.repl.out, styles.Error.Render("Could not save history: "+err.Error()))
	default:
		fmt.Fprintf(c.repl.out, "History saved to %s.\n", c.path)
	}
}

func (c *historyCommand) load() {
	err := c.history.Load()
	switch {
	case errors.Is(err, history.ErrNoFile):
		fmt.Fprintln(c.repl.out, "No history file found; nothing to load.")
	case errors.Is(err, history.ErrNoRecords):
		fmt.Fprintln(c.repl.out, "The history file has no records; nothing to load.")
	case err != nil:
		fmt.Fprintln(c.repl.out, styles.Error.Render("Could not load history: "+err.Error()))
	default:
		fmt.Fprintf(c.repl.out, "Loaded %d calculation(s) from %s.\n", c.history.Len(), c.path)
	}
}

func (c *historyCommand) delete() {
	line, ok := c.repl.prompt("Enter the number of the calculation to delete: ")
	if !ok || equalFoldExit(line) {
		return
	}

	// The menu numbers calculations from 1; history indexes from 0.
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(c.repl.out, styles.Error.Render(fmt.Sprintf("%q is not a valid number.", line)))
		return
	}

	switch err := c.history.Delete(n - 1); {
	case errors.Is(err, history.ErrIndexOutOfRange):
		fmt.Fprintln(c.repl.out, styles.Error.Render(fmt.Sprintf("No calculation numbered %d in history.", n)))
	case err != nil:
		fmt.Fprintln(c.repl.out, styles.Error.Render("Could not delete calculation: "+err.Error()))
	default:
		fmt.Fprintf(c.repl.out, "Deleted calculation %d.\n", n)
	}
}

// formatCalculation renders an entry with its recomputed result.
// Results are never stored, so a loaded division by zero shows the
// error instead of a value.
func formatCalculation(entry calc.Calculation) string {
	result, err := entry.Compute()
	if err != nil {
		return fmt.Sprintf("%s %s %s = error: %v", entry.A, entry.Op.Name(), entry.B, err)
	}
	return fmt.Sprintf("%s %s %s = %s", entry.A, entry.Op.Name(), entry.B, result)
}
