package repl

import (
	"fmt"
	"io"

	"github.com/colonyops/tally/internal/core/registry"
	"github.com/colonyops/tally/internal/core/styles"
)

// menuCommand prints every registered command with its description.
type menuCommand struct {
	registry *registry.Registry
	out      io.Writer
}

func (c *menuCommand) Name() string        { return "menu" }
func (c *menuCommand) Description() string { return "Show this menu of available commands." }

func (c *menuCommand) Execute(args []string) error {
	fmt.Fprintln(c.out, styles.Title.Render("Commands"))
	for _, info := range c.registry.List() {
		name := styles.Command.Render(fmt.Sprintf("%-10s", info.Name))
		fmt.Fprintf(c.out, "  %s %s\n", name, info.Description)
	}
	fmt.Fprintln(c.out, styles.Muted.Render("Type 'exit' to quit."))
	return nil
}
