package repl

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tally/internal/core/calculator"
	"github.com/colonyops/tally/internal/core/history"
	"github.com/colonyops/tally/internal/store/csvfile"
)

// run feeds input through a fresh REPL backed by a CSV store at path
// and returns everything written to the console.
func run(t *testing.T, path string, input string) string {
	t.Helper()

	hist := history.New(csvfile.New(path))
	calcSvc := calculator.New(hist)

	out := &bytes.Buffer{}
	r := New(strings.NewReader(input), out, calcSvc, hist, path)
	require.NoError(t, r.Run(context.Background()))

	return out.String()
}

func historyPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "history.csv")
}

func TestREPLExit(t *testing.T) {
	t.Run("exit is case-insensitive", func(t *testing.T) {
		for _, token := range []string{"exit", "EXIT", "Exit"} {
			out := run(t, historyPath(t), token+"\n")
			assert.Contains(t, out, ">>> ")
		}
	})

	t.Run("EOF terminates cleanly", func(t *testing.T) {
		out := run(t, historyPath(t), "")
		assert.Contains(t, out, ">>> ")
	})
}

func TestREPLMenu(t *testing.T) {
	t.Run("empty line shows menu", func(t *testing.T) {
		out := run(t, historyPath(t), "\nexit\n")
		for _, name := range []string{"add", "subtract", "multiply", "divide", "history", "menu"} {
			assert.Contains(t, out, name)
		}
	})

	t.Run("unknown command shows menu", func(t *testing.T) {
		out := run(t, historyPath(t), "frobnicate\nexit\n")
		assert.Contains(t, out, `Unknown command "frobnicate"`)
		assert.Contains(t, out, "Show this menu of available commands.")
	})
}

func TestREPLArithmetic(t *testing.T) {
	t.Run("addition", func(t *testing.T) {
		out := run(t, historyPath(t), "add\n5 3\nexit\nexit\n")
		assert.Contains(t, out, "The result of 5 add 3 is 8")
	})

	t.Run("division", func(t *testing.T) {
		out := run(t, historyPath(t), "divide\n20 4\nexit\nexit\n")
		assert.Contains(t, out, "The result of 20 divide 4 is 5")
	})

	t.Run("division by zero is recovered", func(t *testing.T) {
		out := run(t, historyPath(t), "divide\n1 0\n2 1\nexit\nexit\n")
		assert.Contains(t, out, "Cannot divide by zero.")
		// The sub-prompt keeps going after the failure.
		assert.Contains(t, out, "The result of 2 divide 1 is 2")
	})

	t.Run("invalid operand count", func(t *testing.T) {
		out := run(t, historyPath(t), "add\n1 2 3\nexit\nexit\n")
		assert.Contains(t, out, "invalid input format")
	})

	t.Run("non-numeric operand skips computation", func(t *testing.T) {
		out := run(t, historyPath(t), "add\nfoo 3\nexit\nexit\n")
		assert.Contains(t, out, "invalid number input")
		assert.NotContains(t, out, "The result of")
	})
}

func TestREPLHistoryMenu(t *testing.T) {
	t.Run("latest and all", func(t *testing.T) {
		script := "add\n5 3\nexit\ndivide\n20 4\nexit\nhistory\n1\n2\nexit\nexit\n"
		out := run(t, historyPath(t), script)
		assert.Contains(t, out, "20 division 4 = 5")
		assert.Contains(t, out, "  1. 5 addition 3 = 8")
	})

	t.Run("empty history", func(t *testing.T) {
		out := run(t, historyPath(t), "history\n1\nexit\nexit\n")
		assert.Contains(t, out, "No calculations in history.")
	})

	t.Run("invalid choice re-prompts", func(t *testing.T) {
		out := run(t, historyPath(t), "history\n9\n1\nexit\nexit\n")
		assert.Contains(t, out, "Invalid choice.")
		assert.Contains(t, out, "No calculations in history.")
	})

	t.Run("save then load in a new session", func(t *testing.T) {
		path := historyPath(t)

		out := run(t, path, "add\n2 3\nexit\nhistory\n4\nexit\nexit\n")
		assert.Contains(t, out, "History saved to "+path)

		_, err := os.Stat(path)
		require.NoError(t, err, "history file written")

		out = run(t, path, "history\n5\n2\nexit\nexit\n")
		assert.Contains(t, out, "Loaded 1 calculation(s)")
		assert.Contains(t, out, "2 addition 3 = 5")
	})

	t.Run("save with empty history", func(t *testing.T) {
		path := historyPath(t)
		out := run(t, path, "history\n4\nexit\nexit\n")
		assert.Contains(t, out, "No calculations in history to save.")

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err), "no file must be written")
	})

	t.Run("load with no file", func(t *testing.T) {
		out := run(t, historyPath(t), "history\n5\nexit\nexit\n")
		assert.Contains(t, out, "No history file found")
	})

	t.Run("delete by one-based index", func(t *testing.T) {
		path := historyPath(t)
		script := "add\n1 1\nexit\nadd\n2 2\nexit\nhistory\n6\n1\n2\nexit\nexit\n"
		out := run(t, path, script)
		assert.Contains(t, out, "Deleted calculation 1.")
		assert.Contains(t, out, "  1. 2 addition 2 = 4")
		assert.NotContains(t, out, "1 addition 1")

		// Deletion writes through to the file immediately.
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "operation,operand1,operand2\naddition,2,2\n", string(data))
	})

	t.Run("delete out of range", func(t *testing.T) {
		out := run(t, historyPath(t), "add\n1 1\nexit\nhistory\n6\n5\nexit\nexit\n")
		assert.Contains(t, out, "No calculation numbered 5 in history.")
	})

	t.Run("delete with non-numeric input", func(t *testing.T) {
		out := run(t, historyPath(t), "history\n6\nbanana\nexit\nexit\n")
		assert.Contains(t, out, `"banana" is not a valid number.`)
	})
}
