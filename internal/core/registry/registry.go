// Package registry implements the named command table and its
// failure-isolating dispatcher.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/tally/internal/core/logging"
)

// ErrNotFound is returned by Dispatch when no command is registered
// under the requested name. The caller decides recovery, typically by
// showing the menu.
var ErrNotFound = errors.New("command not found")

// Command is a named, describable unit of executable behavior.
type Command interface {
	Name() string
	Description() string
	Execute(args []string) error
}

// Info is a command's menu listing.
type Info struct {
	Name        string
	Description string
}

// Registry maps command names to handlers. Registration order is
// preserved for listings; re-registering a name overwrites in place.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
	order    []string
	out      io.Writer
	log      zerolog.Logger
}

// New returns an empty registry. Failures raised by dispatched
// commands are reported to out.
func New(out io.Writer) *Registry {
	return &Registry{
		commands: make(map[string]Command),
		out:      out,
		log:      logging.Component("registry"),
	}
}

// Register adds cmd under its name. Registering an existing name logs
// a warning and overwrites the previous command, keeping its original
// position in the listing order. Last write wins; this is never an
// error.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if _, exists := r.commands[name]; exists {
		r.log.Warn().Str("command", name).Msg("command already registered, overwriting")
	} else {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
	r.log.Debug().Str("command", name).Msg("command registered")
}

// List returns (name, description) pairs for every registered command
// in registration order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		cmd := r.commands[name]
		infos = append(infos, Info{Name: cmd.Name(), Description: cmd.Description()})
	}
	return infos
}

// Dispatch resolves name and runs its command with args inside a
// failure boundary. A missing name returns ErrNotFound; anything the
// command itself raises, an error return or a panic, is logged and
// reported but never propagated, so one misbehaving command cannot
// take down the dispatch loop.
func (r *Registry) Dispatch(name string, args []string) error {
	r.mu.RLock()
	cmd, ok := r.commands[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	r.execute(cmd, args)
	return nil
}

func (r *Registry) execute(cmd Command, args []string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.log.Error().Str("command", cmd.Name()).Interface("panic", recovered).Msg("command panicked")
			fmt.Fprintf(r.out, "An unexpected error occurred in %q: %v\n", cmd.Name(), recovered)
		}
	}()

	if err := cmd.Execute(args); err != nil {
		r.log.Error().Str("command", cmd.Name()).Err(err).Msg("command failed")
		fmt.Fprintf(r.out, "Error executing command %q: %v\n", cmd.Name(), err)
	}
}
