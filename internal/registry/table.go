// Package registry maps subcommand names to their handlers and option lists and
// dispatches command lines to them.
package registry

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/zerr"
)

// Handler runs a subcommand with its parsed options.
type Handler func(ctx context.Context, v Values) error

// Entry is one registered subcommand.
type Entry struct {
	Name    string
	Short   string
	Handler Handler
	// Options are exposed in declaration order.
	Options []OptionSpec
	// Args names the positional arguments. The subcommand requires exactly
	// that many.
	Args []string
}

// Table is the registration table populated at start-up. Once frozen it only
// serves lookups.
type Table struct {
	mu      sync.RWMutex
	entries []Entry
	frozen  bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Register adds e to the table.
func (t *Table) Register(e Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		return zerr.With(zerr.Wrap(domain.ErrRegistryFrozen, "cannot register subcommand"), "command", e.Name)
	}
	if e.Name == "" || strings.ContainsAny(e.Name, " \t\n") || strings.HasPrefix(e.Name, "-") {
		return zerr.With(zerr.Wrap(domain.ErrInvalidCommandName, "cannot register subcommand"), "command", e.Name)
	}
	for _, opt := range e.Options {
		if opt.Long == "" || len(opt.Short) > 1 {
			err := zerr.Wrap(domain.ErrInvalidOption, "cannot register subcommand")
			return zerr.With(zerr.With(err, "command", e.Name), "option", opt.Long)
		}
	}

	i, found := slices.BinarySearchFunc(t.entries, e.Name, func(a Entry, name string) int {
		return strings.Compare(a.Name, name)
	})
	if found {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateCommand, "cannot register subcommand"), "command", e.Name)
	}
	t.entries = slices.Insert(t.entries, i, e)
	return nil
}

// Freeze makes the table read-only.
func (t *Table) Freeze() {
	t.mu.Lock()
	t.frozen = true
	t.mu.Unlock()
}

// Lookup returns the entry registered under name.
func (t *Table) Lookup(name string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, found := slices.BinarySearchFunc(t.entries, name, func(a Entry, name string) int {
		return strings.Compare(a.Name, name)
	})
	if !found {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns the registered entries sorted by name.
func (t *Table) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.entries)
}
