// Package complete implements the completion provider of the line editor.
package complete

import (
	"sort"
	"strings"
)

// Completer produces completion candidates from a fixed inventory of command
// names and an alias table.
type Completer struct {
	commands []string
	aliases  map[string]string
}

// NewCompleter creates a Completer. The inventory is typically the
// executables found on PATH; aliases may be nil.
func NewCompleter(commands []string, aliases map[string]string) *Completer {
	return &Completer{commands, aliases}
}

// Complete returns all candidates with the given prefix, most relevant
// first. Relevance is shortest-first, breaking ties lexicographically.
func (c *Completer) Complete(prefix string) []string {
	var cands []string
	seen := make(map[string]bool)
	add := func(name string) {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			cands = append(cands, name)
		}
	}
	for name := range c.aliases {
		add(name)
	}
	for _, name := range c.commands {
		add(name)
	}
	sort.Slice(cands, func(i, j int) bool {
		if len(cands[i]) != len(cands[j]) {
			return len(cands[i]) < len(cands[j])
		}
		return cands[i] < cands[j]
	})
	return cands
}
