// Package edit implements the suggestion engine of the line editor.
package edit

import (
	"corvid.sh/pkg/cli/histutil"
	"corvid.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[edit] ")

// Capabilities is the interface the suggestion engine uses to query the
// shell. Methods may be called on every keystroke and should be fast.
type Capabilities interface {
	// GetCompletions returns completion candidates for the given prefix.
	GetCompletions(prefix string) []string
	// History returns the command history store, or nil if history is
	// unavailable.
	History() histutil.Store
	// CompletionEnabled reports whether the completion provider should be
	// consulted.
	CompletionEnabled() bool
	// Aliases returns the alias table. It is consumed by the completion
	// provider, not by the suggestion engine itself.
	Aliases() map[string]string
}

// Suggester produces at most one inline suggestion for an input prefix.
// Completion candidates take precedence over history; either source failing
// or panicking degrades to no suggestion.
type Suggester struct {
	caps Capabilities
}

// NewSuggester creates a Suggester on top of the given capabilities.
func NewSuggester(caps Capabilities) *Suggester {
	return &Suggester{caps}
}

// Suggest returns the suggestion for prefix, or "" if there is none. The
// returned string is always the full candidate, of which prefix is a strict
// prefix. An empty prefix never produces a suggestion.
func (s *Suggester) Suggest(prefix string) (suggestion string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Println("suggestion provider panicked:", r)
			suggestion = ""
		}
	}()
	if prefix == "" {
		return ""
	}
	if s.caps.CompletionEnabled() {
		for _, cand := range s.caps.GetCompletions(prefix) {
			if cand != prefix {
				return cand
			}
		}
	}
	if store := s.caps.History(); store != nil {
		cursor := store.Cursor(prefix)
		for cursor.Prev(); ; cursor.Prev() {
			cmd, err := cursor.Get()
			if err != nil {
				break
			}
			if cmd.Text != prefix {
				return cmd.Text
			}
		}
	}
	return ""
}
