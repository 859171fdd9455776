// Package histutil provides utilities for working with command history.
package histutil

import (
	"errors"

	"corvid.sh/pkg/store/storedefs"
)

// ErrEndOfHistory is returned by Cursor.Get if the cursor is currently over
// the edge of the history.
var ErrEndOfHistory = errors.New("end of history")

// Store is an abstract interface for history store.
type Store interface {
	// AllCmds returns all commands kept in the store.
	AllCmds() ([]storedefs.Cmd, error)
	// AddCmd adds a new command to the store.
	AddCmd(cmd storedefs.Cmd) (int, error)
	// Cursor returns a cursor that iterates through commands with the given
	// prefix. The cursor is initially placed just after the last command.
	Cursor(prefix string) Cursor
}

// Cursor is used to navigate a Store.
type Cursor interface {
	// Prev moves the cursor to the previous command.
	Prev()
	// Next moves the cursor to the next command.
	Next()
	// Get returns the command the cursor is currently at, or ErrEndOfHistory
	// if the cursor is over either edge.
	Get() (storedefs.Cmd, error)
}
