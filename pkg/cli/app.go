package cli

import (
	"errors"
	"io"
	"sync"

	"corvid.sh/pkg/cli/term"
	"corvid.sh/pkg/ui"
)

// ErrCancelled is returned by ReadLine when the session is ended with an
// interrupt or escape key.
var ErrCancelled = errors.New("editing cancelled")

// App connects a terminal event reader to an Editor. It runs the
// single-threaded editing loop: one key event is fully processed - buffer
// mutation, suggestion lookup, diff, terminal write - before the next one
// is handled.
type App struct {
	reader term.Reader
	editor *Editor
	lp     *loop

	startFeed sync.Once
}

// NewApp creates an App reading events from reader and feeding them to
// editor.
func NewApp(reader term.Reader, editor *Editor) *App {
	a := &App{reader: reader, editor: editor, lp: newLoop()}
	a.lp.HandleCb(a.handle)
	return a
}

// ReadLine runs one editing session and returns the committed line. The
// caller must have written the prompt and called Reset on the editor. It
// returns ErrCancelled when the session is interrupted and io.EOF on an
// end-of-file key.
func (a *App) ReadLine() (string, error) {
	a.startFeed.Do(func() { go a.feedEvents() })
	return a.lp.Run()
}

// Close aborts any outstanding read and releases the reader.
func (a *App) Close() {
	a.reader.Close()
}

// A fatal reader error, routed through the loop so that it is observed in
// order with the events before it.
type readError struct{ err error }

func (a *App) feedEvents() {
	for {
		ev, err := a.reader.ReadEvent()
		if err != nil {
			if err == term.ErrStopped {
				return
			}
			if term.IsReadErrorRecoverable(err) {
				logger.Println("recoverable read error:", err)
				continue
			}
			a.lp.Input(readError{err})
			return
		}
		a.lp.Input(ev)
	}
}

func (a *App) handle(ev any) {
	switch ev := ev.(type) {
	case readError:
		a.lp.Return("", ev.err)
	case term.KeyEvent:
		if a.editor.Phase() != Editing {
			// Type-ahead between sessions stays queued in the terminal
			// driver, not here; drop events that arrive out of session.
			return
		}
		if err := a.editor.HandleKey(ui.Key(ev)); err != nil {
			a.lp.Return("", err)
			return
		}
		switch a.editor.Phase() {
		case Committed:
			a.lp.Return(a.editor.Line(), nil)
		case Cancelled:
			if a.editor.SawEOF() {
				a.lp.Return("", io.EOF)
			} else {
				a.lp.Return("", ErrCancelled)
			}
		}
	}
}
