package cli

import (
	"strings"
	"unicode"

	"corvid.sh/pkg/ui"
)

// Suggester provides an inline suggestion for an input prefix. An empty
// return means no suggestion.
type Suggester interface {
	Suggest(prefix string) string
}

// Editor holds the line being edited and applies key events to it. All
// mutations go through HandleKey or the setters; the display is owned by
// the Tracker.
type Editor struct {
	tracker *Tracker
	suggest Suggester

	buf     []rune
	dot     int
	pending string
	line    string
	eof     bool
}

// NewEditor returns an Editor that renders through tracker and consults
// suggest after every edit. suggest may be nil.
func NewEditor(tracker *Tracker, suggest Suggester) *Editor {
	return &Editor{tracker: tracker, suggest: suggest}
}

// Reset starts a new session with an empty buffer. The caller must have
// written prompt to the terminal already.
func (ed *Editor) Reset(prompt string) {
	ed.buf = nil
	ed.dot = 0
	ed.pending = ""
	ed.line = ""
	ed.eof = false
	ed.tracker.Reset(prompt)
}

// Phase returns the lifecycle phase of the current session.
func (ed *Editor) Phase() Phase { return ed.tracker.Phase() }

// Line returns the committed line. It is only meaningful once the session
// is Committed.
func (ed *Editor) Line() string { return ed.line }

// SawEOF reports whether the session was ended by an end-of-file key.
func (ed *Editor) SawEOF() bool { return ed.eof }

// CurrentInput returns the content of the input buffer.
func (ed *Editor) CurrentInput() string { return string(ed.buf) }

// SetCurrentInput replaces the input buffer, clamping the cursor to the new
// content. Together with UpdateDisplay it allows driving the editor without
// key events.
func (ed *Editor) SetCurrentInput(s string) {
	ed.buf = []rune(s)
	if ed.dot > len(ed.buf) {
		ed.dot = len(ed.buf)
	}
}

// CursorPosition returns the rune index of the cursor in the input buffer.
func (ed *Editor) CursorPosition() int { return ed.dot }

// SetCursorPosition moves the cursor, clamping to the buffer boundaries.
func (ed *Editor) SetCursorPosition(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(ed.buf) {
		i = len(ed.buf)
	}
	ed.dot = i
}

// HandleKey applies one key event: it mutates the buffer and cursor,
// refreshes the suggestion and updates the display. Keys that commit or
// cancel the session do so before this method returns; unbound keys are
// ignored.
func (ed *Editor) HandleKey(k ui.Key) error {
	if ed.Phase() != Editing {
		return ErrNotEditing
	}
	switch k {
	case ui.K(ui.Enter):
		ed.line = string(ed.buf)
		ed.pending = ""
		if err := ed.tracker.UpdateDisplay(ed.buf, len(ed.buf), ""); err != nil {
			return err
		}
		ed.tracker.Commit()
		return nil
	case ui.K('C', ui.Ctrl), ui.K('[', ui.Ctrl):
		ed.tracker.Cancel(ed.buf, ed.dot)
		return nil
	}

	switch {
	case k == ui.K('D', ui.Ctrl) && len(ed.buf) == 0:
		ed.eof = true
		ed.tracker.Cancel(ed.buf, ed.dot)
		return nil
	case k == ui.K('D', ui.Ctrl) || k == ui.K(ui.Delete):
		if ed.dot < len(ed.buf) {
			ed.buf = append(ed.buf[:ed.dot], ed.buf[ed.dot+1:]...)
		}
	case k == ui.K(ui.Backspace):
		if ed.dot > 0 {
			ed.buf = append(ed.buf[:ed.dot-1], ed.buf[ed.dot:]...)
			ed.dot--
		}
	case k == ui.K(ui.Left):
		if ed.dot > 0 {
			ed.dot--
		}
	case k == ui.K(ui.Right):
		if ed.dot < len(ed.buf) {
			ed.dot++
		} else {
			ed.acceptSuggestion()
		}
	case k == ui.K(ui.Home):
		ed.dot = 0
	case k == ui.K(ui.End):
		ed.dot = len(ed.buf)
	case k == ui.K(ui.Tab):
		ed.acceptSuggestion()
	case k.Mod == 0 && k.Rune > 0 && !unicode.IsControl(k.Rune):
		ed.insert(k.Rune)
	default:
		return nil
	}
	return ed.UpdateDisplay()
}

// UpdateDisplay refreshes the suggestion for the current input and brings
// the screen in sync. Every key event ends with it; it is exported so tests
// can drive the editor without synthesizing key events.
func (ed *Editor) UpdateDisplay() error {
	ed.pending = ""
	if ed.suggest != nil {
		ed.pending = ed.suggest.Suggest(string(ed.buf))
	}
	return ed.tracker.UpdateDisplay(ed.buf, ed.dot, ed.pending)
}

func (ed *Editor) insert(r rune) {
	ed.buf = append(ed.buf, 0)
	copy(ed.buf[ed.dot+1:], ed.buf[ed.dot:])
	ed.buf[ed.dot] = r
	ed.dot++
}

// acceptSuggestion splices the pending suggestion into the input, leaving
// the cursor at its end. The ghost tail is already on the screen, so the
// display update that follows is a pure append.
func (ed *Editor) acceptSuggestion() {
	if ed.pending == "" {
		return
	}
	if tail, ok := strings.CutPrefix(ed.pending, string(ed.buf)); ok {
		ed.buf = append(ed.buf, []rune(tail)...)
	}
	ed.dot = len(ed.buf)
	ed.pending = ""
}
