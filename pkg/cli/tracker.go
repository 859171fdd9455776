// Package cli implements the interactive line editor: it tracks what is
// currently rendered on the terminal, diffs it against what should be
// there, and turns key events into buffer edits.
package cli

import (
	"errors"
	"strings"

	"corvid.sh/pkg/cli/term"
	"corvid.sh/pkg/logutil"
	"corvid.sh/pkg/ui"
	"corvid.sh/pkg/wcwidth"
)

var logger = logutil.GetLogger("[cli] ")

// Phase is the lifecycle phase of an editing session.
type Phase int

// Values for Phase. A session is created in Editing by Reset; Committed and
// Cancelled are terminal, and only another Reset leaves them.
const (
	Idle Phase = iota
	Editing
	Committed
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	default:
		return "bad phase"
	}
}

// ErrNotEditing is returned when an edit arrives outside an editing
// session.
var ErrNotEditing = errors.New("no active editing session")

// OpSink consumes render operations in order. A term.Writer encodes them
// onto a terminal; tests substitute recording sinks.
type OpSink interface {
	WriteOps(ops []term.Op) error
}

// Tracker owns what is currently rendered in the input region of the
// terminal for one editing session, and brings the screen in sync with the
// intended state using the minimal set of operations.
type Tracker struct {
	sink     OpSink
	phase    Phase
	prompt   string
	base     int
	rendered *term.Line
}

// NewTracker returns a Tracker that writes operations to sink.
func NewTracker(sink OpSink) *Tracker {
	return &Tracker{sink: sink}
}

// Phase returns the lifecycle phase of the current session.
func (t *Tracker) Phase() Phase { return t.phase }

// Base returns the column where the input region starts.
func (t *Tracker) Base() int { return t.base }

// Reset starts a new session after the caller has written prompt to the
// terminal. The Tracker itself never writes the prompt; only its visual
// width matters here, to know where the input region starts. Style escapes
// embedded in the prompt do not count towards that width.
func (t *Tracker) Reset(prompt string) {
	t.prompt = prompt
	t.base = wcwidth.OfEscaped(prompt)
	t.rendered = &term.Line{Base: t.base, Dot: t.base}
	t.phase = Editing
}

// UpdateDisplay brings the screen in sync with the given input, cursor and
// suggestion. The suggestion is rendered dim after the input, but only when
// it extends the input and the cursor is at the end of it; any subsequent
// edit makes it disappear structurally, since it is part of the rendered
// text but not of the input. dot is a rune index, clamped to [0, len(raw)].
//
// A failed terminal write cancels the session: the screen state is unknown
// at that point and cannot be repaired safely.
func (t *Tracker) UpdateDisplay(raw []rune, dot int, suggestion string) error {
	if t.phase != Editing {
		return ErrNotEditing
	}
	if dot < 0 {
		dot = 0
	}
	if dot > len(raw) {
		dot = len(raw)
	}

	next := &term.Line{Base: t.base, Cells: term.CellsOfText(ui.T(string(raw)))}
	if dot == len(raw) && suggestion != "" {
		if tail, ok := strings.CutPrefix(suggestion, string(raw)); ok && tail != "" {
			next.Cells = append(next.Cells, term.CellsOfText(ui.T(tail, ui.Dim))...)
		}
	}
	next.Dot = t.base + wcwidth.ColumnAt(raw, dot)

	ops := term.DiffLines(t.rendered, next)
	if err := t.sink.WriteOps(ops); err != nil {
		logger.Println("terminal write failed, cancelling session:", err)
		t.phase = Cancelled
		return err
	}
	t.rendered = next
	return nil
}

// Commit ends the session, freezing what is on the screen.
func (t *Tracker) Commit() {
	if t.phase == Editing {
		t.phase = Committed
	}
}

// Cancel ends the session. A suggestion still on the screen is cleared with
// one final flush; nothing is written after that.
func (t *Tracker) Cancel(raw []rune, dot int) {
	if t.phase != Editing {
		return
	}
	t.UpdateDisplay(raw, dot, "")
	if t.phase == Editing {
		t.phase = Cancelled
	}
}
