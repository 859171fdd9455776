package cli

import (
	"errors"
	"strings"
	"testing"

	"corvid.sh/pkg/cli/term"
	"corvid.sh/pkg/wcwidth"
)

// opsRecorder records every WriteOps call, optionally failing after a set
// number of calls.
type opsRecorder struct {
	calls     [][]term.Op
	failAfter int // fail calls after this many; -1 means never
}

func newOpsRecorder() *opsRecorder { return &opsRecorder{failAfter: -1} }

func (s *opsRecorder) WriteOps(ops []term.Op) error {
	if s.failAfter >= 0 && len(s.calls) >= s.failAfter {
		return errors.New("tty gone")
	}
	s.calls = append(s.calls, ops)
	return nil
}

func (s *opsRecorder) countOp(op term.Op) int {
	n := 0
	for _, ops := range s.calls {
		n += term.CountOp(ops, op)
	}
	return n
}

// Replays all recorded ops on an empty line with the given base.
func (s *opsRecorder) replay(base int) *term.Line {
	l := &term.Line{Base: base, Dot: base}
	for _, ops := range s.calls {
		l = term.Apply(l, ops...)
	}
	return l
}

func lineText(l *term.Line) string {
	var s string
	for _, c := range l.Cells {
		s += c.Text
	}
	return s
}

func TestTracker_Phases(t *testing.T) {
	sink := newOpsRecorder()
	tr := NewTracker(sink)

	if tr.Phase() != Idle {
		t.Errorf("new tracker phase %v, want idle", tr.Phase())
	}
	if err := tr.UpdateDisplay([]rune("x"), 1, ""); err != ErrNotEditing {
		t.Errorf("UpdateDisplay before Reset -> %v, want ErrNotEditing", err)
	}

	tr.Reset("> ")
	if tr.Phase() != Editing || tr.Base() != 2 {
		t.Errorf("after Reset: phase %v base %v, want editing 2",
			tr.Phase(), tr.Base())
	}

	tr.Commit()
	if tr.Phase() != Committed {
		t.Errorf("after Commit: phase %v, want committed", tr.Phase())
	}
	if err := tr.UpdateDisplay([]rune("x"), 1, ""); err != ErrNotEditing {
		t.Errorf("UpdateDisplay after Commit -> %v, want ErrNotEditing", err)
	}

	// Terminal phases are sticky until the next Reset.
	tr.Cancel(nil, 0)
	if tr.Phase() != Committed {
		t.Errorf("Cancel after Commit changed phase to %v", tr.Phase())
	}
	tr.Reset("> ")
	if tr.Phase() != Editing {
		t.Errorf("Reset did not restart the session")
	}
}

// Typing a word at the end of the line must only ever append: no clears, no
// repaints of what is already on the screen.
func TestTracker_TypingAppendsOnly(t *testing.T) {
	sink := newOpsRecorder()
	tr := NewTracker(sink)
	tr.Reset("> ")

	input := []rune("echo")
	for i := 1; i <= len(input); i++ {
		if err := tr.UpdateDisplay(input[:i], i, ""); err != nil {
			t.Fatalf("UpdateDisplay -> error %v", err)
		}
	}

	if n := sink.countOp(term.ClearToEOL{}); n != 0 {
		t.Errorf("%d ClearToEOL ops while typing, want 0", n)
	}
	if n := sink.countOp(term.MoveCursor{}); n != 0 {
		t.Errorf("%d MoveCursor ops while typing, want 0", n)
	}
	if got := sink.replay(2); lineText(got) != "echo" || got.Dot != 6 {
		t.Errorf("screen shows %q dot %v, want %q dot 6", lineText(got), got.Dot, "echo")
	}
}

// A ghost suggestion appears dim after the input and is replaced in place
// when the input diverges from it.
func TestTracker_Suggestion(t *testing.T) {
	sink := newOpsRecorder()
	tr := NewTracker(sink)
	tr.Reset("> ")

	tr.UpdateDisplay([]rune("b"), 1, "bake")
	got := sink.replay(2)
	if lineText(got) != "bake" {
		t.Errorf("screen shows %q, want %q", lineText(got), "bake")
	}
	// Cursor must sit at the end of the input, before the ghost.
	if got.Dot != 3 {
		t.Errorf("dot %v, want 3", got.Dot)
	}
	// The ghost tail is dim, the input is not.
	if got.Cells[0].Style != "" || got.Cells[1].Style != "2" {
		t.Errorf("styles %q %q, want \"\" and \"2\"",
			got.Cells[0].Style, got.Cells[1].Style)
	}

	// "bu" diverges from "bake" at the second cell: one clear, then the new
	// tail.
	tr.UpdateDisplay([]rune("bu"), 2, "build")
	got = sink.replay(2)
	if lineText(got) != "build" || got.Dot != 4 {
		t.Errorf("screen shows %q dot %v, want %q dot 4",
			lineText(got), got.Dot, "build")
	}
	if n := term.CountOp(sink.calls[1], term.ClearToEOL{}); n != 1 {
		t.Errorf("%d ClearToEOL ops in divergent update, want 1", n)
	}
}

// A short typing session against a heavyweight prompt: the prompt is
// written by the caller and never re-emitted, each update where the ghost
// tail changes costs exactly one clear, and the input region starts exactly
// at the prompt's visual width.
func TestTracker_TypingSession(t *testing.T) {
	prompt := "~/Code/krusty ⎇ main [●1○1] via 🧅 1.2.21❯ "

	sink := newOpsRecorder()
	tr := NewTracker(sink)
	tr.Reset(prompt)

	if tr.Base() != wcwidth.OfEscaped(prompt) {
		t.Errorf("base %v, want %v", tr.Base(), wcwidth.OfEscaped(prompt))
	}

	// An initial ghost on the empty input, then two keystrokes whose new
	// ghosts each diverge from what is on the screen.
	tr.UpdateDisplay(nil, 0, "burn")
	tr.UpdateDisplay([]rune("b"), 1, "bake")
	tr.UpdateDisplay([]rune("bu"), 2, "build")

	if n := sink.countOp(term.ClearToEOL{}); n != 2 {
		t.Errorf("%d ClearToEOL ops across the session, want 2", n)
	}
	for _, ops := range sink.calls {
		for _, op := range ops {
			if w, ok := op.(term.Write); ok {
				if strings.Contains(lineText(&term.Line{Cells: w.Cells}), prompt) {
					t.Errorf("prompt re-emitted in %v", op)
				}
			}
		}
	}
	got := sink.replay(tr.Base())
	if lineText(got) != "build" || got.Dot != tr.Base()+2 {
		t.Errorf("screen shows %q dot %v, want %q dot %v",
			lineText(got), got.Dot, "build", tr.Base()+2)
	}
}

// Backspacing rewrites only the part after the divergence point, never the
// surviving input.
func TestTracker_BackspaceRewritesTailOnly(t *testing.T) {
	sink := newOpsRecorder()
	tr := NewTracker(sink)
	tr.Reset("> ")

	tr.UpdateDisplay([]rune("bu"), 2, "")
	tr.UpdateDisplay([]rune("b"), 1, "bake")

	last := sink.calls[1]
	if n := term.CountOp(last, term.ClearToEOL{}); n != 1 {
		t.Errorf("%d ClearToEOL ops on backspace, want 1", n)
	}
	for _, op := range last {
		if w, ok := op.(term.Write); ok {
			if got := lineText(&term.Line{Cells: w.Cells}); got != "ake" {
				t.Errorf("rewrote %q, want only the suggestion tail %q", got, "ake")
			}
		}
	}
}

// A suggestion is only rendered when it extends the input and the cursor is
// at the end.
func TestTracker_SuggestionSuppressed(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		dot        int
		suggestion string
	}{
		{"cursor not at end", "bu", 1, "build"},
		{"not an extension", "bu", 2, "bake"},
		{"equal to input", "bu", 2, "bu"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sink := newOpsRecorder()
			tr := NewTracker(sink)
			tr.Reset("> ")
			tr.UpdateDisplay([]rune(test.raw), test.dot, test.suggestion)
			if got := sink.replay(2); lineText(got) != test.raw {
				t.Errorf("screen shows %q, want %q", lineText(got), test.raw)
			}
		})
	}
}

// Accepting a suggestion that is already on the screen must not repaint: the
// only difference is the style and the cursor.
func TestTracker_AcceptSuggestionIsPureMove(t *testing.T) {
	sink := newOpsRecorder()
	tr := NewTracker(sink)
	tr.Reset("> ")

	tr.UpdateDisplay([]rune("b"), 1, "bake")
	tr.UpdateDisplay([]rune("bake"), 4, "")

	accept := sink.calls[1]
	if n := term.CountOp(accept, term.ClearToEOL{}); n != 0 {
		t.Errorf("%d ClearToEOL ops on accept, want 0", n)
	}
	if n := term.CountOp(accept, term.Write{}); n != 0 {
		t.Errorf("%d Write ops on accept, want 0", n)
	}
	if got := sink.replay(2); lineText(got) != "bake" || got.Dot != 6 {
		t.Errorf("screen shows %q dot %v, want %q dot 6",
			lineText(got), got.Dot, "bake")
	}
}

func TestTracker_ClearToEmpty(t *testing.T) {
	sink := newOpsRecorder()
	tr := NewTracker(sink)
	tr.Reset("> ")

	tr.UpdateDisplay([]rune("x"), 1, "")
	tr.UpdateDisplay(nil, 0, "")

	last := sink.calls[1]
	if n := term.CountOp(last, term.Write{}); n != 0 {
		t.Errorf("%d Write ops when clearing to empty, want 0", n)
	}
	if got := sink.replay(2); lineText(got) != "" || got.Dot != 2 {
		t.Errorf("screen shows %q dot %v, want empty dot 2", lineText(got), got.Dot)
	}
}

func TestTracker_ClampsDot(t *testing.T) {
	sink := newOpsRecorder()
	tr := NewTracker(sink)
	tr.Reset("> ")

	if err := tr.UpdateDisplay([]rune("ab"), 99, ""); err != nil {
		t.Errorf("UpdateDisplay with out-of-range dot -> error %v", err)
	}
	if got := sink.replay(2); got.Dot != 4 {
		t.Errorf("dot %v, want clamped to 4", got.Dot)
	}
	if err := tr.UpdateDisplay([]rune("ab"), -1, ""); err != nil {
		t.Errorf("UpdateDisplay with negative dot -> error %v", err)
	}
	if got := sink.replay(2); got.Dot != 2 {
		t.Errorf("dot %v, want clamped to 2", got.Dot)
	}
}

// Styles embedded in the prompt must not count towards the base column.
func TestTracker_StyledPrompt(t *testing.T) {
	sink := newOpsRecorder()
	tr := NewTracker(sink)
	tr.Reset("\033[31m~\033[m> ")
	if tr.Base() != 3 {
		t.Errorf("base %v, want 3", tr.Base())
	}
}

func TestTracker_WriteFailureCancels(t *testing.T) {
	sink := newOpsRecorder()
	sink.failAfter = 0
	tr := NewTracker(sink)
	tr.Reset("> ")

	if err := tr.UpdateDisplay([]rune("x"), 1, ""); err == nil {
		t.Fatal("UpdateDisplay with failing sink -> nil error")
	}
	if tr.Phase() != Cancelled {
		t.Errorf("phase %v after write failure, want cancelled", tr.Phase())
	}
}

// Cancelling with a ghost on the screen flushes once to remove it.
func TestTracker_CancelClearsSuggestion(t *testing.T) {
	sink := newOpsRecorder()
	tr := NewTracker(sink)
	tr.Reset("> ")

	tr.UpdateDisplay([]rune("b"), 1, "bake")
	tr.Cancel([]rune("b"), 1)

	if tr.Phase() != Cancelled {
		t.Errorf("phase %v after Cancel, want cancelled", tr.Phase())
	}
	if got := sink.replay(2); lineText(got) != "b" {
		t.Errorf("screen shows %q after Cancel, want %q", lineText(got), "b")
	}
}
