package term

import (
	"errors"
	"strings"
	"testing"

	"corvid.sh/pkg/ui"
)

func TestWriter(t *testing.T) {
	sb := &strings.Builder{}
	testOutput := func(want string) {
		t.Helper()
		if sb.String() != want {
			t.Errorf("got %q, want %q", sb.String(), want)
		}
		sb.Reset()
	}

	w := NewWriter(sb)

	w.WriteOps([]Op{Write{cells("abc")}})
	testOutput(hideCursor + "abc" + showCursor)

	w.WriteOps([]Op{MoveCursor{4}, ClearToEOL{}, Write{cells("de")}})
	testOutput(hideCursor + "\033[5G\033[K" + "de" + showCursor)

	w.WriteOps([]Op{Write{cells("x", ui.Dim)}})
	testOutput(hideCursor + "\033[0;2mx\033[0;m" + showCursor)

	// Adjacent cells with the same style switch style once.
	w.WriteOps([]Op{Write{cells("ab", ui.Fg(ui.Red))}})
	testOutput(hideCursor + "\033[0;31mab\033[0;m" + showCursor)
}

func TestWriter_EmptyOps(t *testing.T) {
	sb := &strings.Builder{}
	NewWriter(sb).WriteOps(nil)
	if sb.String() != "" {
		t.Errorf("WriteOps(nil) wrote %q, want nothing", sb.String())
	}
}

// The writer must confine itself to the input region: absolute column moves
// and erase-to-end-of-line, never carriage return or whole-line erase, which
// would clobber the prompt.
func TestWriter_NeverTouchesPrompt(t *testing.T) {
	sb := &strings.Builder{}
	w := NewWriter(sb)
	w.WriteOps([]Op{
		MoveCursor{0}, ClearToEOL{}, Write{cells("echo", ui.Fg(ui.Green))},
		MoveCursor{2},
	})
	out := sb.String()
	for _, forbidden := range []string{"\r", "\033[2K", "\033[1K", "\033[2J"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("output %q contains forbidden sequence %q", out, forbidden)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("tty gone")
}

func TestWriter_PropagatesError(t *testing.T) {
	w := NewWriter(failingWriter{})
	if err := w.WriteOps([]Op{Write{cells("a")}}); err == nil {
		t.Errorf("WriteOps on failing output -> nil error")
	}
}
