//go:build linux

package term

import (
	"io"
	"testing"
	"time"

	"github.com/creack/pty"
)

// Exercises the writer against a real pty device, so that encoding goes
// through the tty write path rather than an in-memory buffer.
func TestWriter_TTY(t *testing.T) {
	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptm.Close()
	defer pts.Close()

	outCh := make(chan string, 1)
	go func() {
		buf := make([]byte, 256)
		n, err := ptm.Read(buf)
		if err != nil && err != io.EOF {
			outCh <- ""
			return
		}
		outCh <- string(buf[:n])
	}()

	w := NewWriter(pts)
	if err := w.WriteOps([]Op{MoveCursor{2}, ClearToEOL{}, Write{cells("ok")}}); err != nil {
		t.Fatalf("WriteOps -> error %v", err)
	}

	select {
	case out := <-outCh:
		want := hideCursor + "\033[3G\033[K" + "ok" + showCursor
		if out != want {
			t.Errorf("tty received %q, want %q", out, want)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out reading from pty")
	}
}
