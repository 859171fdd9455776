package term

import (
	"bytes"
	"fmt"
	"io"

	"corvid.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[term] ")

var logWriterDetail = false

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Writer encodes render operations into escape sequences on a terminal
// stream.
type Writer interface {
	// WriteOps encodes the given operations and sends them to the terminal
	// in a single write.
	WriteOps(ops []Op) error
}

// NewWriter returns a Writer that writes VT100 sequences to out.
func NewWriter(out io.Writer) Writer {
	return &writer{out}
}

type writer struct {
	out io.Writer
}

// WriteOps encodes cursor moves as absolute-column moves (CSI G) and erases
// with the erase-to-end-of-line sequence (CSI K), so the region before the
// base column - the prompt - is never touched.
func (w *writer) WriteOps(ops []Op) error {
	if len(ops) == 0 {
		return nil
	}

	// Collect everything in a buffer so the terminal sees one write per
	// update. Hide the cursor while the update happens to minimize
	// flickering.
	buf := new(bytes.Buffer)
	buf.WriteString(hideCursor)

	// Style of the last written cell.
	style := ""
	switchStyle := func(newStyle string) {
		if newStyle != style {
			fmt.Fprintf(buf, "\033[0;%sm", newStyle)
			style = newStyle
		}
	}

	for _, op := range ops {
		switch op := op.(type) {
		case MoveCursor:
			fmt.Fprintf(buf, "\033[%dG", op.Col+1)
		case ClearToEOL:
			switchStyle("")
			buf.WriteString("\033[K")
		case Write:
			for _, c := range op.Cells {
				switchStyle(c.Style)
				buf.WriteString(c.Text)
			}
		}
	}
	switchStyle("")
	buf.WriteString(showCursor)

	if logWriterDetail {
		logger.Printf("going to write %q", buf.String())
	}

	_, err := w.out.Write(buf.Bytes())
	return err
}
