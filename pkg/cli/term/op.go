package term

// Op is a render operation, produced by DiffLines and consumed by a Writer.
// It is one of MoveCursor, ClearToEOL and Write.
type Op interface{ isOp() }

// MoveCursor moves the cursor to an absolute column on the current row.
type MoveCursor struct{ Col int }

// ClearToEOL erases from the cursor to the end of the row.
type ClearToEOL struct{}

// Write writes cells at the cursor, advancing it.
type Write struct{ Cells []Cell }

func (MoveCursor) isOp() {}
func (ClearToEOL) isOp() {}
func (Write) isOp()      {}

// Apply replays ops on a copy of line and returns the result. It implements
// just enough terminal behavior for the operations DiffLines produces:
// absolute column moves, erasing to the end of the row, and writes landing
// on cell boundaries. Tests use it to verify that emitted operations
// reproduce the intended screen content.
func Apply(line *Line, ops ...Op) *Line {
	res := line.Clone()
	for _, op := range ops {
		switch op := op.(type) {
		case MoveCursor:
			res.Dot = op.Col
		case ClearToEOL:
			res.Cells = res.Cells[:res.cellIndexAt(res.Dot)]
		case Write:
			res.Cells = append(res.Cells[:res.cellIndexAt(res.Dot)], op.Cells...)
			res.Dot += CellsWidth(op.Cells)
		}
	}
	return res
}

// CountOp returns how many of the given ops are of the same kind as op.
func CountOp(ops []Op, op Op) int {
	n := 0
	for _, o := range ops {
		switch op.(type) {
		case MoveCursor:
			if _, ok := o.(MoveCursor); ok {
				n++
			}
		case ClearToEOL:
			if _, ok := o.(ClearToEOL); ok {
				n++
			}
		case Write:
			if _, ok := o.(Write); ok {
				n++
			}
		}
	}
	return n
}
