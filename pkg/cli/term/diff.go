package term

// DiffLines computes the operations needed to turn the terminal row
// reflected by prev into next. It is a pure function; the caller is
// responsible for writing the operations and remembering next.
//
// The diff compares cell text by grapheme cluster and finds the longest
// common prefix. When prev is a prefix of next, the remainder is simply
// written; otherwise the cursor moves to the first differing column, the
// rest of the row is erased once, and the remainder of next is written. A
// final cursor move is added when the dot of next is not where the written
// text left the cursor. At most one ClearToEOL is ever produced.
func DiffLines(prev, next *Line) []Op {
	var ops []Op
	cur := prev.Dot

	p := commonPrefix(prev.Cells, next.Cells)
	if p == len(prev.Cells) {
		// Pure append (or no text change at all).
		if p < len(next.Cells) {
			if end := prev.EndCol(); cur != end {
				ops = append(ops, MoveCursor{end})
				cur = end
			}
			rest := next.Cells[p:]
			ops = append(ops, Write{rest})
			cur += CellsWidth(rest)
		}
	} else {
		col := next.Base + CellsWidth(next.Cells[:p])
		ops = append(ops, MoveCursor{col}, ClearToEOL{})
		cur = col
		if p < len(next.Cells) {
			rest := next.Cells[p:]
			ops = append(ops, Write{rest})
			cur += CellsWidth(rest)
		}
	}

	if cur != next.Dot {
		ops = append(ops, MoveCursor{next.Dot})
	}
	return ops
}
