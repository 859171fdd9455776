package term

import (
	"github.com/rivo/uniseg"

	"corvid.sh/pkg/ui"
	"corvid.sh/pkg/wcwidth"
)

// Cell is an indivisible unit on the screen: one grapheme cluster along with
// its style. It is not necessarily 1 column wide.
type Cell struct {
	Text  string
	Style string // SGR parameters, without the CSI prefix and the final 'm'
}

// Line reflects the input region of one terminal row: the cells starting at
// some base column, and the absolute column of the cursor ("dot").
//
// The Unix terminal API provides only awkward ways of querying what is on
// the screen, so we keep this reflection and synchronize one way only (Line
// -> terminal, never the other way around).
type Line struct {
	Base  int
	Cells []Cell
	Dot   int
}

// CellsOfText splits styled text into cells, one grapheme cluster each.
func CellsOfText(t ui.Text) []Cell {
	var cells []Cell
	for _, seg := range t {
		style := seg.SGR()
		g := uniseg.NewGraphemes(seg.Text)
		for g.Next() {
			cells = append(cells, Cell{g.Str(), style})
		}
	}
	return cells
}

// CellsWidth returns the total width of a Cell slice.
func CellsWidth(cs []Cell) int {
	w := 0
	for _, c := range cs {
		w += wcwidth.Of(c.Text)
	}
	return w
}

// EndCol returns the column just after the last cell.
func (l *Line) EndCol() int { return l.Base + CellsWidth(l.Cells) }

// Clone returns a copy of the Line that shares no state with the original.
func (l *Line) Clone() *Line {
	return &Line{l.Base, append([]Cell(nil), l.Cells...), l.Dot}
}

// Returns the length of the longest common prefix of two Cell slices,
// comparing cell text only. Styles are deliberately ignored: a style-only
// change does not warrant a repaint.
func commonPrefix(c1, c2 []Cell) int {
	for i, c := range c1 {
		if i >= len(c2) || c.Text != c2[i].Text {
			return i
		}
	}
	return len(c1)
}

// Returns the index of the cell that starts at the given column, or the
// index just past the cells that fit before it.
func (l *Line) cellIndexAt(col int) int {
	c := l.Base
	for i, cell := range l.Cells {
		if c >= col {
			return i
		}
		c += wcwidth.Of(cell.Text)
	}
	return len(l.Cells)
}
