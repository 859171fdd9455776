// Package wcwidth provides utilities for computing the visual width of text
// on the terminal.
//
// Widths follow the usual terminal convention: East Asian wide glyphs and
// emoji occupy 2 columns, zero-width and combining marks occupy 0, and
// everything else, including unrecognized runes, occupies 1. Width
// computation never fails.
package wcwidth

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var (
	overrideMutex sync.RWMutex
	overrides     map[rune]int
)

// OfRune returns the width of a rune.
func OfRune(r rune) int {
	if w, ok := overrideFor(r); ok {
		return w
	}
	return runewidth.RuneWidth(r)
}

// Of returns the width of a string, treating each grapheme cluster as an
// indivisible unit.
func Of(s string) int {
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w += clusterWidth(g)
	}
	return w
}

// OfEscaped is like Of, but ignores ANSI escape sequences embedded in s. An
// unterminated escape sequence swallows the rest of the string.
func OfEscaped(s string) int {
	w := 0
	for s != "" {
		i := strings.IndexByte(s, '\033')
		if i == -1 {
			return w + Of(s)
		}
		w += Of(s[:i])
		s = s[skipEscape(s, i):]
	}
	return w
}

// ColumnAt returns the column at which the rune at index i starts, when rs
// is written starting from column 0. The index is clamped to [0, len(rs)].
func ColumnAt(rs []rune, i int) int {
	if i < 0 {
		i = 0
	}
	if i > len(rs) {
		i = len(rs)
	}
	return Of(string(rs[:i]))
}

// Override overrides the width of a rune to be a custom value. A negative
// width removes the override.
func Override(r rune, w int) {
	overrideMutex.Lock()
	defer overrideMutex.Unlock()
	if w < 0 {
		delete(overrides, r)
		return
	}
	if overrides == nil {
		overrides = make(map[rune]int)
	}
	overrides[r] = w
}

// Unoverride removes the width override of a rune.
func Unoverride(r rune) { Override(r, -1) }

// Trim trims the string to the given maximum width, dropping any trailing
// grapheme cluster that does not fit entirely.
func Trim(s string, wmax int) string {
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w += clusterWidth(g)
		if w > wmax {
			from, _ := g.Positions()
			return s[:from]
		}
	}
	return s
}

// Force trims the string to the given width, and pads it with spaces when it
// falls short.
func Force(s string, w int) string {
	s = Trim(s, w)
	if sw := Of(s); sw < w {
		return s + strings.Repeat(" ", w-sw)
	}
	return s
}

// TrimEachLine trims each line of s to the given maximum width.
func TrimEachLine(s string, w int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Trim(line, w)
	}
	return strings.Join(lines, "\n")
}

func clusterWidth(g *uniseg.Graphemes) int {
	if rs := g.Runes(); len(rs) == 1 {
		if w, ok := overrideFor(rs[0]); ok {
			return w
		}
	}
	return g.Width()
}

func overrideFor(r rune) (int, bool) {
	overrideMutex.RLock()
	defer overrideMutex.RUnlock()
	w, ok := overrides[r]
	return w, ok
}

// skipEscape returns the index just past the escape sequence starting at
// s[i], which must be ESC. CSI and OSC sequences are skipped to their
// terminator; any other sequence is taken to be two bytes long.
func skipEscape(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}
	switch s[i+1] {
	case '[':
		for j := i + 2; j < len(s); j++ {
			if '@' <= s[j] && s[j] <= '~' {
				return j + 1
			}
		}
		return len(s)
	case ']':
		for j := i + 2; j < len(s); j++ {
			if s[j] == '\a' {
				return j + 1
			}
			if s[j] == '\033' && j+1 < len(s) && s[j+1] == '\\' {
				return j + 2
			}
		}
		return len(s)
	default:
		return i + 2
	}
}
