package wcwidth

import (
	"testing"

	"corvid.sh/pkg/tt"
)

var Args = tt.Args

func TestOf(t *testing.T) {
	tt.Test(t, Of,
		Args("́").Rets(0), // Combining acute accent
		Args("a").Rets(1),
		Args("Ω").Rets(1),
		Args("好").Rets(2),
		Args("か").Rets(2),
		Args("🧅").Rets(2),

		Args("abc").Rets(3),
		Args("你好").Rets(4),
		Args("é").Rets(1), // é as a cluster
	)
}

func TestOfEscaped(t *testing.T) {
	tt.Test(t, OfEscaped,
		Args("").Rets(0),
		Args("abc").Rets(3),
		// SGR sequences contribute nothing.
		Args("\033[31mabc\033[m").Rets(3),
		Args("\033[1;34m你好\033[0m!").Rets(5),
		// OSC window-title sequence, BEL- and ST-terminated.
		Args("\033]0;title\aabc").Rets(3),
		Args("\033]0;title\033\\abc").Rets(3),
		// Unterminated sequence swallows the rest.
		Args("abc\033[12").Rets(3),
		// Wide glyphs and escapes mixed.
		Args("a\033[33m🧅\033[mb").Rets(4),
	)
}

func TestColumnAt(t *testing.T) {
	rs := []rune("a你b")
	tt.Test(t, ColumnAt,
		Args(rs, 0).Rets(0),
		Args(rs, 1).Rets(1),
		Args(rs, 2).Rets(3),
		Args(rs, 3).Rets(4),
		// Out-of-range indices are clamped.
		Args(rs, -1).Rets(0),
		Args(rs, 10).Rets(4),
	)
}

func TestOverride(t *testing.T) {
	r := '❱'
	oldw := OfRune(r)
	w := oldw + 1

	Override(r, w)
	if OfRune(r) != w {
		t.Errorf("OfRune(%q) != %d after Override", r, w)
	}
	if Of(string(r)) != w {
		t.Errorf("Of(%q) != %d after Override", string(r), w)
	}
	Unoverride(r)
	if OfRune(r) != oldw {
		t.Errorf("OfRune(%q) != %d after Unoverride", r, oldw)
	}
}

func TestOverride_NegativeWidthRemovesOverride(t *testing.T) {
	Override('x', 2)
	Override('x', -1)
	if OfRune('x') != 1 {
		t.Errorf("Override with negative width did not remove override")
	}
}

func TestConcurrentOverride(t *testing.T) {
	go Override('x', 2)
	_ = OfRune('x')
}

func TestTrim(t *testing.T) {
	tt.Test(t, Trim,
		Args("abc", 1).Rets("a"),
		Args("abc", 2).Rets("ab"),
		Args("abc", 3).Rets("abc"),
		Args("abc", 4).Rets("abc"),

		Args("你好", 1).Rets(""),
		Args("你好", 2).Rets("你"),
		Args("你好", 3).Rets("你"),
		Args("你好", 4).Rets("你好"),
		Args("你好", 5).Rets("你好"),
	)
}

func TestForce(t *testing.T) {
	tt.Test(t, Force,
		// Trimming
		Args("abc", 2).Rets("ab"),
		Args("你好", 2).Rets("你"),
		// Padding
		Args("abc", 4).Rets("abc "),
		Args("你好", 5).Rets("你好 "),
		// Trimming and padding
		Args("你好", 3).Rets("你 "),
	)
}

func TestTrimEachLine(t *testing.T) {
	tt.Test(t, TrimEachLine,
		Args("abcdefg\n你好", 3).Rets("abc\n你"),
	)
}
