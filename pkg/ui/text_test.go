package ui

import (
	"testing"

	"corvid.sh/pkg/tt"
)

func TestT(t *testing.T) {
	text := T("ls -l", Dim)
	if len(text) != 1 {
		t.Fatalf("T returned %d segments, want 1", len(text))
	}
	if text[0].Text != "ls -l" || !text[0].Style.Dim {
		t.Errorf("T did not apply styling: %+v", text[0])
	}
}

func TestTextString(t *testing.T) {
	text := Concat(T("abc", Bold), T("好", Fg(Red)))
	if s := text.String(); s != "abc好" {
		t.Errorf("String() = %q, want %q", s, "abc好")
	}
}

func TestTextWidth(t *testing.T) {
	tt.Test(t, Text.Width,
		tt.Args(Text(nil)).Rets(0),
		tt.Args(T("abc")).Rets(3),
		tt.Args(T("你好", Bold)).Rets(4),
		tt.Args(Concat(T("a"), T("好", Dim))).Rets(3),
	)
}

func TestTextVTString(t *testing.T) {
	tt.Test(t, Text.VTString,
		tt.Args(T("foo")).Rets("foo"),
		tt.Args(T("foo", Bold)).Rets("\033[1mfoo\033[m"),
		tt.Args(T("foo", Dim)).Rets("\033[2mfoo\033[m"),
		tt.Args(T("foo", Fg(Red))).Rets("\033[31mfoo\033[m"),
		tt.Args(T("foo", Bg(Blue))).Rets("\033[44mfoo\033[m"),
		tt.Args(T("foo", Bold, Fg(BrightCyan))).Rets("\033[1;96mfoo\033[m"),
		tt.Args(T("foo", Fg(XTerm256Color(160)))).Rets("\033[38;5;160mfoo\033[m"),
	)
}

func TestApplyStyling(t *testing.T) {
	s := ApplyStyling(Style{}, Stylings(Bold, Inverse), nil)
	if !s.Bold || !s.Inverse {
		t.Errorf("ApplyStyling did not apply stylings: %+v", s)
	}
}

func TestSegmentClone(t *testing.T) {
	seg := &Segment{Style{Bold: true}, "x"}
	clone := seg.Clone()
	clone.Text = "y"
	if seg.Text != "x" {
		t.Errorf("Clone did not copy the segment")
	}
}
