package ui

// Styling specifies how to change a Style.
type Styling interface{ transform(*Style) }

// StyleText returns a new Text with the given stylings applied to every
// segment.
func StyleText(t Text, ts ...Styling) Text {
	res := make(Text, len(t))
	for i, seg := range t {
		res[i] = StyleSegment(seg, ts...)
	}
	return res
}

// StyleSegment returns a new Segment with the given stylings applied.
func StyleSegment(seg *Segment, ts ...Styling) *Segment {
	return &Segment{Style: ApplyStyling(seg.Style, ts...), Text: seg.Text}
}

// ApplyStyling applies the given stylings to a Style. Nil stylings are
// ignored.
func ApplyStyling(s Style, ts ...Styling) Style {
	for _, t := range ts {
		if t != nil {
			t.transform(&s)
		}
	}
	return s
}

// Stylings joins several stylings into one.
func Stylings(ts ...Styling) Styling {
	return funcStyling(func(s *Style) {
		*s = ApplyStyling(*s, ts...)
	})
}

// Fg returns a Styling that sets the foreground color.
func Fg(c Color) Styling {
	return funcStyling(func(s *Style) { s.Fg = c })
}

// Bg returns a Styling that sets the background color.
func Bg(c Color) Styling {
	return funcStyling(func(s *Style) { s.Bg = c })
}

// Stylings that set a boolean attribute of Style.
var (
	Bold       Styling = funcStyling(func(s *Style) { s.Bold = true })
	Dim        Styling = funcStyling(func(s *Style) { s.Dim = true })
	Italic     Styling = funcStyling(func(s *Style) { s.Italic = true })
	Underlined Styling = funcStyling(func(s *Style) { s.Underlined = true })
	Blink      Styling = funcStyling(func(s *Style) { s.Blink = true })
	Inverse    Styling = funcStyling(func(s *Style) { s.Inverse = true })
)

type funcStyling func(*Style)

func (f funcStyling) transform(s *Style) { f(s) }
