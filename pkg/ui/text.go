package ui

import (
	"strings"

	"corvid.sh/pkg/wcwidth"
)

// Text consists of a list of styled Segments.
type Text []*Segment

// T constructs a new Text with the given content and the given Stylings
// applied.
func T(s string, ts ...Styling) Text {
	return StyleText(Text{&Segment{Text: s}}, ts...)
}

// Concat concatenates several Texts into one.
func Concat(texts ...Text) Text {
	var res Text
	for _, t := range texts {
		res = append(res, t...)
	}
	return res
}

// Clone returns a deep copy of the Text.
func (t Text) Clone() Text {
	res := make(Text, len(t))
	for i, seg := range t {
		res[i] = seg.Clone()
	}
	return res
}

// String returns the unstyled content of the Text.
func (t Text) String() string {
	var sb strings.Builder
	for _, seg := range t {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Width returns the total visual width of the Text in columns.
func (t Text) Width() int {
	w := 0
	for _, seg := range t {
		w += wcwidth.Of(seg.Text)
	}
	return w
}

// VTString renders the Text using VT100 SGR sequences.
func (t Text) VTString() string {
	var sb strings.Builder
	for _, seg := range t {
		sb.WriteString(seg.VTString())
	}
	return sb.String()
}
