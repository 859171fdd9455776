package ui

import (
	"fmt"
	"strings"
)

// Key represents a single keyboard input, typically assembled from a rune
// and a modifier mask.
type Key struct {
	Rune rune
	Mod  Mod
}

// K constructs a new Key from a rune and modifiers.
func K(r rune, mods ...Mod) Key {
	var mod Mod
	for _, m := range mods {
		mod |= m
	}
	return Key{r, mod}
}

// Mod represents a modifier key.
type Mod byte

// Values for Mod.
const (
	Shift Mod = 1 << iota
	Alt
	Ctrl
)

// Special negative runes to represent function keys, used in the Rune field
// of Key.
const (
	F1 rune = -iota - 1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Up
	Down
	Right
	Left

	Home
	Insert
	Delete
	End
	PageUp
	PageDown
)

// Aliases for control characters that have dedicated keys.
const (
	Tab       = '\t'
	Enter     = '\n'
	Backspace = 0x7f
)

var keyNames = map[rune]string{
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	Up: "Up", Down: "Down", Right: "Right", Left: "Left",
	Home: "Home", Insert: "Insert", Delete: "Delete", End: "End",
	PageUp: "PageUp", PageDown: "PageDown",
	Tab: "Tab", Enter: "Enter", Backspace: "Backspace",
}

func (k Key) String() string {
	var sb strings.Builder
	if k.Mod&Ctrl != 0 {
		sb.WriteString("Ctrl-")
	}
	if k.Mod&Alt != 0 {
		sb.WriteString("Alt-")
	}
	if k.Mod&Shift != 0 {
		sb.WriteString("Shift-")
	}
	if name, ok := keyNames[k.Rune]; ok {
		sb.WriteString(name)
	} else if k.Rune > 0 {
		sb.WriteRune(k.Rune)
	} else {
		fmt.Fprintf(&sb, "(bad function key %d)", k.Rune)
	}
	return sb.String()
}

// ParseKey parses a textual key representation, like "a", "Tab" or
// "Ctrl-Alt-x". Modifier names are case-insensitive; '+' may be used in
// place of '-' as the separator.
func ParseKey(s string) (Key, error) {
	var k Key
	// Parse modifiers.
	for {
		i := strings.IndexAny(s, "-+")
		if i == -1 || i == len(s)-1 {
			break
		}
		switch strings.ToLower(s[:i]) {
		case "s", "shift":
			k.Mod |= Shift
		case "a", "alt", "m", "meta":
			k.Mod |= Alt
		case "c", "ctrl":
			k.Mod |= Ctrl
		default:
			return Key{}, fmt.Errorf("bad modifier: %s", s[:i])
		}
		s = s[i+1:]
	}

	if rs := []rune(s); len(rs) == 1 {
		k.Rune = rs[0]
		if k.Mod&Ctrl != 0 {
			// Ctrl-letter keys are case-insensitive; normalize Ctrl-I and
			// Ctrl-J to Tab and Enter.
			switch {
			case k.Rune == 'i' || k.Rune == 'I':
				return K(Tab), nil
			case k.Rune == 'j' || k.Rune == 'J':
				return K(Enter), nil
			case 'a' <= k.Rune && k.Rune <= 'z':
				k.Rune += 'A' - 'a'
			}
		}
		return k, nil
	}
	for r, name := range keyNames {
		if name == s {
			k.Rune = r
			return k, nil
		}
	}
	return Key{}, fmt.Errorf("bad key: %s", s)
}
