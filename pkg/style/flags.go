package style

import (
	"strings"
	"unicode"
)

// Flags is the set of press interactions enabled on a control.
type Flags uint8

const (
	// FlagShrink scales the control down while pressed.
	FlagShrink Flags = 1 << iota
	// FlagDim darkens the fill while pressed.
	FlagDim
	// FlagGlow brightens the fill while pressed.
	FlagGlow
	// FlagVibe emits a haptic pulse on long press.
	FlagVibe
	// FlagPop bounces a label up and back on long press.
	FlagPop
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagShrink, "shrink"},
	{FlagDim, "dim"},
	{FlagGlow, "glow"},
	{FlagVibe, "vibe"},
	{FlagPop, "pop"},
}

// Has reports whether every flag in f is set.
func (fs Flags) Has(f Flags) bool {
	return fs&f == f
}

// String lists the set flags separated by spaces.
func (fs Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if fs.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, " ")
}

// ParseFlags tokenizes an interaction string on any non-letter character
// and returns the recognized flags plus the tokens it did not recognize.
// Matching is case-insensitive; order and repetition do not matter.
func ParseFlags(raw string) (Flags, []string) {
	var fs Flags
	var unknown []string
	tokens := strings.FieldsFunc(raw, func(r rune) bool { return !unicode.IsLetter(r) })
	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		matched := false
		for _, fn := range flagNames {
			if tok == fn.name {
				fs |= fn.flag
				matched = true
				break
			}
		}
		if !matched {
			unknown = append(unknown, tok)
		}
	}
	return fs, unknown
}
