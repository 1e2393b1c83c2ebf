package fast

import "unicode/utf8"

// Char is a rune that renders as its character. A bare rune is an int32 and
// renders as a number, the same as with %v.
type Char rune

// String returns the character as a string.
func (c Char) String() string { return string(c) }

// Raw is text written verbatim under every strategy. Use it for separators
// and punctuation around leaves rendered by [JSON] or [YAML]:
//
//	fast.Separated[fast.Raw, string]{Sep: ", ", Items: slices.Values(names)}
type Raw string

// Fmt implements [Fmter].
func (r Raw) Fmt(w Writer, _ Strategy) error {
	_, err := w.WriteString(string(r))
	return err
}

// SizeHint implements [Fmter].
func (r Raw) SizeHint(Strategy) int { return len(r) }

// runeLen matches what WriteRune writes, including the replacement
// character for invalid runes.
func runeLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

func uintLen(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}

func intLen(i int64) int {
	if i < 0 {
		return 1 + uintLen(uint64(-(i+1))+1)
	}
	return uintLen(uint64(i))
}
