//go:build fastfmt

package fmtutil

import (
	"bytes"
	"io"

	"github.com/bjaus/fmtutil/fast"
)

// Separated renders Items with Sep between consecutive items.
// See [fast.Separated].
type Separated[Sep, T any] = fast.Separated[Sep, T]

// Repeated renders Value Count times. See [fast.Repeated].
type Repeated[T any] = fast.Repeated[T]

// Char is a rune that renders as its character.
type Char = fast.Char

// Backend names the package behind the default surface.
const Backend = "fast"

// Fmter is implemented by values that render themselves. See [fast.Fmter].
type Fmter = fast.Fmter

// Writer is the destination a value renders into. See [fast.Writer].
type Writer = fast.Writer

// Strategy renders leaf values. See [fast.Strategy].
type Strategy = fast.Strategy

// Raw is text written verbatim under every strategy.
type Raw = fast.Raw

// Display renders leaves as plain text, the same as %v.
type Display = fast.Display

// Debug renders leaves as Go syntax, the same as %#v.
type Debug = fast.Debug

// JSON renders each leaf as compact JSON.
type JSON = fast.JSON

// YAML renders each leaf as a single-line YAML node.
type YAML = fast.YAML

// HTML renders leaves as Display does, HTML-escaped.
type HTML = fast.HTML

// ErrUnsupportedStrategy is returned by [ParseStrategy] for unknown names.
var ErrUnsupportedStrategy = fast.ErrUnsupportedStrategy

// SeparatedSlice returns a Separated over the elements of items.
func SeparatedSlice[Sep, T any](sep Sep, items []T) Separated[Sep, T] {
	return fast.SeparatedSlice(sep, items)
}

// WriteValue renders v to w. See [fast.WriteValue].
func WriteValue[V any](w Writer, v V, s Strategy) error {
	return fast.WriteValue(w, v, s)
}

// SizeHintOf estimates the rendered length of v in bytes.
func SizeHintOf[V any](v V, s Strategy) int {
	return fast.SizeHintOf(v, s)
}

// FmtToNewString renders v into a new string. See [fast.FmtToNewString].
func FmtToNewString[V any](v V, s Strategy) string {
	return fast.FmtToNewString(v, s)
}

// FmtToClearedBuffer empties buf and renders v into it.
// See [fast.FmtToClearedBuffer].
func FmtToClearedBuffer[V any](buf *bytes.Buffer, v V, s Strategy) []byte {
	return fast.FmtToClearedBuffer(buf, v, s)
}

// Fprint renders v to w. See [fast.Fprint].
func Fprint[V any](w io.Writer, v V, s Strategy) error {
	return fast.Fprint(w, v, s)
}

// ParseStrategy returns the built-in strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	return fast.ParseStrategy(name)
}

// StrategyNames returns the names recognized by [ParseStrategy].
func StrategyNames() []string {
	return fast.StrategyNames()
}
