// Package fast implements the formatting combinators on a streaming-write
// protocol with size estimation.
//
// A value renders itself by implementing [Fmter]. Values that do not, such
// as strings, numbers, and [Char], are leaves: they are rendered by the
// [Strategy] passed to every call. The strategy is the only knob for how
// leaves look; the combinators never inspect or change it.
//
//	var buf bytes.Buffer
//	out := fast.FmtToClearedBuffer(&buf, fast.SeparatedSlice(", ", ids), fast.Display{})
//
// # Size Hints
//
// Every [Fmter] reports a SizeHint: an estimate of its rendered length in
// bytes. The buffer helpers grow their destination by the hint before
// writing. A wrong hint costs an extra allocation, never correctness.
//
// # Strategies
//
//   - [Display] — plain text, the same as %v (the default)
//   - [Debug] — Go syntax, the same as %#v
//   - [JSON] — compact JSON per leaf
//   - [YAML] — single-line YAML flow node per leaf
//   - [HTML] — Display output, HTML-escaped
//
// Use [ParseStrategy] to pick one from a flag value.
//
// # Errors
//
// Errors from the destination or a leaf stop rendering and are returned
// unchanged. [FmtToNewString] and [FmtToClearedBuffer] write to memory and
// cannot fail; they panic if rendering returns an error anyway.
package fast
