// Package fmtutil provides formatting combinators: small values that
// describe how to render a sequence of values as text.
//
//   - [Separated] renders items with a separator between consecutive items
//   - [Repeated] renders one value a fixed number of times
//   - [Rule] sizes a Repeated to fill a number of terminal columns
//
// The combinators are plain structs. Build one per render; they hold no
// buffers and never keep a reference to their destination.
//
//	fmt.Println(fmtutil.SeparatedSlice(", ", []string{"a", "b", "c"})) // a, b, c
//	fmt.Println(fmtutil.Repeated[string]{Value: "ab", Count: 2})     // abab
//
// # Backends
//
// Two implementations exist, and this package re-exports one of them:
//
//   - [github.com/bjaus/fmtutil/std] — the fmt package's protocol:
//     fmt.Formatter, fmt.Stringer, and io.WriterTo. This is the default.
//   - [github.com/bjaus/fmtutil/fast] — a streaming protocol with size
//     hints and pluggable strategies, plus buffer helpers that render into a
//     new string or a reused [bytes.Buffer].
//
// Build with -tags fastfmt to make the fast backend the default surface:
//
//	go build -tags fastfmt ./...
//
// Both packages can also be imported directly, independent of the tag.
//
// # Sequences
//
// Separated takes its items as an [iter.Seq]. The sequence may be ranged
// over more than once per render, so it must be re-iterable: use
// [slices.Values] (or [SeparatedSlice]), not a sequence draining a channel.
package fmtutil
