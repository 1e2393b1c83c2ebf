// Package std implements the formatting combinators on top of the fmt
// package's own protocol.
//
// [Separated] and [Repeated] implement [fmt.Formatter], [fmt.Stringer], and
// [io.WriterTo], so they can be passed straight to fmt.Printf, used with %v
// in log lines, or written to any [io.Writer]:
//
//	fmt.Println(std.SeparatedSlice(", ", []string{"a", "b", "c"})) // a, b, c
//	fmt.Println(std.Repeated[string]{Value: "ab", Count: 2})     // abab
//
// # Verbs
//
// The verb used to print a combinator is applied to every element, along
// with the '+', '#', and ' ' flags. Width and precision are dropped.
// Printing runes with %c therefore prints characters:
//
//	fmt.Printf("%c", std.SeparatedSlice(',', []rune("abc"))) // a,b,c
//
// Use [Char] when a rune should print as a character under %v.
//
// # Errors
//
// Errors from the destination are returned unchanged by fmt.Fprint and
// WriteTo. Nothing is rolled back: output written before the failure stays
// written.
package std
