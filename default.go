//go:build !fastfmt

package fmtutil

import "github.com/bjaus/fmtutil/std"

// Separated renders Items with Sep between consecutive items.
// See [std.Separated].
type Separated[Sep, T any] = std.Separated[Sep, T]

// Repeated renders Value Count times. See [std.Repeated].
type Repeated[T any] = std.Repeated[T]

// Char is a rune that renders as its character.
type Char = std.Char

// Backend names the package behind the default surface.
const Backend = "std"

// SeparatedSlice returns a Separated over the elements of items.
func SeparatedSlice[Sep, T any](sep Sep, items []T) Separated[Sep, T] {
	return std.SeparatedSlice(sep, items)
}
