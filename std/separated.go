package std

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// Separated renders Items with Sep between consecutive items.
//
// Items must be re-iterable: ranging over it twice must yield the same
// elements without side effects. Sequences from [slices.Values] and
// [maps.Keys] qualify; a sequence draining a channel does not.
type Separated[Sep, T any] struct {
	Sep   Sep
	Items iter.Seq[T]
}

// SeparatedSlice returns a Separated over the elements of items.
func SeparatedSlice[Sep, T any](sep Sep, items []T) Separated[Sep, T] {
	return Separated[Sep, T]{Sep: sep, Items: slices.Values(items)}
}

// Format implements [fmt.Formatter].
func (s Separated[Sep, T]) Format(f fmt.State, verb rune) {
	if s.Items == nil {
		return
	}
	directive := elemVerb(f, verb)
	first := true
	for item := range s.Items {
		if !first {
			fmt.Fprintf(f, directive, s.Sep)
		}
		first = false
		fmt.Fprintf(f, directive, item)
	}
}

// String returns the %v rendering.
func (s Separated[Sep, T]) String() string {
	return fmt.Sprint(s)
}

// WriteTo writes the %v rendering to w and stops at the first write error.
func (s Separated[Sep, T]) WriteTo(w io.Writer) (int64, error) {
	var cw countingWriter
	if s.Items == nil {
		return 0, nil
	}
	first := true
	for item := range s.Items {
		if !first {
			if err := cw.add(fmt.Fprint(w, s.Sep)); err != nil {
				return cw.n, err
			}
		}
		first = false
		if err := cw.add(fmt.Fprint(w, item)); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}
