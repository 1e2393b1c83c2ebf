package fast

import (
	"iter"
	"slices"
)

// Separated renders Items with Sep between consecutive items.
//
// Items is ranged over once by SizeHint and once by Fmt, so it must be
// re-iterable without side effects. Sequences from [slices.Values] qualify;
// a sequence draining a channel does not.
type Separated[Sep, T any] struct {
	Sep   Sep
	Items iter.Seq[T]
}

// SeparatedSlice returns a Separated over the elements of items.
func SeparatedSlice[Sep, T any](sep Sep, items []T) Separated[Sep, T] {
	return Separated[Sep, T]{Sep: sep, Items: slices.Values(items)}
}

// Fmt implements [Fmter].
func (s Separated[Sep, T]) Fmt(w Writer, st Strategy) error {
	if s.Items == nil {
		return nil
	}
	first := true
	for item := range s.Items {
		if !first {
			if err := WriteValue(w, s.Sep, st); err != nil {
				return err
			}
		}
		first = false
		if err := WriteValue(w, item, st); err != nil {
			return err
		}
	}
	return nil
}

// SizeHint implements [Fmter]. It is the sum of the item hints plus one
// separator hint per gap between items.
func (s Separated[Sep, T]) SizeHint(st Strategy) int {
	if s.Items == nil {
		return 0
	}
	n, gaps := 0, -1
	for item := range s.Items {
		n += SizeHintOf(item, st)
		gaps++
	}
	if gaps > 0 {
		n += SizeHintOf(s.Sep, st) * gaps
	}
	return n
}

// String renders with [Display].
func (s Separated[Sep, T]) String() string {
	return FmtToNewString(s, Display{})
}
