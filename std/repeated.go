package std

import (
	"fmt"
	"io"
)

// Repeated renders Value Count times with nothing in between.
// A Count of zero or less renders nothing.
type Repeated[T any] struct {
	Value T
	Count int
}

// Format implements [fmt.Formatter].
func (r Repeated[T]) Format(f fmt.State, verb rune) {
	if r.Count <= 0 {
		return
	}
	directive := elemVerb(f, verb)
	for range r.Count {
		fmt.Fprintf(f, directive, r.Value)
	}
}

// String returns the %v rendering.
func (r Repeated[T]) String() string {
	return fmt.Sprint(r)
}

// WriteTo writes the %v rendering to w and stops at the first write error.
func (r Repeated[T]) WriteTo(w io.Writer) (int64, error) {
	var cw countingWriter
	for range r.Count {
		if err := cw.add(fmt.Fprint(w, r.Value)); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}
