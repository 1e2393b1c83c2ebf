package fast

// Repeated renders Value Count times with nothing in between.
// A Count of zero or less renders nothing.
type Repeated[T any] struct {
	Value T
	Count int
}

// Fmt implements [Fmter].
func (r Repeated[T]) Fmt(w Writer, s Strategy) error {
	for range r.Count {
		if err := WriteValue(w, r.Value, s); err != nil {
			return err
		}
	}
	return nil
}

// SizeHint implements [Fmter]. The value's own hint is not consulted when
// Count is zero or less.
func (r Repeated[T]) SizeHint(s Strategy) int {
	if r.Count <= 0 {
		return 0
	}
	return SizeHintOf(r.Value, s) * r.Count
}

// String renders with [Display].
func (r Repeated[T]) String() string {
	return FmtToNewString(r, Display{})
}
