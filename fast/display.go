package fast

import (
	"fmt"
	"reflect"
	"strconv"
)

// Display renders leaves as plain text, the same as %v. It is the default
// strategy.
type Display struct{}

// Fmt implements [Strategy].
func (Display) Fmt(w Writer, v any) error {
	switch x := v.(type) {
	case string:
		_, err := w.WriteString(x)
		return err
	case Char:
		_, err := w.WriteRune(rune(x))
		return err
	}
	if nilPointer(v) {
		// fmt recovers from methods called on nil receivers.
		_, err := fmt.Fprint(w, v)
		return err
	}
	switch x := v.(type) {
	case fmt.Formatter:
		_, err := fmt.Fprint(w, x)
		return err
	case error:
		_, err := w.WriteString(x.Error())
		return err
	case fmt.Stringer:
		_, err := w.WriteString(x.String())
		return err
	}

	var scratch [32]byte
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		_, err := w.Write(strconv.AppendBool(scratch[:0], rv.Bool()))
		return err
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, err := w.Write(strconv.AppendInt(scratch[:0], rv.Int(), 10))
		return err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		_, err := w.Write(strconv.AppendUint(scratch[:0], rv.Uint(), 10))
		return err
	case reflect.Float32, reflect.Float64:
		_, err := w.Write(strconv.AppendFloat(scratch[:0], rv.Float(), 'g', -1, rv.Type().Bits()))
		return err
	case reflect.String:
		_, err := w.WriteString(rv.String())
		return err
	}
	_, err := fmt.Fprint(w, v)
	return err
}

// SizeHint implements [Strategy]. It is exact for strings, characters,
// byte slices, booleans, and numbers. Values rendered through their own methods report 0
// so estimating never calls them.
func (Display) SizeHint(v any) int {
	switch x := v.(type) {
	case string:
		return len(x)
	case Char:
		return runeLen(rune(x))
	case fmt.Formatter, error, fmt.Stringer:
		return 0
	case []byte:
		return byteSliceLen(x)
	}

	var scratch [32]byte
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return len("true")
		}
		return len("false")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intLen(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintLen(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return len(strconv.AppendFloat(scratch[:0], rv.Float(), 'g', -1, rv.Type().Bits()))
	case reflect.String:
		return rv.Len()
	}
	return 0
}

func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// byteSliceLen is the length of b under %v: decimal bytes separated by
// spaces, in brackets.
func byteSliceLen(b []byte) int {
	n := 2 + max(len(b)-1, 0)
	for _, c := range b {
		n += uintLen(uint64(c))
	}
	return n
}

// Debug renders leaves as Go syntax, the same as %#v, except that a [Char]
// is quoted as a rune literal.
type Debug struct{}

// Fmt implements [Strategy].
func (Debug) Fmt(w Writer, v any) error {
	var scratch [64]byte
	switch x := v.(type) {
	case string:
		_, err := w.Write(strconv.AppendQuote(scratch[:0], x))
		return err
	case Char:
		_, err := w.Write(strconv.AppendQuoteRune(scratch[:0], rune(x)))
		return err
	}
	_, err := fmt.Fprintf(w, "%#v", v)
	return err
}

// SizeHint implements [Strategy]. Quoted strings are estimated without
// escapes.
func (Debug) SizeHint(v any) int {
	switch x := v.(type) {
	case string:
		return len(x) + 2
	case Char:
		return runeLen(rune(x)) + 2
	}
	return Display{}.SizeHint(v)
}
