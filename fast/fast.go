package fast

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Writer is the destination a value renders into. [*bytes.Buffer],
// [*strings.Builder], and [*bufio.Writer] all satisfy it.
type Writer interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
	WriteRune(r rune) (int, error)
}

// Fmter is implemented by values that render themselves under a strategy.
type Fmter interface {
	// Fmt writes the value to w.
	Fmt(w Writer, s Strategy) error
	// SizeHint estimates the number of bytes Fmt writes.
	SizeHint(s Strategy) int
}

// Strategy renders leaf values: anything that is not an [Fmter].
type Strategy interface {
	Fmt(w Writer, v any) error
	SizeHint(v any) int
}

// WriteValue renders v to w. An [Fmter] renders itself; any other value is
// handed to s.
func WriteValue[V any](w Writer, v V, s Strategy) error {
	if f, ok := any(v).(Fmter); ok {
		return f.Fmt(w, s)
	}
	return s.Fmt(w, v)
}

// SizeHintOf estimates the rendered length of v in bytes.
func SizeHintOf[V any](v V, s Strategy) int {
	if f, ok := any(v).(Fmter); ok {
		return f.SizeHint(s)
	}
	return s.SizeHint(v)
}

// FmtToNewString renders v into a new string.
//
// Prefer [FmtToClearedBuffer] when a buffer is at hand: it reuses the
// buffer's memory across calls.
func FmtToNewString[V any](v V, s Strategy) string {
	var sb strings.Builder
	if n := preSize(SizeHintOf(v, s)); n > 0 {
		sb.Grow(n)
	}
	if err := WriteValue(&sb, v, s); err != nil {
		panic(fmt.Sprintf("fmtutil/fast: rendering %T into a string failed: %v", v, err))
	}
	return sb.String()
}

// FmtToClearedBuffer empties buf, renders v into it, and returns buf's
// contents. The returned slice aliases buf and is valid until buf is next
// modified.
func FmtToClearedBuffer[V any](buf *bytes.Buffer, v V, s Strategy) []byte {
	buf.Reset()
	if n := preSize(SizeHintOf(v, s)); n > 0 {
		buf.Grow(n)
	}
	if err := WriteValue(buf, v, s); err != nil {
		panic(fmt.Sprintf("fmtutil/fast: rendering %T into a buffer failed: %v", v, err))
	}
	return buf.Bytes()
}

// maxPreSize bounds how much memory a size hint can reserve up front.
const maxPreSize = 1 << 16

// minFprintBuffer matches bufio's default size.
const minFprintBuffer = 4096

// preSize clamps a hint to [0, maxPreSize]. Hints are advisory, so a
// negative or oversized one only costs extra allocations while writing.
func preSize(hint int) int {
	return min(max(hint, 0), maxPreSize)
}

// Fprint renders v to w through a buffered writer and flushes it. The buffer
// is sized to the value's hint, clamped between the bufio default and
// maxPreSize, so a small correctly estimated value reaches w in a single
// Write. On any error the output rendered so far is still flushed to w, and
// the first error is returned unchanged.
func Fprint[V any](w io.Writer, v V, s Strategy) error {
	bw := bufio.NewWriterSize(w, max(preSize(SizeHintOf(v, s)), minFprintBuffer))
	if err := WriteValue(bw, v, s); err != nil {
		_ = bw.Flush()
		return err
	}
	return bw.Flush()
}
