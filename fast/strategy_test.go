package fast_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/fmtutil/fast"
)

type celsius float64

type id int

func (i id) String() string { return fmt.Sprintf("#%d", int(i)) }

type nilStringer struct{ name string }

func (n *nilStringer) String() string { return n.name }

type nilError struct{ msg string }

func (e *nilError) Error() string { return e.msg }

type point struct {
	X, Y int
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    fast.Strategy
		wantErr require.ErrorAssertionFunc
	}{
		"display": {input: "display", want: fast.Display{}, wantErr: require.NoError},
		"debug":   {input: "debug", want: fast.Debug{}, wantErr: require.NoError},
		"json":    {input: "json", want: fast.JSON{}, wantErr: require.NoError},
		"yaml":    {input: "yaml", want: fast.YAML{}, wantErr: require.NoError},
		"html":    {input: "html", want: fast.HTML{}, wantErr: require.NoError},
		"unknown": {input: "xml", want: nil, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := fast.ParseStrategy(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStrategyErrorIs(t *testing.T) {
	t.Parallel()
	_, err := fast.ParseStrategy("Display")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fast.ErrUnsupportedStrategy))
	assert.Contains(t, err.Error(), `"Display"`)
}

func TestStrategyNames(t *testing.T) {
	t.Parallel()
	got := fast.StrategyNames()
	assert.Equal(t, []string{"display", "debug", "json", "yaml", "html"}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, "display", fast.StrategyNames()[0])
}

func TestDisplay(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"string":        {value: "héllo", want: "héllo"},
		"char":          {value: fast.Char('ß'), want: "ß"},
		"rune":          {value: 'a', want: "97"},
		"true":          {value: true, want: "true"},
		"false":         {value: false, want: "false"},
		"int":           {value: -42, want: "-42"},
		"int8":          {value: int8(-128), want: "-128"},
		"uint64":        {value: uint64(18446744073709551615), want: "18446744073709551615"},
		"float64":       {value: 3.25, want: "3.25"},
		"float64 exp":   {value: 1e21, want: "1e+21"},
		"float32":       {value: float32(0.1), want: "0.1"},
		"named float":   {value: celsius(-7.5), want: "-7.5"},
		"stringer":      {value: id(7), want: "#7"},
		"error":         {value: errors.New("boom"), want: "boom"},
		"byte slice":    {value: []byte("hi"), want: "[104 105]"},
		"struct":        {value: point{X: 1, Y: 2}, want: "{1 2}"},
		"nil":           {value: nil, want: "<nil>"},
		"duration":      {value: 1500 * time.Millisecond, want: "1.5s"},
		"fmt formatter": {value: fmtOnly{}, want: "formatted"},
		"nil stringer":  {value: (*nilStringer)(nil), want: "<nil>"},
		"nil error":     {value: (*nilError)(nil), want: "<nil>"},
		"stringer ptr":  {value: &nilStringer{name: "set"}, want: "set"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, fast.Display{}.Fmt(&buf, tt.value))
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, fmt.Sprint(tt.value), buf.String(), "matches fmt.Sprint")
		})
	}
}

type fmtOnly struct{}

func (fmtOnly) Format(f fmt.State, _ rune) { fmt.Fprint(f, "formatted") }

func TestDisplaySizeHint(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  int
	}{
		"string":      {value: "héllo", want: 6},
		"char":        {value: fast.Char('你'), want: 3},
		"true":        {value: true, want: 4},
		"false":       {value: false, want: 5},
		"negative":    {value: -42, want: 3},
		"uint":        {value: uint(1000), want: 4},
		"float":       {value: 0.125, want: 5},
		"named float": {value: celsius(2), want: 1},
		"stringer":    {value: id(7), want: 0},
		"bytes":       {value: []byte{104, 5, 255}, want: len("[104 5 255]")},
		"one byte":    {value: []byte{0}, want: len("[0]")},
		"no bytes":    {value: []byte{}, want: len("[]")},
		"struct":      {value: point{}, want: 0},
		"nil":         {value: nil, want: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fast.Display{}.SizeHint(tt.value))
		})
	}
}

func TestDisplayNilStringerInSeparated(t *testing.T) {
	t.Parallel()
	var p *nilStringer
	got := fast.FmtToNewString(fast.SeparatedSlice(",", []*nilStringer{p, {name: "b"}}), fast.Display{})
	assert.Equal(t, fmt.Sprint(p)+",b", got)
	assert.Equal(t, "<nil>,b", got)
}

func TestDebug(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
		hint  int
	}{
		"string": {value: "a\"b", want: `"a\"b"`, hint: 5},
		"char":   {value: fast.Char('x'), want: `'x'`, hint: 3},
		"int":    {value: 12, want: "12", hint: 2},
		"struct": {value: point{X: 1, Y: 2}, want: "fast_test.point{X:1, Y:2}", hint: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, fast.Debug{}.Fmt(&buf, tt.value))
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.hint, fast.Debug{}.SizeHint(tt.value))
		})
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"string":  {value: "<a & b>", want: `"<a & b>"`},
		"char":    {value: fast.Char('q'), want: `"q"`},
		"number":  {value: 2.5, want: "2.5"},
		"bool":    {value: true, want: "true"},
		"nil":     {value: nil, want: "null"},
		"map":     {value: map[string]int{"b": 2, "a": 1}, want: `{"a":1,"b":2}`},
		"struct":  {value: point{X: 1, Y: 2}, want: `{"X":1,"Y":2}`},
		"slice":   {value: []string{"x", "y"}, want: `["x","y"]`},
		"escaped": {value: "line\nbreak", want: `"line\nbreak"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, fast.JSON{}.Fmt(&buf, tt.value))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestJSONSizeHint(t *testing.T) {
	t.Parallel()
	s := fast.SeparatedSlice(fast.Raw(","), []any{"ab", 12, true, nil, fast.Char('z')})
	out := fast.FmtToNewString(s, fast.JSON{})
	assert.Equal(t, `"ab",12,true,null,"z"`, out)
	assert.Equal(t, len(out), s.SizeHint(fast.JSON{}))
	assert.Zero(t, fast.JSON{}.SizeHint(point{}))
}

func TestJSONUnsupportedValue(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := fast.JSON{}.Fmt(&buf, make(chan int))
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestYAML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"plain":     {value: "plain", want: "plain"},
		"needs quo": {value: "a: b", want: "'a: b'"},
		"char":      {value: fast.Char('c'), want: "c"},
		"int":       {value: 3, want: "3"},
		"map":       {value: map[string]int{"b": 2, "a": 1}, want: "{a: 1, b: 2}"},
		"slice":     {value: []int{1, 2}, want: "[1, 2]"},
		"nested":    {value: map[string][]int{"k": {1}}, want: "{k: [1]}"},
		"multiline": {value: "line1\nline2", want: `"line1\nline2"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, fast.YAML{}.Fmt(&buf, tt.value))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestYAMLFlowSequence(t *testing.T) {
	t.Parallel()
	s := fast.SeparatedSlice(fast.Raw(", "), []string{"x", "y: z"})
	got := fast.FmtToNewString(fast.SeparatedSlice(fast.Raw(""), []fast.Fmter{fast.Raw("["), s, fast.Raw("]")}), fast.YAML{})
	assert.Equal(t, "[x, 'y: z']", got)
}

func TestHTML(t *testing.T) {
	t.Parallel()
	s := fast.SeparatedSlice(fast.Raw("<br>"), []any{"a < b", "Tom & Jerry", 5})
	var buf bytes.Buffer
	got := fast.FmtToClearedBuffer(&buf, s, fast.HTML{})
	assert.Equal(t, "a &lt; b<br>Tom &amp; Jerry<br>5", string(got))
}

func TestHTMLWriteError(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 0}
	err := fast.HTML{}.Fmt(w, "x")
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestStrategyOverSeparated(t *testing.T) {
	t.Parallel()
	items := []string{"a", "b"}
	tests := map[string]struct {
		strategy fast.Strategy
		want     string
	}{
		"display": {strategy: fast.Display{}, want: "a,b"},
		"debug":   {strategy: fast.Debug{}, want: `"a"",""b"`},
		"json":    {strategy: fast.JSON{}, want: `"a"",""b"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fast.FmtToNewString(fast.SeparatedSlice(",", items), tt.strategy))
		})
	}
}
