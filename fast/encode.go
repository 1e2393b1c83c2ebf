package fast

import (
	"bytes"
	"encoding/json"
	"html"
	"strings"

	"gopkg.in/yaml.v3"
)

// JSON renders each leaf as compact JSON. HTML characters are not escaped.
// A [Char] encodes as a one-character string.
type JSON struct{}

// Fmt implements [Strategy].
func (JSON) Fmt(w Writer, v any) error {
	if c, ok := v.(Char); ok {
		v = string(c)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// SizeHint implements [Strategy]. Strings are estimated without escapes.
func (JSON) SizeHint(v any) int {
	switch x := v.(type) {
	case nil:
		return len("null")
	case string:
		return len(x) + 2
	case Char:
		return runeLen(rune(x)) + 2
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return Display{}.SizeHint(x)
	}
	return 0
}

// YAML renders each leaf as a single-line YAML node: mappings and sequences
// use flow style, and multi-line strings are double-quoted. A [Char]
// encodes as a string.
type YAML struct{}

// Fmt implements [Strategy].
func (YAML) Fmt(w Writer, v any) error {
	if c, ok := v.(Char); ok {
		v = string(c)
	}
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return err
	}
	inline(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return err
	}
	_, err = w.Write(bytes.TrimSuffix(out, []byte("\n")))
	return err
}

// SizeHint implements [Strategy]. Plain strings and scalars are estimated
// as their Display length.
func (YAML) SizeHint(v any) int {
	return Display{}.SizeHint(v)
}

func inline(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		n.Style |= yaml.FlowStyle
	case yaml.ScalarNode:
		if strings.ContainsAny(n.Value, "\r\n") {
			n.Style = yaml.DoubleQuotedStyle
		}
	}
	for _, c := range n.Content {
		inline(c)
	}
}

// HTML renders leaves as [Display] does, then escapes the characters
// <, >, &, ', and ".
type HTML struct{}

// Fmt implements [Strategy].
func (HTML) Fmt(w Writer, v any) error {
	var sb strings.Builder
	if err := (Display{}).Fmt(&sb, v); err != nil {
		return err
	}
	_, err := w.WriteString(html.EscapeString(sb.String()))
	return err
}

// SizeHint implements [Strategy]. Escapes are not counted.
func (HTML) SizeHint(v any) int {
	return Display{}.SizeHint(v)
}
