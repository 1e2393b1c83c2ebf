package std

import "fmt"

// elemVerb rebuilds the directive passed to Format for use on a single
// element. Width and precision are discarded.
func elemVerb(f fmt.State, verb rune) string {
	b := make([]byte, 0, 6)
	b = append(b, '%')
	for _, flag := range [...]byte{'+', '#', ' '} {
		if f.Flag(int(flag)) {
			b = append(b, flag)
		}
	}
	b = append(b, string(verb)...)
	return string(b)
}

// countingWriter tracks bytes written for WriteTo.
type countingWriter struct {
	n int64
}

func (c *countingWriter) add(n int, err error) error {
	c.n += int64(n)
	return err
}
