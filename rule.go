package fmtutil

import "github.com/mattn/go-runewidth"

// Rule returns a Repeated that draws unit across columns terminal cells,
// using as many whole copies as fit. Display width is measured per cell, so
// "─" counts as one column and "你" as two. A unit with no visible width, or
// a non-positive columns, repeats zero times.
//
//	fmt.Println(fmtutil.Rule("─", 20))
func Rule(unit string, columns int) Repeated[string] {
	w := runewidth.StringWidth(unit)
	if w == 0 || columns <= 0 {
		return Repeated[string]{Value: unit}
	}
	return Repeated[string]{Value: unit, Count: columns / w}
}
