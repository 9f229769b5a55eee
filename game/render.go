package game

import (
	"fmt"
	"strings"
)

// String returns the dumped representation of the board:
//
//	===
//	    1- 2r 1-
//	    ...
//	===
func (b *Board) String() string {
	var out strings.Builder
	out.WriteString("===")
	for n, c := range b.cells {
		if n%b.size == 0 {
			out.WriteString("\n    ")
		}
		fmt.Fprintf(&out, "%s ", c)
	}
	out.WriteString("\n===")
	return out.String()
}

// DisplayString returns a human-readable rendition of the board with row
// numbers on the left and column numbers underneath. It is distinct from
// the dump format returned by String.
func (b *Board) DisplayString() string {
	var out strings.Builder
	for r := 1; r <= b.size; r++ {
		cells := make([]string, b.size)
		for c := 1; c <= b.size; c++ {
			cells[c-1] = b.cells[b.SqNum(r, c)].String()
		}
		fmt.Fprintf(&out, "%2d %s\n", r, strings.Join(cells, " "))
	}
	out.WriteString("  ")
	for c := 1; c <= b.size; c++ {
		fmt.Fprintf(&out, "%3d", c)
	}
	return out.String()
}
