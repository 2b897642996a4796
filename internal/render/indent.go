package render

import "strings"

// indentUnit is the text emitted per nesting level.
const indentUnit = "    "

// Indent tracks the nesting depth of the text being rendered.
// The zero value is ready to use at depth 0.
type Indent struct {
	depth int
}

// Increase moves one level deeper.
func (i *Indent) Increase() {
	i.depth++
}

// Decrease moves one level up. Calling it more often than Increase is a
// programming error in the renderer and panics.
func (i *Indent) Decrease() {
	if i.depth == 0 {
		panic("render: indent decreased below zero")
	}

	i.depth--
}

// Depth returns the current nesting depth.
func (i *Indent) Depth() int {
	return i.depth
}

// String returns the indentation prefix for the current depth.
func (i *Indent) String() string {
	return strings.Repeat(indentUnit, i.depth)
}
