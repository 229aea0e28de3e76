// Package layout places a composed block in the terminal viewport.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeffnv/blockclock/internal/art"
)

// Size is a terminal size in cells.
type Size struct {
	Rows int
	Cols int
}

// Frame is the sequence of lines written for one repaint.
type Frame struct {
	Lines []string

	// Degraded is set when the block did not fit and offsets were clamped.
	Degraded bool
}

// String renders every line followed by a newline.
func (f Frame) String() string {
	var b strings.Builder
	for _, l := range f.Lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Layout returns block unchanged, or padded so it sits in the middle of
// a terminal of the given size.
func Layout(block art.Block, center bool, size Size) Frame {
	if !center {
		return Frame{Lines: append([]string(nil), block...)}
	}
	if size.Rows <= 0 || size.Cols <= 0 {
		return Frame{Lines: append([]string(nil), block...), Degraded: true}
	}

	var f Frame

	top := size.Rows/2 - block.Height()/2
	if top < 0 || block.Height() > size.Rows {
		f.Degraded = true
	}
	if top < 0 {
		top = 0
	}

	field := size.Cols/2 + block.Width()/2
	if field > size.Cols {
		field = size.Cols
		f.Degraded = true
	}

	f.Lines = make([]string, 0, top+block.Height())
	for i := 0; i < top; i++ {
		f.Lines = append(f.Lines, "")
	}
	for _, row := range block {
		f.Lines = append(f.Lines, padLeft(row, field))
	}
	return f
}

// padLeft right-justifies s in a field of width cells. Rows wider than the
// field are returned as is.
func padLeft(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
