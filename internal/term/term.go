// Package term is the small slice of ANSI terminal control the clock needs.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	xterm "golang.org/x/term"

	"github.com/jeffnv/blockclock/internal/layout"
)

const (
	HideCursor = "\033[?25l"
	ShowCursor = "\033[?25h"
	Clear      = "\033[2J"
	Home       = "\033[1;1H"
)

// DefaultSize is used when the size cannot be queried.
var DefaultSize = layout.Size{Rows: 24, Cols: 80}

// Terminal writes control sequences and frames to an output stream.
type Terminal struct {
	w  *bufio.Writer
	fd int

	getenv func(string) string
}

// New wraps w. Size queries use w's file descriptor when it is a terminal.
func New(w io.Writer) *Terminal {
	t := &Terminal{w: bufio.NewWriter(w), fd: -1, getenv: os.Getenv}
	if f, ok := w.(*os.File); ok && xterm.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
	}
	return t
}

func (t *Terminal) emit(seqs ...string) error {
	for _, s := range seqs {
		if _, err := t.w.WriteString(s); err != nil {
			return err
		}
	}
	return t.w.Flush()
}

// Setup hides the cursor, clears the screen and homes the cursor.
func (t *Terminal) Setup() error {
	return t.emit(HideCursor, Clear, Home)
}

// Restore makes the cursor visible again.
func (t *Terminal) Restore() error {
	return t.emit(ShowCursor)
}

// Home moves the cursor to the top left cell.
func (t *Terminal) Home() error {
	return t.emit(Home)
}

// Clear erases the whole screen.
func (t *Terminal) Clear() error {
	return t.emit(Clear)
}

// WriteFrame writes every line of f and flushes.
func (t *Terminal) WriteFrame(f layout.Frame) error {
	return t.emit(f.String())
}

// Size reports the terminal size. Without a terminal it falls back to
// $LINES and $COLUMNS, then to DefaultSize.
func (t *Terminal) Size() (layout.Size, error) {
	if t.fd >= 0 {
		cols, rows, err := xterm.GetSize(t.fd)
		if err == nil {
			return layout.Size{Rows: rows, Cols: cols}, nil
		}
		if s, ok := t.envSize(); ok {
			return s, nil
		}
		return DefaultSize, fmt.Errorf("query terminal size: %w", err)
	}
	if s, ok := t.envSize(); ok {
		return s, nil
	}
	return DefaultSize, nil
}

func (t *Terminal) envSize() (layout.Size, bool) {
	rows, err := strconv.Atoi(t.getenv("LINES"))
	if err != nil || rows <= 0 {
		return layout.Size{}, false
	}
	cols, err := strconv.Atoi(t.getenv("COLUMNS"))
	if err != nil || cols <= 0 {
		return layout.Size{}, false
	}
	return layout.Size{Rows: rows, Cols: cols}, true
}
