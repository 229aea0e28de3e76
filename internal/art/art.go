// Package art composes a time of day into a rectangular block of glyph rows.
package art

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeffnv/blockclock/internal/glyph"
	"github.com/jeffnv/blockclock/internal/wallclock"
)

// ErrNoFont is returned when Compose is called without a font.
var ErrNoFont = errors.New("no font selected")

// Block is the composed art, one string per row.
type Block []string

// Height returns the number of rows.
func (b Block) Height() int {
	return len(b)
}

// Width returns the display width of the first row. All rows share it.
func (b Block) Width() int {
	if len(b) == 0 {
		return 0
	}
	return lipgloss.Width(b[0])
}

func (b Block) String() string {
	return strings.Join(b, "\n")
}

// Compose draws wc as HH:MM:SS in font.
func Compose(wc wallclock.WallClock, font *glyph.Font) (Block, error) {
	return ComposeString(wc.String(), font)
}

// ComposeString draws any string made of digits and separators. Every
// symbol is preceded by a single space column. On error no partial block
// is returned.
func ComposeString(s string, font *glyph.Font) (Block, error) {
	if font == nil {
		return nil, ErrNoFont
	}

	rows := make([]strings.Builder, font.Height)
	for _, r := range s {
		g, err := font.Symbol(r)
		if err != nil {
			return nil, fmt.Errorf("compose %q: %w", s, err)
		}
		for i := range rows {
			rows[i].WriteByte(' ')
			rows[i].WriteString(g[i])
		}
	}

	block := make(Block, len(rows))
	for i := range rows {
		block[i] = rows[i].String()
	}
	return block, nil
}
