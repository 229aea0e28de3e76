package art

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffnv/blockclock/internal/glyph"
	"github.com/jeffnv/blockclock/internal/wallclock"
)

func font(t *testing.T, id int) *glyph.Font {
	t.Helper()
	f, err := glyph.Default.Font(id)
	require.NoError(t, err)
	return f
}

func TestComposeContainsGlyphsInOrder(t *testing.T) {
	f := font(t, 0)
	block, err := Compose(wallclock.WallClock{Hours: 7, Minutes: 5, Seconds: 9}, f)
	require.NoError(t, err)
	require.Equal(t, f.Height, block.Height())

	symbols := []glyph.Glyph{
		f.Digit(0), f.Digit(7), f.Sep(),
		f.Digit(0), f.Digit(5), f.Sep(),
		f.Digit(0), f.Digit(9),
	}

	for row := 0; row < f.Height; row++ {
		line := []rune(block[row])
		col := 0
		for _, g := range symbols {
			require.Equal(t, ' ', line[col], "row %d col %d", row, col)
			col++
			w := len([]rune(g[row]))
			assert.Equal(t, g[row], string(line[col:col+w]), "row %d", row)
			col += w
		}
		assert.Equal(t, len(line), col)
	}
}

func TestComposeBlockFontRow(t *testing.T) {
	block, err := Compose(wallclock.WallClock{Hours: 7, Minutes: 5, Seconds: 9}, font(t, 0))
	require.NoError(t, err)

	assert.Equal(t, " ███ ███   ███ ███   ███ ███", block[0])
	assert.Equal(t, " █ █   █ █ █ █ █   █ █ █ █ █", block[1])
	assert.Equal(t, 28, block.Width())
}

func TestComposeRectangular(t *testing.T) {
	times := []wallclock.WallClock{
		{Hours: 0, Minutes: 0, Seconds: 0}, {Hours: 23, Minutes: 59, Seconds: 59}, {Hours: 11, Minutes: 11, Seconds: 11}, {Hours: 12, Minutes: 34, Seconds: 56}, {Hours: 7, Minutes: 8, Seconds: 9},
	}
	for h := 0; h < 24; h++ {
		times = append(times, wallclock.WallClock{Hours: h, Minutes: (h * 7) % 60, Seconds: (h * 13) % 60})
	}

	for _, f := range glyph.Default.Fonts() {
		want := 8 + 6*f.DigitWidth() + 2*f.Sep().Width()
		for _, wc := range times {
			block, err := Compose(wc, f)
			require.NoError(t, err)
			require.Equal(t, f.Height, block.Height())
			for i, row := range block {
				assert.Equal(t, want, lipgloss.Width(row), "font %s time %s row %d", f.Name, wc, i)
			}
		}
	}
}

func TestComposeZeroPads(t *testing.T) {
	f := font(t, 4)
	a, err := Compose(wallclock.WallClock{Hours: 3, Minutes: 4, Seconds: 5}, f)
	require.NoError(t, err)
	b, err := ComposeString("03:04:05", f)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestComposeStringInvalidSymbol(t *testing.T) {
	block, err := ComposeString("12:3x:00", font(t, 0))
	assert.ErrorIs(t, err, glyph.ErrInvalidSymbol)
	assert.Nil(t, block)
}

func TestComposeNoFont(t *testing.T) {
	_, err := Compose(wallclock.WallClock{}, nil)
	assert.ErrorIs(t, err, ErrNoFont)
}

func TestBlockString(t *testing.T) {
	block, err := ComposeString("1", font(t, 4))
	require.NoError(t, err)
	assert.Equal(t, "   █ \n   █ \n  ███", block.String())
	assert.Equal(t, 5, block.Width())
}
