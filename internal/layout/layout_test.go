package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffnv/blockclock/internal/art"
	"github.com/jeffnv/blockclock/internal/glyph"
	"github.com/jeffnv/blockclock/internal/wallclock"
)

func compose(t *testing.T, id int) art.Block {
	t.Helper()
	f, err := glyph.Default.Font(id)
	require.NoError(t, err)
	b, err := art.Compose(wallclock.WallClock{Hours: 12, Minutes: 34, Seconds: 56}, f)
	require.NoError(t, err)
	return b
}

func TestLayoutUncenteredIsIdentity(t *testing.T) {
	for _, f := range glyph.Default.Fonts() {
		block := compose(t, f.ID)
		for _, size := range []Size{{24, 80}, {1, 1}, {0, 0}} {
			frame := Layout(block, false, size)
			assert.Equal(t, []string(block), frame.Lines)
			assert.False(t, frame.Degraded)
		}
	}
}

func TestLayoutCentered(t *testing.T) {
	block := compose(t, 0) // 5 rows, 28 wide
	frame := Layout(block, true, Size{Rows: 24, Cols: 80})

	require.Len(t, frame.Lines, 10+5)
	for _, l := range frame.Lines[:10] {
		assert.Empty(t, l)
	}
	for i, l := range frame.Lines[10:] {
		assert.Equal(t, 40+14, lipgloss.Width(l))
		assert.True(t, strings.HasSuffix(l, block[i]))
		assert.Equal(t, strings.Repeat(" ", 26), l[:26])
	}
	assert.False(t, frame.Degraded)
}

func TestLayoutCenteredOddSizes(t *testing.T) {
	block := compose(t, 3) // 7 rows
	frame := Layout(block, true, Size{Rows: 25, Cols: 101})

	top := 25/2 - 7/2
	require.Len(t, frame.Lines, top+7)
	want := 101/2 + block.Width()/2
	for _, l := range frame.Lines[top:] {
		assert.Equal(t, want, lipgloss.Width(l))
	}
}

func TestLayoutSmallTerminal(t *testing.T) {
	block := compose(t, 1)

	sizes := []Size{{Rows: 2, Cols: 10}, {Rows: 1, Cols: 1}, {Rows: 0, Cols: 0}, {Rows: -3, Cols: -3}, {Rows: 4, Cols: 200}}
	for _, size := range sizes {
		var frame Frame
		require.NotPanics(t, func() { frame = Layout(block, true, size) })
		assert.True(t, frame.Degraded, "size %+v", size)
		require.GreaterOrEqual(t, len(frame.Lines), block.Height())
		tail := frame.Lines[len(frame.Lines)-block.Height():]
		for i, l := range tail {
			assert.True(t, strings.HasSuffix(l, block[i]))
			assert.GreaterOrEqual(t, lipgloss.Width(l), block.Width())
		}
	}
}

func TestLayoutClampsFieldToTerminal(t *testing.T) {
	block := compose(t, 1) // 6 rows, 80 wide
	frame := Layout(block, true, Size{Rows: 30, Cols: 70})

	require.Len(t, frame.Lines, 15-3+6)
	assert.Equal(t, []string(block), frame.Lines[12:])
	assert.True(t, frame.Degraded)
}

func TestFrameString(t *testing.T) {
	f := Frame{Lines: []string{"", "ab", "cd"}}
	assert.Equal(t, "\nab\ncd\n", f.String())
	assert.Equal(t, "", Frame{}.String())
}

func TestLayoutDoesNotAliasBlock(t *testing.T) {
	block := art.Block{"x", "y"}
	frame := Layout(block, false, Size{})
	frame.Lines[0] = "z"
	assert.Equal(t, "x", block[0])
}
