package envelope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsciiArt_RequiresRender(t *testing.T) {
	seg := mustSegment(t, 1.0, 1.0, Linear())
	c, err := New(64, 0, []*Segment{seg})
	require.NoError(t, err)

	_, err = c.AsciiArt("ramp", "", '*')
	assert.ErrorIs(t, err, ErrNotRendered)
}

func TestAsciiArt_Layout(t *testing.T) {
	c := mustRendered(t, 256, 0, mustSegment(t, 1.0, 1.0, Linear()))

	art, err := c.AsciiArt("linear ramp", "0 -> 1", '*')
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	// Title, subtitle, plot rows, footer.
	require.Len(t, lines, 2+asciiPlotRows+1)
	assert.Equal(t, "linear ramp", lines[0])
	assert.Equal(t, "0 -> 1", lines[1])

	footer := lines[len(lines)-1]
	assert.Contains(t, footer, "min=0.0000")
	assert.Contains(t, footer, "n=256")

	// One marker per plotted column.
	markers := strings.Count(art, "*")
	assert.Equal(t, asciiPlotColumns, markers)
}

func TestAsciiArt_MarkerGlyphAndOrientation(t *testing.T) {
	c := mustRendered(t, 256, 0, mustSegment(t, 1.0, 1.0, Linear()))

	art, err := c.AsciiArt("", "", '#')
	require.NoError(t, err)
	assert.NotContains(t, art, "*")

	lines := strings.Split(art, "\n")
	plot := lines[2 : 2+asciiPlotRows]
	// A rising ramp starts at the bottom-left and climbs into the top
	// half by the last column.
	assert.Equal(t, "#", string(plot[asciiPlotRows-1][0]))
	lastColRow := -1
	for r, line := range plot {
		if line[len(line)-1] == '#' {
			lastColRow = r
			break
		}
	}
	require.NotEqual(t, -1, lastColRow)
	assert.Less(t, lastColRow, asciiPlotRows/2)
}

func TestAsciiArt_FlatBuffer(t *testing.T) {
	c := constantCurve(t, 64, 0.5)

	art, err := c.AsciiArt("flat", "", 'o')
	require.NoError(t, err)

	// Zero span pins every marker to the bottom row instead of dividing
	// by zero.
	lines := strings.Split(art, "\n")
	bottom := lines[2+asciiPlotRows-1]
	assert.Equal(t, asciiPlotColumns, strings.Count(bottom, "o"))
}
