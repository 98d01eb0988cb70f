package envelope

import (
	"fmt"
	"strings"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// AsciiArt renders the buffer as a terminal plot: a title line, a
// subtitle line, a fixed-size character grid with one marker glyph per
// column, and a statistics footer. It is a debugging aid, not part of the
// numeric contract, and requires a prior Render.
func (c *Curve) AsciiArt(title, subtitle string, marker rune) (string, error) {
	if !c.rendered {
		return "", ErrNotRendered
	}

	cols := asciiPlotColumns
	if c.definition < cols {
		cols = c.definition
	}
	rows := asciiPlotRows

	minVal := floats.Min(c.samples)
	maxVal := floats.Max(c.samples)
	span := maxVal - minVal

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for col := range grid[r] {
			grid[r][col] = ' '
		}
	}
	for col := 0; col < cols; col++ {
		v := c.samples[col*c.definition/cols]
		row := 0
		if span > 0 {
			row = int((v - minVal) / span * float64(rows-1))
		}
		// Row 0 is the bottom of the plot.
		grid[rows-1-row][col] = marker
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(subtitle)
	b.WriteByte('\n')
	for _, line := range grid {
		b.WriteString(string(line))
		b.WriteByte('\n')
	}
	mean := f64.Sum(c.samples) / float64(c.definition)
	fmt.Fprintf(&b, "min=%.4f max=%.4f peak=%.4f mean=%.4f n=%d\n",
		minVal, maxVal, c.peak, mean, c.definition)
	return b.String(), nil
}
