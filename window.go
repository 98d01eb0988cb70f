package envelope

import (
	"math"

	"gonum.org/v1/gonum/dsp/window"
)

// WindowShape renders the rising half of a symmetric analysis window.
// Render builds a 2n-point window table with gonum's dsp/window package
// and keeps the first half; At evaluates the continuous closed form, so a
// point query and a table sample can differ by O(1/n) at the edges.
type WindowShape struct {
	name  string
	table func([]float64) []float64
	at    func(x float64) float64
}

// Hann returns the rising half of a Hann window.
func Hann() *WindowShape {
	return &WindowShape{
		name:  "hann",
		table: window.Hann,
		at: func(x float64) float64 {
			s := math.Sin(math.Pi * x / 2)
			return s * s
		},
	}
}

// Hamming returns the rising half of a Hamming window. Note that a
// Hamming window does not reach zero: the segment starts at the window's
// pedestal rather than exactly at yStart.
func Hamming() *WindowShape {
	return &WindowShape{
		name:  "hamming",
		table: window.Hamming,
		at: func(x float64) float64 {
			return 0.54 - 0.46*math.Cos(math.Pi*x)
		},
	}
}

// Blackman returns the rising half of a Blackman window.
func Blackman() *WindowShape {
	return &WindowShape{
		name:  "blackman",
		table: window.Blackman,
		at: func(x float64) float64 {
			return 0.42 - 0.5*math.Cos(math.Pi*x) + 0.08*math.Cos(2*math.Pi*x)
		},
	}
}

// At implements Shape using the continuous window form.
func (s *WindowShape) At(x float64) (float64, error) { return s.at(x), nil }

// Render implements Shape from a discrete window table.
func (s *WindowShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	n := len(dst)
	sp := newSpan(yStart, yEnd)

	// Rising half of a full window spanning twice the segment.
	table := make([]float64, 2*n)
	for i := range table {
		table[i] = 1
	}
	s.table(table)

	peak := 0.0
	for i := range dst {
		v := sp.scale(table[i])
		dst[i] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak, nil
}
