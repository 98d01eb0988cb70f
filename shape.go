package envelope

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-audio-envelope/internal/mathutil"
)

// Shape produces the samples of one curve segment.
//
// Pointwise shapes define At on the ascending unit square and inherit the
// generic scaling law; parametric and whole-buffer shapes (Bezier,
// Catmull-Rom, splines, window tables) implement Render directly. Shapes
// carry no per-render state: the y window travels with each call, so a
// single instance may be reused across segments and concurrent renders.
type Shape interface {
	// At returns the raw curve value at position x in [0, 1], normalized
	// to the ascending case: At(0) == 0 and At(1) == 1 for every shape
	// that guarantees its endpoints (Polynomial and the Hamming window
	// half do not). Parametric shapes evaluate on the unit y window.
	At(x float64) (float64, error)

	// Render fills dst with len(dst) samples running from yStart toward
	// yEnd, sample i taken at x = i/len(dst), and returns the peak
	// absolute value written. dst must not be empty.
	Render(dst []float64, yStart, yEnd float64) (float64, error)
}

// span is the per-render y window: the generic scaling law that maps a
// raw ascending shape value into [yStart, yEnd].
type span struct {
	yStart, yEnd float64
	absDiff      float64
	offset       float64
}

func newSpan(yStart, yEnd float64) span {
	return span{
		yStart:  yStart,
		yEnd:    yEnd,
		absDiff: math.Abs(yStart - yEnd),
		offset:  math.Min(yStart, yEnd),
	}
}

// scale maps raw y into the window. Descending segments mirror the raw
// shape first, so shapes only ever describe the ascending case.
func (s span) scale(y float64) float64 {
	if s.yStart > s.yEnd {
		y = 1 - y
	}
	return y*s.absDiff + s.offset
}

// renderPointwise implements Render for shapes whose value depends only
// on x, applying the scale law sample by sample and tracking the peak.
func renderPointwise(shape Shape, dst []float64, yStart, yEnd float64) (float64, error) {
	sp := newSpan(yStart, yEnd)
	n := len(dst)
	peak := 0.0
	for i := range dst {
		y, err := shape.At(mathutil.Frac(i, n))
		if err != nil {
			return 0, err
		}
		v := sp.scale(y)
		dst[i] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak, nil
}

// peakOf returns the maximum absolute value in buf.
func peakOf(buf []float64) float64 {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// InvertedShape reflects another shape about the segment diagonal: the
// scaled output y becomes yStart + yEnd - y. Applying it twice restores
// the inner shape.
type InvertedShape struct {
	inner Shape
}

// Inverted wraps shape with its point reflection about the segment's
// start/end diagonal, usable as a drop-in shape for a new segment.
func Inverted(shape Shape) (*InvertedShape, error) {
	if shape == nil {
		return nil, fmt.Errorf("%w: nil shape", ErrInvalidShape)
	}
	return &InvertedShape{inner: shape}, nil
}

// At returns the reflected raw value 1 - inner.At(x).
func (s *InvertedShape) At(x float64) (float64, error) {
	y, err := s.inner.At(x)
	if err != nil {
		return 0, err
	}
	return 1 - y, nil
}

// Render renders the inner shape and reflects the buffer in place.
func (s *InvertedShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	if _, err := s.inner.Render(dst, yStart, yEnd); err != nil {
		return 0, err
	}
	f64.Scale(dst, dst, -1)
	floats.AddConst(yStart+yEnd, dst)
	return peakOf(dst), nil
}
