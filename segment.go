package envelope

import (
	"fmt"
)

// Segment binds a fractional width, a target y value and one shaping
// function. Fractions are relative weights against the whole curve: they
// do not need to sum to 1, the composer honors their ratios when
// allocating samples.
type Segment struct {
	fraction float64
	targetY  float64
	shape    Shape
}

// NewSegment creates a segment covering fraction of the curve, ending at
// targetY, shaped by shape. The fraction must lie in (0, 1].
func NewSegment(fraction, targetY float64, shape Shape) (*Segment, error) {
	if fraction <= 0 || fraction > 1 {
		return nil, fmt.Errorf("%w: fraction must be in (0, 1], got %v", ErrInvalidSegment, fraction)
	}
	if shape == nil {
		return nil, fmt.Errorf("%w: nil shape", ErrInvalidSegment)
	}
	return &Segment{fraction: fraction, targetY: targetY, shape: shape}, nil
}

// Fraction returns the segment's fractional width.
func (s *Segment) Fraction() float64 { return s.fraction }

// TargetY returns the segment's destination y value.
func (s *Segment) TargetY() float64 { return s.targetY }

// Shape returns the segment's shaping function.
func (s *Segment) Shape() Shape { return s.shape }

// render fills dst with the segment's samples, running from yStart toward
// the segment target, and returns the segment's local peak.
func (s *Segment) render(dst []float64, yStart float64) (float64, error) {
	return s.shape.Render(dst, yStart, s.targetY)
}
