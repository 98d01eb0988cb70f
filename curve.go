package envelope

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// Curve composes an ordered list of segments into one sample buffer.
//
// A curve is built once, rendered with Render, and then queried, combined
// with another curve of the same definition, or normalized in place. The
// sample buffer and peak are only valid after a successful Render.
type Curve struct {
	definition int
	yStart     float64
	segments   []*Segment

	samples  []float64
	peak     float64
	rendered bool
}

// New creates a curve with the given definition (total sample count),
// starting y value and ordered segment list. The definition must be
// positive and at least one segment is required.
func New(definition int, yStart float64, segments []*Segment) (*Curve, error) {
	if definition <= 0 {
		return nil, fmt.Errorf("%w: definition must be positive, got %d", ErrInvalidCurve, definition)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: at least one segment required", ErrInvalidCurve)
	}
	for i, seg := range segments {
		if seg == nil {
			return nil, fmt.Errorf("%w: segment %d is nil", ErrInvalidCurve, i)
		}
	}
	c := &Curve{
		definition: definition,
		yStart:     yStart,
		segments:   make([]*Segment, len(segments)),
	}
	copy(c.segments, segments)
	return c, nil
}

// Definition returns the total sample count of the curve.
func (c *Curve) Definition() int { return c.definition }

// YStart returns the curve's starting y value.
func (c *Curve) YStart() float64 { return c.yStart }

// Peak returns the maximum absolute sample value observed during the last
// render (or computed by the last combination/normalization). It is zero
// before the first Render.
func (c *Curve) Peak() float64 { return c.peak }

// allocate distributes the definition across segments. Fractions are
// treated as relative weights: cumulative rounding guarantees the counts
// sum to the definition exactly, with the final segment absorbing the
// rounding remainder. Individual counts may be zero when a fraction is
// too small for the definition.
func (c *Curve) allocate() []int {
	total := 0.0
	for _, seg := range c.segments {
		total += seg.fraction
	}

	counts := make([]int, len(c.segments))
	cum := 0.0
	prev := 0
	for i, seg := range c.segments {
		cum += seg.fraction / total
		next := int(math.Round(cum * float64(c.definition)))
		counts[i] = next - prev
		prev = next
	}
	// Telescoping leaves any residue on the last segment.
	counts[len(counts)-1] += c.definition - prev
	return counts
}

// Render computes the whole sample buffer from scratch: it walks the
// segments in order, hands each one its slice of the buffer and the
// running start y (the previous segment's target, or the curve's yStart
// for the first), and accumulates the global peak. Rendering is
// idempotent but never incremental. On failure the buffer contents are
// unspecified and the curve stays unrendered.
func (c *Curve) Render() error {
	if len(c.segments) == 0 {
		// Derived curves carry no segments and cannot be re-rendered.
		return fmt.Errorf("%w: curve has no segments to render", ErrInvalidCurve)
	}
	if c.samples == nil {
		c.samples = make([]float64, c.definition)
	}
	c.rendered = false

	counts := c.allocate()
	offset := 0
	runningY := c.yStart
	peak := 0.0
	for i, seg := range c.segments {
		n := counts[i]
		if n > 0 {
			p, err := seg.render(c.samples[offset:offset+n], runningY)
			if err != nil {
				return fmt.Errorf("segment %d: %w", i, err)
			}
			if p > peak {
				peak = p
			}
			offset += n
		}
		runningY = seg.targetY
	}

	c.peak = peak
	c.rendered = true
	return nil
}

// Sample returns sample i of the rendered buffer. It fails before the
// first Render and for indexes outside [0, definition).
func (c *Curve) Sample(i int) (float64, error) {
	if !c.rendered {
		return 0, ErrNotRendered
	}
	if i < 0 || i >= c.definition {
		return 0, fmt.Errorf("%w: index %d, definition %d", ErrIndexOutOfRange, i, c.definition)
	}
	return c.samples[i], nil
}

// Samples returns the rendered buffer. The slice is owned by the curve
// and must be treated as read-only; it is invalidated by the next Render.
func (c *Curve) Samples() ([]float64, error) {
	if !c.rendered {
		return nil, ErrNotRendered
	}
	return c.samples, nil
}

// combineOp enumerates the elementwise combination operators.
type combineOp int

const (
	opAdd combineOp = iota
	opSub
	opMul
	opDiv
)

// combine produces a derived curve from two rendered curves of the same
// definition. The derived curve has no segments of its own: its buffer is
// the elementwise result and its peak is recomputed from it.
func (c *Curve) combine(o *Curve, op combineOp) (*Curve, error) {
	if err := c.checkCombinable(o, op); err != nil {
		return nil, err
	}

	d := &Curve{
		definition: c.definition,
		yStart:     c.yStart,
		samples:    make([]float64, c.definition),
		rendered:   true,
	}
	copy(d.samples, c.samples)
	applyOp(d.samples, o.samples, op)
	d.peak = peakOf(d.samples)
	return d, nil
}

// checkCombinable validates a pending elementwise combination.
func (c *Curve) checkCombinable(o *Curve, op combineOp) error {
	if !c.rendered || !o.rendered {
		return ErrNotRendered
	}
	if c.definition != o.definition {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, c.definition, o.definition)
	}
	if op == opDiv {
		// Refuse up front instead of silently producing infinities.
		for i, v := range o.samples {
			if v == 0 {
				return fmt.Errorf("%w: divisor sample %d", ErrDivideByZero, i)
			}
		}
	}
	return nil
}

func applyOp(dst, src []float64, op combineOp) {
	switch op {
	case opAdd:
		floats.Add(dst, src)
	case opSub:
		floats.Sub(dst, src)
	case opMul:
		floats.Mul(dst, src)
	case opDiv:
		floats.Div(dst, src)
	}
}

// Add returns a new curve whose samples are the elementwise sum.
func (c *Curve) Add(o *Curve) (*Curve, error) { return c.combine(o, opAdd) }

// Sub returns a new curve whose samples are the elementwise difference.
func (c *Curve) Sub(o *Curve) (*Curve, error) { return c.combine(o, opSub) }

// Mul returns a new curve whose samples are the elementwise product.
func (c *Curve) Mul(o *Curve) (*Curve, error) { return c.combine(o, opMul) }

// Div returns a new curve whose samples are the elementwise quotient. It
// fails with ErrDivideByZero when o contains a zero sample.
func (c *Curve) Div(o *Curve) (*Curve, error) { return c.combine(o, opDiv) }

// combineInPlace applies the operator to the receiver's own buffer.
func (c *Curve) combineInPlace(o *Curve, op combineOp) error {
	if err := c.checkCombinable(o, op); err != nil {
		return err
	}
	applyOp(c.samples, o.samples, op)
	c.peak = peakOf(c.samples)
	return nil
}

// AddInPlace adds o's samples into the receiver.
func (c *Curve) AddInPlace(o *Curve) error { return c.combineInPlace(o, opAdd) }

// SubInPlace subtracts o's samples from the receiver.
func (c *Curve) SubInPlace(o *Curve) error { return c.combineInPlace(o, opSub) }

// MulInPlace multiplies the receiver's samples by o's.
func (c *Curve) MulInPlace(o *Curve) error { return c.combineInPlace(o, opMul) }

// DivInPlace divides the receiver's samples by o's. It fails with
// ErrDivideByZero when o contains a zero sample, leaving the receiver
// untouched.
func (c *Curve) DivInPlace(o *Curve) error { return c.combineInPlace(o, opDiv) }

// NormalizeY linearly rescales the rendered buffer so its current
// [min, max] span maps onto [min(a,b), max(a,b)]. The start y and segment
// targets follow the same affine map so later introspection stays
// consistent. Shapes are not re-invoked, and normalizing to the same
// range twice is a no-op. A flat buffer maps every sample to the new
// minimum.
func (c *Curve) NormalizeY(a, b float64) error {
	if !c.rendered {
		return ErrNotRendered
	}
	newMin, newMax := math.Min(a, b), math.Max(a, b)
	curMin := floats.Min(c.samples)
	curMax := floats.Max(c.samples)

	span := curMax - curMin
	if span == 0 {
		for i := range c.samples {
			c.samples[i] = newMin
		}
		c.yStart = newMin
		for _, seg := range c.segments {
			seg.targetY = newMin
		}
		c.peak = math.Abs(newMin)
		return nil
	}

	k := (newMax - newMin) / span
	shift := newMin - curMin*k
	f64.Scale(c.samples, c.samples, k)
	floats.AddConst(shift, c.samples)

	c.yStart = c.yStart*k + shift
	for _, seg := range c.segments {
		seg.targetY = seg.targetY*k + shift
	}
	c.peak = peakOf(c.samples)
	return nil
}
