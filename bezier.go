package envelope

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-envelope/internal/mathutil"
)

// Point is an immutable (x, y) control datum for Bezier and spline
// shapes. Coordinates are meaningful in segment-local [0, 1] space except
// for Catmull-Rom outer points, whose x must lie outside [0, 1].
type Point struct {
	X, Y float64
}

// parametricRender fills dst by marching the parameter t forward in 1/n
// steps and linearly interpolating y at each requested output x once the
// parametric x bracket contains it. The march assumes x(t) is monotonic;
// it is bounded by n steps regardless, so control points that fold x back
// degrade to the last bracket instead of spinning.
func parametricRender(dst []float64, at func(t float64) (x, y float64)) float64 {
	n := len(dst)
	peak := 0.0

	k := 0
	x1, y1 := at(0)
	x2, y2 := at(mathutil.Frac(1, n))
	for i := range dst {
		x := mathutil.Frac(i, n)
		for k < n-1 && x2 < x {
			k++
			x1, y1 = x2, y2
			x2, y2 = at(mathutil.Frac(k+1, n))
		}
		rel := mathutil.RelativePosition(x1, x2, x)
		v := mathutil.LinearInterpolation(y1, y2, rel)
		dst[i] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// cubicCoeffs holds one axis of a cubic parametric polynomial
// c3*t³ + c2*t² + c1*t + c0.
type cubicCoeffs struct {
	c3, c2, c1, c0 float64
}

func (c cubicCoeffs) eval(t float64) float64 {
	return ((c.c3*t+c.c2)*t+c.c1)*t + c.c0
}

// invert solves c(t) = v for the first root in [0, 1].
func (c cubicCoeffs) invert(v float64) (float64, error) {
	roots, n := mathutil.SolveCubic(c.c0-v, c.c1, c.c2, c.c3)
	if t, ok := mathutil.FirstRootIn01(roots[:n]); ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: x=%v not covered by parametric x(t)", ErrNoRoot, v)
}

// QuadraticBezierShape is a Bezier ramp steered by a single control
// point, formulated as a cubic with the control point duplicated. The
// parametric x must stay monotonic over the segment, which holds whenever
// the control point x lies in [0, 1]; this is a documented constraint,
// not an enforced one.
type QuadraticBezierShape struct {
	cp Point
}

// QuadraticBezier returns a one-control-point Bezier shape.
func QuadraticBezier(cp Point) *QuadraticBezierShape {
	return &QuadraticBezierShape{cp: cp}
}

// coeffs resolves the cubic coefficients for a y window analytically, once
// per render.
func (s *QuadraticBezierShape) coeffs(yStart, yEnd float64) (x, y cubicCoeffs) {
	cx := 3 * s.cp.X
	x = cubicCoeffs{c3: 1, c2: -cx, c1: cx}
	cy := 3 * (s.cp.Y - yStart)
	y = cubicCoeffs{c3: yEnd - yStart, c2: -cy, c1: cy, c0: yStart}
	return x, y
}

// At inverts the parametric x for the unit y window and returns y(t).
func (s *QuadraticBezierShape) At(x float64) (float64, error) {
	xc, yc := s.coeffs(0, 1)
	t, err := xc.invert(x)
	if err != nil {
		return 0, err
	}
	return yc.eval(t), nil
}

// Render implements Shape by parametric marching.
func (s *QuadraticBezierShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	xc, yc := s.coeffs(yStart, yEnd)
	return parametricRender(dst, func(t float64) (float64, float64) {
		return xc.eval(t), yc.eval(t)
	}), nil
}

// CubicBezierShape is a Bezier ramp steered by two control points. As
// with the quadratic shape, the caller must choose control points that
// keep x(t) monotonic over [0, 1].
type CubicBezierShape struct {
	cp1, cp2 Point
}

// CubicBezier returns a two-control-point Bezier shape.
func CubicBezier(cp1, cp2 Point) *CubicBezierShape {
	return &CubicBezierShape{cp1: cp1, cp2: cp2}
}

func (s *CubicBezierShape) coeffs(yStart, yEnd float64) (x, y cubicCoeffs) {
	x = cubicCoeffs{
		c3: 3*s.cp1.X - 3*s.cp2.X + 1,
		c2: -6*s.cp1.X + 3*s.cp2.X,
		c1: 3 * s.cp1.X,
	}
	y = cubicCoeffs{
		c3: -yStart + 3*s.cp1.Y - 3*s.cp2.Y + yEnd,
		c2: 3*yStart - 6*s.cp1.Y + 3*s.cp2.Y,
		c1: -3*yStart + 3*s.cp1.Y,
		c0: yStart,
	}
	return x, y
}

// At inverts the parametric x with the cubic root solver for the unit y
// window. It fails with ErrNoRoot when no real root lands in [0, 1],
// which indicates malformed (x-reversing) control points.
func (s *CubicBezierShape) At(x float64) (float64, error) {
	xc, yc := s.coeffs(0, 1)
	t, err := xc.invert(x)
	if err != nil {
		return 0, err
	}
	return yc.eval(t), nil
}

// Render implements Shape by parametric marching.
func (s *CubicBezierShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	xc, yc := s.coeffs(yStart, yEnd)
	return parametricRender(dst, func(t float64) (float64, float64) {
		return xc.eval(t), yc.eval(t)
	}), nil
}

var (
	_ Shape = (*QuadraticBezierShape)(nil)
	_ Shape = (*CubicBezierShape)(nil)
)
