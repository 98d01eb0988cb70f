package envelope

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/tphakala/go-audio-envelope/internal/mathutil"
)

// CubicSplineShape interpolates a natural cubic spline through a list of
// control points with relative x offsets. At render time the segment's
// start point (0, yStart) is prepended and each offset is accumulated
// into an absolute knot position, so irregular spacing is fine as long as
// every offset is positive. The spline ends on the last control point's
// y; make it coincide with the segment target for a continuous curve.
type CubicSplineShape struct {
	points []Point
}

// CubicSpline returns a spline shape. At least three control points are
// required and every relative x offset must be positive.
func CubicSpline(points []Point) (*CubicSplineShape, error) {
	if len(points) < minSplinePoints {
		return nil, fmt.Errorf("%w: cubic spline needs at least %d control points, got %d",
			ErrInvalidShape, minSplinePoints, len(points))
	}
	for i, p := range points {
		if p.X <= 0 {
			return nil, fmt.Errorf("%w: cubic spline x offsets must be positive, point %d has %v",
				ErrInvalidShape, i, p.X)
		}
	}
	s := &CubicSplineShape{points: make([]Point, len(points))}
	copy(s.points, points)
	return s, nil
}

// fit builds the natural cubic interpolant over absolute knot positions.
// The returned xMax is the absolute x of the last knot.
func (s *CubicSplineShape) fit(yStart float64) (*interp.NaturalCubic, float64, error) {
	xs := make([]float64, len(s.points)+1)
	ys := make([]float64, len(s.points)+1)
	xs[0], ys[0] = 0, yStart
	acc := 0.0
	for i, p := range s.points {
		acc += p.X
		xs[i+1] = acc
		ys[i+1] = p.Y
	}

	var nc interp.NaturalCubic
	if err := nc.Fit(xs, ys); err != nil {
		return nil, 0, fmt.Errorf("%w: spline fit: %v", ErrInvalidShape, err)
	}
	return &nc, acc, nil
}

// At evaluates the spline on the unit y window at normalized position x.
func (s *CubicSplineShape) At(x float64) (float64, error) {
	nc, xMax, err := s.fit(0)
	if err != nil {
		return 0, err
	}
	return nc.Predict(mathutil.Clamp(x, 0, 1) * xMax), nil
}

// Render implements Shape with the whole-buffer contract: one predicted y
// per output sample index, no generic scale law. yEnd is unused because
// the final knot, not the segment window, decides where the spline lands.
func (s *CubicSplineShape) Render(dst []float64, yStart, _ float64) (float64, error) {
	nc, xMax, err := s.fit(yStart)
	if err != nil {
		return 0, err
	}
	n := len(dst)
	peak := 0.0
	for i := range dst {
		v := nc.Predict(mathutil.Frac(i, n) * xMax)
		dst[i] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak, nil
}

// CatmullRomShape is a Catmull-Rom spline ramp through (0, yStart) and
// (1, yEnd), steered by two outer control points that set the tangents.
// Both x and y are cubic in the parameter, so sampling uses the same
// bounded marching interpolation as the Bezier shapes.
type CatmullRomShape struct {
	p0, p3 Point
}

// CatmullRom returns a Catmull-Rom shape. The outer control points must
// lie outside the segment: p0.X < 0 and p3.X > 1.
func CatmullRom(p0, p3 Point) (*CatmullRomShape, error) {
	if p0.X >= 0 {
		return nil, fmt.Errorf("%w: catmull-rom first outer point must have x < 0, got %v", ErrInvalidShape, p0.X)
	}
	if p3.X <= 1 {
		return nil, fmt.Errorf("%w: catmull-rom last outer point must have x > 1, got %v", ErrInvalidShape, p3.X)
	}
	return &CatmullRomShape{p0: p0, p3: p3}, nil
}

// axes returns the x and y cubic coefficients of the uniform 4-point
// blend with inner points (0, yStart) and (1, yEnd).
func (s *CatmullRomShape) axes(yStart, yEnd float64) (x, y cubicCoeffs) {
	blend := func(p0, p1, p2, p3 float64) cubicCoeffs {
		return cubicCoeffs{
			c3: 0.5 * (-p0 + 3*p1 - 3*p2 + p3),
			c2: 0.5 * (2*p0 - 5*p1 + 4*p2 - p3),
			c1: 0.5 * (-p0 + p2),
			c0: p1,
		}
	}
	x = blend(s.p0.X, 0, 1, s.p3.X)
	y = blend(s.p0.Y, yStart, yEnd, s.p3.Y)
	return x, y
}

// At inverts the parametric x for the unit y window with the cubic
// solver and evaluates y at the found parameter.
func (s *CatmullRomShape) At(x float64) (float64, error) {
	xc, yc := s.axes(0, 1)
	t, err := xc.invert(x)
	if err != nil {
		return 0, err
	}
	return yc.eval(t), nil
}

// Render implements Shape by parametric marching.
func (s *CatmullRomShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	xc, yc := s.axes(yStart, yEnd)
	return parametricRender(dst, func(t float64) (float64, float64) {
		return xc.eval(t), yc.eval(t)
	}), nil
}

var (
	_ Shape = (*CubicSplineShape)(nil)
	_ Shape = (*CatmullRomShape)(nil)
)
