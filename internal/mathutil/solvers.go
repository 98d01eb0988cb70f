// Package mathutil provides numeric helpers for curve evaluation:
// polynomial root solvers used by Bezier inversion, and the small
// interpolation primitives shared by the shape catalog and modulators.
package mathutil

import (
	"math"
)

// SolveQuadratic finds the real roots of c0 + c1*x + c2*x² = 0.
// It returns the roots in ascending order along with their count.
//
// The implementation tries to stay numerically robust: when c2 is zero or
// tiny enough that scaling overflows, the equation is treated as linear.
// When every coefficient is zero the single root 0 is reported.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// Degenerate quadratic, fall back to the linear term.
		root := -c0 / c1
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		}
		if c0 == 0 && c1 == 0 {
			return [2]float64{0}, 1
		}
		return [2]float64{}, 0
	}

	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	switch {
	case math.IsInf(arg, 0):
		// sc1*sc1 overflowed; one root comes from sc1*x + x² = 0 and the
		// second from the product of roots.
		root1 = -sc1
	case arg < 0:
		return [2]float64{}, 0
	case arg == 0:
		return [2]float64{-0.5 * sc1}, 1
	default:
		// Avoids cancellation between -sc1 and the discriminant.
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}

	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	if root2 < root1 {
		root1, root2 = root2, root1
	}
	return [2]float64{root1, root2}, 2
}

// SolveCubic finds the real roots of c0 + c1*x + c2*x² + c3*x³ = 0.
// It returns up to three roots and their count. When c3 is zero or small
// enough that normalization overflows, the quadratic solver takes over.
//
// The depressed-cubic reduction follows the classic discriminant split:
// one real root for negative discriminant (Cardano), a double root at
// zero, and the trigonometric three-root form otherwise.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	recip := 1.0 / c3
	sc2 := c2 * (recip / 3.0)
	sc1 := c1 * (recip / 3.0)
	sc0 := c0 * recip
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsInf(sc2, 0) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}

	// Reduce to the depressed form following Blinn's formulation.
	d0 := sc1 - sc2*sc2
	d1 := sc0 - sc1*sc2
	d2 := sc2*sc0 - sc1*sc1
	disc := 4.0*d0*d2 - d1*d1
	de := d1 - 2.0*sc2*d0

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - sc2}, 1
	case disc == 0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - sc2, -2.0*t1 - sc2}, 2
	default:
		th := math.Atan2(math.Sqrt(disc), -de) / 3.0
		thSin, thCos := math.Sincos(th)
		ss3 := thSin * math.Sqrt(3.0)
		t := 2.0 * math.Sqrt(-d0)
		return [3]float64{
			t*thCos - sc2,
			t*0.5*(-thCos+ss3) - sc2,
			t*0.5*(-thCos-ss3) - sc2,
		}, 3
	}
}

// FirstRootIn01 picks the first root that lies inside [0,1], allowing a
// small tolerance at the edges so that roots computed for x exactly at a
// segment boundary are not lost to rounding. The boolean reports success.
func FirstRootIn01(roots []float64) (float64, bool) {
	for _, r := range roots {
		if r >= -rootEdgeTolerance && r <= 1+rootEdgeTolerance {
			return Clamp(r, 0, 1), true
		}
	}
	return 0, false
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
