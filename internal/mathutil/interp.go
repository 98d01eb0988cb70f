package mathutil

// Frac returns sample index i of an n-sample segment as a normalized
// position in [0, 1). The right endpoint is exclusive: the last sample of
// a segment sits at (n-1)/n, and the following segment starts exactly at
// the target value.
func Frac(i, n int) float64 {
	return float64(i) / float64(n)
}

// LinearInterpolation blends linearly between a and b for x in [0, 1].
func LinearInterpolation(a, b, x float64) float64 {
	return a + (b-a)*x
}

// CubicInterpolation blends between a and b with a cubic ramp, slow to
// leave a and steep into b. Used as the cubic amplitude envelope for
// modulators.
func CubicInterpolation(a, b, x float64) float64 {
	return a + (b-a)*x*x*x
}

// RelativePosition maps x into the bracket [x1, x2] as a fraction in
// [0, 1]. A collapsed bracket reports 0 so that callers interpolating a
// degenerate parametric step reproduce the left sample instead of NaN.
func RelativePosition(x1, x2, x float64) float64 {
	if x2-x1 < bracketEpsilon {
		return 0
	}
	return Clamp((x-x1)/(x2-x1), 0, 1)
}
