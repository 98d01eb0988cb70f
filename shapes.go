package envelope

import (
	"fmt"
	"math"
)

// LinearShape is the identity ramp y = x.
type LinearShape struct{}

// Linear returns the linear ramp shape.
func Linear() *LinearShape { return &LinearShape{} }

// At implements Shape.
func (*LinearShape) At(x float64) (float64, error) { return x, nil }

// Render implements Shape.
func (s *LinearShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// CubicShape is the cubic ramp y = x³.
type CubicShape struct{}

// Cubic returns the cubic ramp shape.
func Cubic() *CubicShape { return &CubicShape{} }

// At implements Shape.
func (*CubicShape) At(x float64) (float64, error) { return x * x * x, nil }

// Render implements Shape.
func (s *CubicShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// SmoothShape is the smoothstep ramp y = x²(3-2x), with zero slope at both
// endpoints.
type SmoothShape struct{}

// Smooth returns the smoothstep shape.
func Smooth() *SmoothShape { return &SmoothShape{} }

// At implements Shape.
func (*SmoothShape) At(x float64) (float64, error) { return x * x * (3 - 2*x), nil }

// Render implements Shape.
func (s *SmoothShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// PowerShape is the power ramp y = x^exponent.
type PowerShape struct {
	exponent float64
}

// Power returns a power ramp with the given exponent. The exponent must be
// positive so that the shape leaves 0 at x = 0.
func Power(exponent float64) (*PowerShape, error) {
	if exponent <= 0 {
		return nil, fmt.Errorf("%w: power exponent must be positive, got %v", ErrInvalidShape, exponent)
	}
	return &PowerShape{exponent: exponent}, nil
}

// At implements Shape.
func (s *PowerShape) At(x float64) (float64, error) { return math.Pow(x, s.exponent), nil }

// Render implements Shape.
func (s *PowerShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// DioclesShape is the cissoid of Diocles, y = sqrt(x³/(2a-x)), rescaled so
// the ramp ends exactly at 1 for any valid asymptote parameter.
type DioclesShape struct {
	a    float64
	norm float64 // raw value at x = 1
}

// Diocles returns a cissoid ramp. The asymptote parameter a must exceed
// 0.5 so the denominator stays positive over the whole segment.
func Diocles(a float64) (*DioclesShape, error) {
	if a <= dioclesMinA {
		return nil, fmt.Errorf("%w: diocles parameter must exceed %v, got %v", ErrInvalidShape, dioclesMinA, a)
	}
	return &DioclesShape{a: a, norm: math.Sqrt(1 / (2*a - 1))}, nil
}

// At implements Shape.
func (s *DioclesShape) At(x float64) (float64, error) {
	return math.Sqrt(x*x*x/(2*s.a-x)) / s.norm, nil
}

// Render implements Shape.
func (s *DioclesShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// Cissoid is an alias for Diocles.
func Cissoid(a float64) (*DioclesShape, error) { return Diocles(a) }

// ToxoidShape is the duplicatrix cubic ramp y = x*sqrt((x+2a)/(2a)),
// rescaled to end at 1.
type ToxoidShape struct {
	a    float64
	norm float64
}

// Toxoid returns a duplicatrix cubic ramp; a must be positive.
func Toxoid(a float64) (*ToxoidShape, error) {
	if a <= 0 {
		return nil, fmt.Errorf("%w: toxoid parameter must be positive, got %v", ErrInvalidShape, a)
	}
	return &ToxoidShape{a: a, norm: math.Sqrt((1 + 2*a) / (2 * a))}, nil
}

// At implements Shape.
func (s *ToxoidShape) At(x float64) (float64, error) {
	return x * math.Sqrt((x+2*s.a)/(2*s.a)) / s.norm, nil
}

// Render implements Shape.
func (s *ToxoidShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// CatenaryShape is the hanging-chain ramp y = (cosh(ax)-1)/(cosh(a)-1).
// Larger a bends the curve harder toward the late rise.
type CatenaryShape struct {
	a     float64
	denom float64
}

// Catenary returns a catenary ramp; a must be positive.
func Catenary(a float64) (*CatenaryShape, error) {
	if a <= 0 {
		return nil, fmt.Errorf("%w: catenary parameter must be positive, got %v", ErrInvalidShape, a)
	}
	return &CatenaryShape{a: a, denom: math.Cosh(a) - 1}, nil
}

// At implements Shape.
func (s *CatenaryShape) At(x float64) (float64, error) {
	return (math.Cosh(s.a*x) - 1) / s.denom, nil
}

// Render implements Shape.
func (s *CatenaryShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// TightropeWalkerShape is the rational ramp y = x²(a-b)/(a-bx). The pole
// at x = a/b sits beyond the segment, and moving b toward a sharpens the
// late rise.
type TightropeWalkerShape struct {
	a, b float64
}

// TightropeWalker returns a rational tension ramp. Requires a > 0 and
// b < a so the denominator never vanishes on [0, 1].
func TightropeWalker(a, b float64) (*TightropeWalkerShape, error) {
	if a <= 0 {
		return nil, fmt.Errorf("%w: tightrope walker parameter a must be positive, got %v", ErrInvalidShape, a)
	}
	if b >= a {
		return nil, fmt.Errorf("%w: tightrope walker requires b < a, got a=%v b=%v", ErrInvalidShape, a, b)
	}
	return &TightropeWalkerShape{a: a, b: b}, nil
}

// At implements Shape.
func (s *TightropeWalkerShape) At(x float64) (float64, error) {
	return x * x * (s.a - s.b) / (s.a - s.b*x), nil
}

// Render implements Shape.
func (s *TightropeWalkerShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// GaussianShape is the rising half of a Gaussian bell, offset and rescaled
// so the half-width endpoint maps to 0 and the center to 1.
type GaussianShape struct {
	amplitude float64
	c         float64
	halfWidth float64
	yOffset   float64
}

// Gaussian returns a Gaussian ramp with bell amplitude A and width c; both
// must be positive.
func Gaussian(amplitude, c float64) (*GaussianShape, error) {
	if amplitude <= 0 || c <= 0 {
		return nil, fmt.Errorf("%w: gaussian requires positive amplitude and width, got A=%v c=%v", ErrInvalidShape, amplitude, c)
	}
	halfWidth := math.Sqrt(2 * math.Log(10) * c)
	return &GaussianShape{
		amplitude: amplitude,
		c:         c,
		halfWidth: halfWidth,
		yOffset:   amplitude * math.Exp(-(halfWidth*halfWidth)/(2*c*c)),
	}, nil
}

// At implements Shape.
func (s *GaussianShape) At(x float64) (float64, error) {
	gx := x*s.halfWidth - s.halfWidth
	g := s.amplitude * math.Exp(-(gx*gx)/(2*s.c*s.c))
	return (g - s.yOffset) / (s.amplitude - s.yOffset), nil
}

// Render implements Shape.
func (s *GaussianShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// TypedShape is a GEN16-style exponential tension ramp. The factor sign is
// inverted relative to the usual GEN16 table convention so that positive
// factors produce a slow start for ascending segments.
type TypedShape struct {
	factor float64
}

// Typed returns an exponential tension ramp; factor must lie in [-10, 10].
// A factor near zero degrades to the linear ramp.
func Typed(factor float64) (*TypedShape, error) {
	if factor < -typedFactorLimit || factor > typedFactorLimit {
		return nil, fmt.Errorf("%w: typed factor must be in [-%v, %v], got %v", ErrInvalidShape, typedFactorLimit, typedFactorLimit, factor)
	}
	return &TypedShape{factor: factor}, nil
}

// At implements Shape.
func (s *TypedShape) At(x float64) (float64, error) {
	if math.Abs(s.factor) < typedLinearThreshold {
		return x, nil
	}
	f := -s.factor
	return (1 - math.Exp(f*x)) / (1 - math.Exp(f)), nil
}

// Render implements Shape.
func (s *TypedShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// PolynomialShape evaluates sum(coeffs[i] * x^(N-i)) with the highest
// power first. There is no constant term and no implicit normalization:
// the raw range depends entirely on the coefficients, so callers usually
// normalize the rendered curve afterwards.
type PolynomialShape struct {
	coeffs []float64
}

// Polynomial returns a polynomial shape from coefficients in descending
// power order. At least one coefficient is required.
func Polynomial(coeffs ...float64) (*PolynomialShape, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: polynomial needs at least one coefficient", ErrInvalidShape)
	}
	s := &PolynomialShape{coeffs: make([]float64, len(coeffs))}
	copy(s.coeffs, coeffs)
	return s, nil
}

// At implements Shape.
func (s *PolynomialShape) At(x float64) (float64, error) {
	// Horner over x * (c0 + x*(c1 + ...)) reproduces sum c[i]*x^(N-i).
	res := 0.0
	for _, c := range s.coeffs {
		res = res*x + c
	}
	return res * x, nil
}

// Render implements Shape.
func (s *PolynomialShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}

// UserShape evaluates a caller-supplied callback. The callback should map
// [0, 1] to [0, 1] with f(0) = 0 and f(1) = 1 if endpoint alignment is
// wanted; it is not enforced.
type UserShape struct {
	fn func(x float64) float64
}

// UserDefined returns a shape backed by fn.
func UserDefined(fn func(x float64) float64) (*UserShape, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil callback", ErrInvalidShape)
	}
	return &UserShape{fn: fn}, nil
}

// At implements Shape.
func (s *UserShape) At(x float64) (float64, error) { return s.fn(x), nil }

// Render implements Shape.
func (s *UserShape) Render(dst []float64, yStart, yEnd float64) (float64, error) {
	return renderPointwise(s, dst, yStart, yEnd)
}
