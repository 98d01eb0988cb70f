package envelope

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tphakala/go-audio-envelope/internal/mathutil"
)

// Interpolator is a purely algorithmic 0-to-1 ramp used to scale
// modulators over their segment.
type Interpolator interface {
	// Interpolate returns the ramp value at position x in [0, 1].
	Interpolate(x float64) float64
}

// LinearInterpolator ramps linearly from 0 to 1.
type LinearInterpolator struct{}

// Interpolate implements Interpolator.
func (LinearInterpolator) Interpolate(x float64) float64 {
	return mathutil.LinearInterpolation(0, 1, x)
}

// CubicInterpolator ramps from 0 to 1 with a cubic curve.
type CubicInterpolator struct{}

// Interpolate implements Interpolator.
func (CubicInterpolator) Interpolate(x float64) float64 {
	return mathutil.CubicInterpolation(0, 1, x)
}

// Amplitude is the time-varying scaling source of a modulator: either a
// fixed scalar or an interpolated envelope over the segment.
type Amplitude interface {
	// Value returns the amplitude at position x in [0, 1].
	Value(x float64) float64
}

// FixedAmplitude scales a modulator by a constant.
type FixedAmplitude float64

// Value implements Amplitude.
func (a FixedAmplitude) Value(float64) float64 { return float64(a) }

// InterpolatedAmplitude scales a modulator by an interpolator ramp.
type InterpolatedAmplitude struct {
	Interpolator Interpolator
}

// Value implements Amplitude.
func (a InterpolatedAmplitude) Value(x float64) float64 {
	return a.Interpolator.Interpolate(x)
}

// renderModulated fills dst with amplitude(x) * wave(x). Modulators are an
// independent production pathway: the segment's y window is ignored and no
// scale law applies.
func renderModulated(dst []float64, amp Amplitude, wave func(x float64) float64) float64 {
	n := len(dst)
	peak := 0.0
	for i := range dst {
		x := mathutil.Frac(i, n)
		v := amp.Value(x) * wave(x)
		dst[i] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// NoiseModulator produces uniform noise in [-1, 1) quantized to a fixed
// number of steps, scaled by its amplitude source.
type NoiseModulator struct {
	amp       Amplitude
	precision int
}

// Noise returns a noise modulator with the given quantization step count.
// Pass DefaultNoisePrecision when in doubt.
func Noise(amp Amplitude, precision int) (*NoiseModulator, error) {
	if amp == nil {
		return nil, fmt.Errorf("%w: nil amplitude", ErrInvalidShape)
	}
	if precision < 1 {
		return nil, fmt.Errorf("%w: noise precision must be at least 1, got %d", ErrInvalidShape, precision)
	}
	return &NoiseModulator{amp: amp, precision: precision}, nil
}

// At implements Shape; successive calls return independent random values.
func (m *NoiseModulator) At(x float64) (float64, error) {
	return m.amp.Value(x) * m.step(), nil
}

// Render implements Shape.
func (m *NoiseModulator) Render(dst []float64, _, _ float64) (float64, error) {
	return renderModulated(dst, m.amp, func(float64) float64 { return m.step() }), nil
}

func (m *NoiseModulator) step() float64 {
	return float64(rand.IntN(2*m.precision)-m.precision) / float64(m.precision)
}

// SineModulator produces a sine wave over the segment at a frequency
// expressed in cycles per segment, scaled by its amplitude source.
type SineModulator struct {
	amp  Amplitude
	freq float64
}

// Sine returns a sine modulator running freq cycles over the segment.
func Sine(amp Amplitude, freq float64) (*SineModulator, error) {
	if amp == nil {
		return nil, fmt.Errorf("%w: nil amplitude", ErrInvalidShape)
	}
	if freq <= 0 {
		return nil, fmt.Errorf("%w: sine frequency must be positive, got %v", ErrInvalidShape, freq)
	}
	return &SineModulator{amp: amp, freq: freq}, nil
}

// At implements Shape.
func (m *SineModulator) At(x float64) (float64, error) {
	return m.amp.Value(x) * m.wave(x), nil
}

// Render implements Shape.
func (m *SineModulator) Render(dst []float64, _, _ float64) (float64, error) {
	return renderModulated(dst, m.amp, m.wave), nil
}

func (m *SineModulator) wave(x float64) float64 {
	return math.Sin(x * 2 * math.Pi * m.freq)
}

// ChebyshevKind selects the Chebyshev polynomial family.
type ChebyshevKind int

const (
	// ChebyshevFirstKind selects T_n, bounded in [-1, 1] over the segment.
	ChebyshevFirstKind ChebyshevKind = 1

	// ChebyshevSecondKind selects U_n, which grows to ±(n+1) at the
	// segment edges; use it only deliberately.
	ChebyshevSecondKind ChebyshevKind = 2
)

// ChebyshevModulator produces a Chebyshev polynomial of the first or
// second kind evaluated over the segment, scaled by its amplitude source.
type ChebyshevModulator struct {
	amp   Amplitude
	order int
	kind  ChebyshevKind
}

// Chebyshev returns a Chebyshev modulator of the given order and kind.
func Chebyshev(amp Amplitude, order int, kind ChebyshevKind) (*ChebyshevModulator, error) {
	if amp == nil {
		return nil, fmt.Errorf("%w: nil amplitude", ErrInvalidShape)
	}
	if order < 0 {
		return nil, fmt.Errorf("%w: chebyshev order must be non-negative, got %d", ErrInvalidShape, order)
	}
	if kind != ChebyshevFirstKind && kind != ChebyshevSecondKind {
		return nil, fmt.Errorf("%w: chebyshev kind must be 1 or 2, got %d", ErrInvalidShape, int(kind))
	}
	return &ChebyshevModulator{amp: amp, order: order, kind: kind}, nil
}

// At implements Shape.
func (m *ChebyshevModulator) At(x float64) (float64, error) {
	return m.amp.Value(x) * m.wave(x), nil
}

// Render implements Shape.
func (m *ChebyshevModulator) Render(dst []float64, _, _ float64) (float64, error) {
	return renderModulated(dst, m.amp, m.wave), nil
}

func (m *ChebyshevModulator) wave(x float64) float64 {
	t := math.Acos(mathutil.Clamp(x*2-1, -1, 1))
	n := float64(m.order)
	if m.kind == ChebyshevFirstKind {
		return math.Cos(n * t)
	}
	// Second kind: sin((n+1)t)/sin(t) has removable singularities at the
	// segment edges; substitute the limit (n+1)*(±1)^n there.
	s := math.Sin(t)
	if math.Abs(s) < chebyshevEndpointEpsilon {
		limit := n + 1
		if math.Cos(t) < 0 && m.order%2 == 1 {
			limit = -limit
		}
		return limit
	}
	return math.Sin((n+1)*t) / s
}

var (
	_ Shape = (*NoiseModulator)(nil)
	_ Shape = (*SineModulator)(nil)
	_ Shape = (*ChebyshevModulator)(nil)
)
