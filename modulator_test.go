package envelope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-envelope/internal/testutil"
)

const modulatorDefinition = 1024

func TestNoise_ConstructionErrors(t *testing.T) {
	_, err := Noise(nil, DefaultNoisePrecision)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = Noise(FixedAmplitude(1), 0)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestNoise_BoundedByFixedAmplitude(t *testing.T) {
	const amp = 0.5
	mod, err := Noise(FixedAmplitude(amp), DefaultNoisePrecision)
	require.NoError(t, err)

	dst := make([]float64, modulatorDefinition)
	peak, err := mod.Render(dst, 0, 1)
	require.NoError(t, err)

	testutil.AssertNoNaNOrInf(t, dst)
	testutil.AssertAllInRange(t, dst, -amp, amp)
	assert.LessOrEqual(t, peak, amp)
}

func TestNoise_QuantizationGrid(t *testing.T) {
	// With precision p every raw value is k/p for an integer k.
	const precision = 4
	mod, err := Noise(FixedAmplitude(1), precision)
	require.NoError(t, err)

	dst := make([]float64, modulatorDefinition)
	_, err = mod.Render(dst, 0, 1)
	require.NoError(t, err)
	for i, v := range dst {
		scaled := v * precision
		assert.InDelta(t, math.Round(scaled), scaled, 1e-12, "sample %d", i)
	}
}

func TestSine_ConstructionErrors(t *testing.T) {
	_, err := Sine(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = Sine(FixedAmplitude(1), 0)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestSine_QuarterPoints(t *testing.T) {
	mod, err := Sine(FixedAmplitude(1), 1)
	require.NoError(t, err)

	dst := make([]float64, 8)
	peak, err := mod.Render(dst, 0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, dst[0], 1e-12)
	assert.InDelta(t, 1.0, dst[2], 1e-9, "quarter cycle")
	assert.InDelta(t, 0.0, dst[4], 1e-9, "half cycle")
	assert.InDelta(t, -1.0, dst[6], 1e-9, "three quarter cycle")
	assert.InDelta(t, 1.0, peak, 1e-9)
}

func TestSine_InterpolatedAmplitudeRampsUp(t *testing.T) {
	mod, err := Sine(InterpolatedAmplitude{Interpolator: LinearInterpolator{}}, 8)
	require.NoError(t, err)

	dst := make([]float64, modulatorDefinition)
	_, err = mod.Render(dst, 0, 1)
	require.NoError(t, err)

	n := len(dst)
	for i, v := range dst {
		bound := float64(i)/float64(n) + 1e-12
		require.LessOrEqual(t, math.Abs(v), bound, "sample %d", i)
	}
}

func TestChebyshev_ConstructionErrors(t *testing.T) {
	_, err := Chebyshev(nil, 3, ChebyshevFirstKind)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = Chebyshev(FixedAmplitude(1), -1, ChebyshevFirstKind)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = Chebyshev(FixedAmplitude(1), 3, ChebyshevKind(0))
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestChebyshev_FirstKindIsBounded(t *testing.T) {
	mod, err := Chebyshev(FixedAmplitude(1), 5, ChebyshevFirstKind)
	require.NoError(t, err)

	dst := make([]float64, modulatorDefinition)
	_, err = mod.Render(dst, 0, 1)
	require.NoError(t, err)

	testutil.AssertNoNaNOrInf(t, dst)
	testutil.AssertAllInRange(t, dst, -1, 1)

	// T_5 at the segment start (x=0 maps to cos argument pi): cos(5*pi) = -1.
	assert.InDelta(t, -1.0, dst[0], 1e-9)
}

func TestChebyshev_SecondKindEndpointLimits(t *testing.T) {
	// U_n(±1) = (n+1)(±1)^n; the 0/0 form at the edges must take the
	// limit instead of going NaN.
	mod, err := Chebyshev(FixedAmplitude(1), 3, ChebyshevSecondKind)
	require.NoError(t, err)

	dst := make([]float64, modulatorDefinition)
	_, err = mod.Render(dst, 0, 1)
	require.NoError(t, err)
	testutil.AssertNoNaNOrInf(t, dst)

	// x=0 maps to t=pi: U_3(-1) = -4.
	assert.InDelta(t, -4.0, dst[0], 1e-6)

	y, err := mod.At(1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, y, 1e-6, "U_3(1)")
}

func TestModulators_IgnoreSegmentWindow(t *testing.T) {
	// The y window is not part of the modulator pathway: rendering with
	// any window yields the same raw production.
	mod, err := Sine(FixedAmplitude(0.25), 2)
	require.NoError(t, err)

	a := make([]float64, 64)
	b := make([]float64, 64)
	_, err = mod.Render(a, 0, 1)
	require.NoError(t, err)
	_, err = mod.Render(b, -3, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
