package envelope

// Shape parameter bounds
const (
	// dioclesMinA is the exclusive lower bound for the Diocles (cissoid)
	// asymptote parameter; at a = 0.5 the asymptote sits on x = 1.
	dioclesMinA = 0.5

	// typedFactorLimit bounds the GEN16-style tension factor to the
	// conventional [-10, 10] range.
	typedFactorLimit = 10.0

	// typedLinearThreshold is the factor magnitude below which a typed
	// curve collapses to the linear ramp, avoiding 0/0 in the exponential
	// form.
	typedLinearThreshold = 1e-9

	// minSplinePoints is the smallest accepted cubic spline control point
	// list, before the segment start point is prepended.
	minSplinePoints = 3

	// chebyshevEndpointEpsilon guards the second-kind Chebyshev form
	// sin((n+1)t)/sin(t) near t = 0 and t = pi, where the limit
	// (n+1)*(±1)^n applies.
	chebyshevEndpointEpsilon = 1e-9
)

// Modulator defaults
const (
	// DefaultNoisePrecision is the default quantization step count for
	// noise modulators.
	DefaultNoisePrecision = 256
)

// ASCII plot geometry
const (
	asciiPlotRows    = 16
	asciiPlotColumns = 64
)
