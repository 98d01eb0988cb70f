// Package envelope renders segmented envelope curves into sample buffers
// for audio-parameter automation.
//
// A curve is described as an ordered list of segments. Each segment covers
// a fraction of the total buffer, ends at a target y value, and is shaped
// by one of roughly twenty shaping functions: polynomial and power
// families, rational curves (cissoid, toxoid, catenary, tightrope-walker),
// window halves (Hann, Hamming, Blackman), Gaussian, GEN16-style typed
// exponentials, user callbacks, quadratic and cubic Beziers, cubic splines
// and Catmull-Rom splines. Rendering stitches the segments into one
// continuous float64 buffer and tracks the peak absolute value for
// normalization and export scaling.
//
// # Quick Start
//
// Build a two-segment attack/decay envelope and render it:
//
//	seg1, _ := envelope.NewSegment(0.25, 1.0, envelope.Cubic())
//	shape, _ := envelope.Diocles(1.0)
//	seg2, _ := envelope.NewSegment(0.75, 0.0, shape)
//
//	c, err := envelope.New(16384, 0, []*envelope.Segment{seg1, seg2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := c.Render(); err != nil {
//	    log.Fatal(err)
//	}
//	samples, _ := c.Samples()
//
// # Sampling Convention
//
// Sample i of an n-sample segment is taken at x = i/n. The left endpoint
// is exact: the first sample of a segment equals its start value. The
// right endpoint is exclusive; the segment approaches its target, and the
// next segment (or nothing) starts exactly on it. A 4-sample linear ramp
// from 0 to 1 renders [0, 0.25, 0.5, 0.75].
//
// # Shapes
//
// Pointwise shapes are defined for the ascending case on the unit square
// and scaled into the segment's y window; descending segments mirror the
// raw shape before scaling, so each shaping function is written once.
// Parametric shapes (Bezier, Catmull-Rom) march an internal parameter and
// interpolate the output at each requested x. Parametric x must not
// reverse over the segment; control points that fold x back are not
// rejected, but the march is bounded and degrades to the last available
// bracket instead of looping.
//
// Shapes are stateless: the y window is threaded through each Render call
// rather than stored on the shape, so one shape instance can be shared
// between segments, curves and goroutines.
//
// # Curve Operations
//
// Rendered curves of equal definition combine elementwise with Add, Sub,
// Mul and Div (plus in-place variants). NormalizeY rescales a rendered
// buffer to a new y range without re-invoking the shapes. Inverted wraps
// any shape with its reflection about the segment diagonal. AsciiArt
// renders a terminal plot for debugging.
//
// # Modulators
//
// Modulator shapes produce amplitude(x) * waveform(x) instead of a
// monotonic transition: uniform quantized noise, sine at a frequency
// ratio, and Chebyshev polynomials of the first or second kind, scaled by
// either a fixed amplitude or a time-varying interpolated envelope.
//
// # Errors
//
// Constructors validate their parameters and all failures are synchronous
// and final: ErrInvalidCurve, ErrInvalidSegment and ErrInvalidShape for
// construction, ErrNoRoot for Bezier inversion without a real root in
// [0,1], ErrDimensionMismatch and ErrDivideByZero for combination, and
// ErrIndexOutOfRange / ErrNotRendered for queries. A failed render leaves
// the buffer unspecified; render again after fixing the input.
package envelope
