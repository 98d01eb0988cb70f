package envelope

import "errors"

// Common errors returned by the envelope package. All failures are local
// and synchronous; none are retried internally.
var (
	// ErrInvalidCurve indicates invalid curve construction parameters.
	ErrInvalidCurve = errors.New("invalid curve configuration")

	// ErrInvalidSegment indicates invalid segment construction parameters.
	ErrInvalidSegment = errors.New("invalid segment configuration")

	// ErrInvalidShape indicates shape parameters outside their documented
	// range, including too few spline control points.
	ErrInvalidShape = errors.New("invalid shape parameters")

	// ErrNoRoot indicates Bezier inversion found no real root in [0,1].
	// This points at malformed control points rather than a transient
	// condition.
	ErrNoRoot = errors.New("no real root in [0,1]")

	// ErrDimensionMismatch indicates two curves of different definition
	// were combined.
	ErrDimensionMismatch = errors.New("curve definitions differ")

	// ErrDivideByZero indicates elementwise division hit a zero sample.
	ErrDivideByZero = errors.New("division by zero sample")

	// ErrIndexOutOfRange indicates a sample index beyond the buffer.
	ErrIndexOutOfRange = errors.New("sample index out of range")

	// ErrNotRendered indicates a query or mutation that requires a prior
	// Render call.
	ErrNotRendered = errors.New("curve not rendered")
)
