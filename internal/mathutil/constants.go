package mathutil

const (
	// rootEdgeTolerance widens the [0,1] acceptance window for solver
	// roots so boundary values survive floating-point rounding.
	rootEdgeTolerance = 1e-9

	// bracketEpsilon is the smallest parametric x step treated as a real
	// bracket during marching interpolation.
	bracketEpsilon = 1e-12
)
