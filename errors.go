package advisor

import "errors"

// The engine reports every failure as one of two kinds, wrapped with
// fmt.Errorf("%w: ...") so that callers can classify with errors.Is.
var (
	// ErrInvalidInput marks out-of-domain parameter values: negative
	// years, ages outside the valid range, rates at or below -100%,
	// missing or mistyped fields in a parameter map.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerate marks computations whose denominator vanishes for a
	// legal input, such as a return on investment with zero total
	// invested. These are reported explicitly, never allowed to
	// propagate as a division fault.
	ErrDegenerate = errors.New("degenerate computation")
)
