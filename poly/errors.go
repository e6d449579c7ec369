package poly

import "errors"

var (
	// ErrInexactDivision is returned by Div when a nonzero remainder remains.
	ErrInexactDivision = errors.New("poly: division left a nonzero remainder")

	// ErrDuplicateAbscissa is returned by Interpolate when two x-coordinates coincide.
	ErrDuplicateAbscissa = errors.New("poly: duplicate abscissa in interpolation set")
)
