package commitment

import "errors"

// ErrTooManyCoefficients is returned when a polynomial has more
// coefficients than the SRS has powers to commit to.
var ErrTooManyCoefficients = errors.New("commitment: polynomial degree exceeds SRS capacity")
