package srs

import "errors"

// ErrMalformed is returned, wrapped with contextual detail, whenever an SRS
// fails validation: a capacity that exceeds what a file provides, a missing
// generator, or a point that is off-curve or outside its subgroup. SRS
// loading failures are fatal to the caller's startup path, not something the
// core recovers from internally.
var ErrMalformed = errors.New("srs: malformed structured reference string")
