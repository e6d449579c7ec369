package field

import "errors"

var (
	// ErrNoInverse is returned by Inverse when called on the zero element.
	ErrNoInverse = errors.New("field: zero has no multiplicative inverse")
)
