package curve

import "errors"

var (
	// ErrNotOnCurve is returned when decoded coordinates do not satisfy the curve equation.
	ErrNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrNotInSubgroup is returned when a point is on the curve but outside the prime-order subgroup.
	ErrNotInSubgroup = errors.New("curve: point is not in the prime-order subgroup")

	// ErrEmptyPairing is returned by PairingCheck when given no pairs.
	ErrEmptyPairing = errors.New("curve: pairing check requires at least one pair")
)
