package proof

import "errors"

// ErrOutOfRange is returned by the verifier-boundary packers when a scalar
// or coordinate is not strictly less than the BN254 scalar field modulus.
var ErrOutOfRange = errors.New("proof: value out of range")
