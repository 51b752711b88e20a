package partition

import "errors"

var (
	// ErrInvalidParameter flags out-of-range policy parameters such as
	// negative partition counts or a non-positive frequency cutoff.
	ErrInvalidParameter = errors.New("partition: invalid parameter")

	// ErrShapeMismatch flags auxiliary fields whose outer dimensions do
	// not match the spectra being partitioned.
	ErrShapeMismatch = errors.New("partition: shape mismatch")

	// ErrUnimplemented flags partition methods that are declared but carry
	// no implementation.
	ErrUnimplemented = errors.New("partition: method not implemented")
)
