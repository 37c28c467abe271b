package core

import "errors"

var (
	// ErrOrderMismatch indicates a matrix operand of the wrong order.
	ErrOrderMismatch = errors.New("core: matrix order mismatch")

	// ErrDegenerateMatrix indicates a submatrix, minor or cofactor request on a 1x1 matrix.
	ErrDegenerateMatrix = errors.New("core: degenerate matrix")

	// ErrNotInvertible indicates an inverse was requested for a singular matrix.
	ErrNotInvertible = errors.New("core: matrix is not invertible")

	// ErrTypeMismatch indicates a tuple was used as a point where a vector is required, or vice versa.
	ErrTypeMismatch = errors.New("core: tuple type mismatch")

	// ErrInvalidConstruction indicates a value could not be built from the given operands.
	ErrInvalidConstruction = errors.New("core: invalid construction")
)
