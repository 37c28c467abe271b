// Package transform composes elementary 4x4 affine matrices into a single
// cumulative transformation.
package transform

import (
	"fmt"

	"github.com/df07/go-raykernel/pkg/core"
)

// Transformation holds the cumulative product of every matrix added so far.
// Matrices apply to tuples in the order they were added.
type Transformation struct {
	matrix  *core.Matrix
	inverse *core.Matrix
	invErr  error
	steps   int
}

// New creates an identity transformation
func New() *Transformation {
	return &Transformation{
		matrix:  core.Identity(4),
		inverse: core.Identity(4),
	}
}

// Add appends a 4x4 matrix: cumulative = m × cumulative
func (t *Transformation) Add(m *core.Matrix) error {
	if m.Order() != 4 {
		return fmt.Errorf("add order %d transformation: %w", m.Order(), core.ErrOrderMismatch)
	}
	combined, err := m.Multiply(t.matrix)
	if err != nil {
		return err
	}
	t.matrix = combined
	t.steps++

	// Inverse is refreshed here so lookups during rendering never write.
	t.inverse, t.invErr = combined.Inverse()
	return nil
}

// Apply returns cumulative × tuple
func (t *Transformation) Apply(tuple core.Tuple) (core.Tuple, error) {
	return t.matrix.MultiplyTuple(tuple)
}

// Matrix returns the cumulative matrix
func (t *Transformation) Matrix() *core.Matrix {
	return t.matrix
}

// Inverse returns the inverse of the cumulative matrix, or core.ErrNotInvertible
// when a degenerate transform (such as a zero scale) has been added
func (t *Transformation) Inverse() (*core.Matrix, error) {
	if t.invErr != nil {
		return nil, t.invErr
	}
	return t.inverse, nil
}

// Len returns the number of matrices added
func (t *Transformation) Len() int {
	return t.steps
}
