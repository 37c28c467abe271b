package core

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a square matrix of arbitrary order stored row-major.
// Operations never modify their receiver except Set.
type Matrix struct {
	order int
	cells []float64
}

// NewMatrix creates a matrix of the given order from row-major cells
func NewMatrix(order int, cells ...float64) (*Matrix, error) {
	if order < 1 {
		return nil, fmt.Errorf("matrix order %d: %w", order, ErrInvalidConstruction)
	}
	if len(cells) != order*order {
		return nil, fmt.Errorf("matrix of order %d needs %d cells, got %d: %w",
			order, order*order, len(cells), ErrInvalidConstruction)
	}
	m := &Matrix{order: order, cells: make([]float64, len(cells))}
	copy(m.cells, cells)
	return m, nil
}

// Identity returns the identity matrix of the given order
func Identity(order int) *Matrix {
	m := zeroMatrix(order)
	for i := 0; i < order; i++ {
		m.cells[i*order+i] = 1.0
	}
	return m
}

func zeroMatrix(order int) *Matrix {
	return &Matrix{order: order, cells: make([]float64, order*order)}
}

// Order returns the number of rows (and columns)
func (m *Matrix) Order() int {
	return m.order
}

// At returns the cell at row, col
func (m *Matrix) At(row, col int) float64 {
	return m.cells[row*m.order+col]
}

// Set writes the cell at row, col
func (m *Matrix) Set(row, col int, value float64) {
	m.cells[row*m.order+col] = value
}

// Equal reports whether both matrices have the same order and identical cells
func (m *Matrix) Equal(other *Matrix) bool {
	if m.order != other.order {
		return false
	}
	for i, v := range m.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether both matrices have the same order and every cell
// differs by at most epsilon
func (m *Matrix) ApproxEqual(other *Matrix, epsilon float64) bool {
	if m.order != other.order {
		return false
	}
	for i, v := range m.cells {
		if math.Abs(v-other.cells[i]) > epsilon {
			return false
		}
	}
	return true
}

// Multiply returns m × other
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if m.order != other.order {
		return nil, fmt.Errorf("multiply order %d by order %d: %w", m.order, other.order, ErrOrderMismatch)
	}
	n := m.order
	result := zeroMatrix(n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += m.cells[row*n+k] * other.cells[k*n+col]
			}
			result.cells[row*n+col] = sum
		}
	}
	return result, nil
}

// MultiplyTuple returns m × t. Only 4x4 matrices can multiply a tuple.
func (m *Matrix) MultiplyTuple(t Tuple) (Tuple, error) {
	if m.order != 4 {
		return Tuple{}, fmt.Errorf("multiply tuple by order %d: %w", m.order, ErrOrderMismatch)
	}
	c := m.cells
	return Tuple{
		X: c[0]*t.X + c[1]*t.Y + c[2]*t.Z + c[3]*t.W,
		Y: c[4]*t.X + c[5]*t.Y + c[6]*t.Z + c[7]*t.W,
		Z: c[8]*t.X + c[9]*t.Y + c[10]*t.Z + c[11]*t.W,
		W: c[12]*t.X + c[13]*t.Y + c[14]*t.Z + c[15]*t.W,
	}, nil
}

// Transpose returns the matrix with rows and columns swapped
func (m *Matrix) Transpose() *Matrix {
	n := m.order
	result := zeroMatrix(n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			result.cells[row*n+col] = m.cells[col*n+row]
		}
	}
	return result
}

// Submatrix returns a copy with the given row and column removed
func (m *Matrix) Submatrix(row, col int) (*Matrix, error) {
	if m.order == 1 {
		return nil, fmt.Errorf("submatrix(%d, %d): %w", row, col, ErrDegenerateMatrix)
	}
	n := m.order - 1
	result := zeroMatrix(n)
	i := 0
	for r := 0; r < m.order; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.order; c++ {
			if c == col {
				continue
			}
			result.cells[i] = m.cells[r*m.order+c]
			i++
		}
	}
	return result, nil
}

// Minor returns the determinant of Submatrix(row, col)
func (m *Matrix) Minor(row, col int) (float64, error) {
	sub, err := m.Submatrix(row, col)
	if err != nil {
		return 0, err
	}
	return sub.Determinant(), nil
}

// Cofactor returns the minor at row, col, negated when row+col is odd
func (m *Matrix) Cofactor(row, col int) (float64, error) {
	minor, err := m.Minor(row, col)
	if err != nil {
		return 0, err
	}
	if (row+col)%2 == 1 {
		return -minor, nil
	}
	return minor, nil
}

// Determinant computes the determinant by Laplace expansion along the first row
func (m *Matrix) Determinant() float64 {
	if m.order == 1 {
		return m.cells[0]
	}
	det := 0.0
	for col := 0; col < m.order; col++ {
		// order > 1 here, so the cofactor is always defined
		cofactor, _ := m.Cofactor(0, col)
		det += m.cells[col] * cofactor
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero.
// The comparison is exact.
func (m *Matrix) IsInvertible() bool {
	return m.Determinant() != 0.0
}

// Inverse returns the inverse matrix built from the transposed cofactors
func (m *Matrix) Inverse() (*Matrix, error) {
	det := m.Determinant()
	if det == 0.0 {
		return nil, ErrNotInvertible
	}
	n := m.order
	result := zeroMatrix(n)
	if n == 1 {
		result.cells[0] = 1.0 / det
		return result, nil
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cofactor, err := m.Cofactor(row, col)
			if err != nil {
				return nil, err
			}
			result.cells[col*n+row] = cofactor / det
		}
	}
	return result, nil
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for row := 0; row < m.order; row++ {
		if row > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("[")
		for col := 0; col < m.order; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%g", m.At(row, col))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}
