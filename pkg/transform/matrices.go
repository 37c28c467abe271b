package transform

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
)

// Translation returns a matrix that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) *core.Matrix {
	m := core.Identity(4)
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)
	return m
}

// Scaling returns a matrix that scales each axis independently
func Scaling(x, y, z float64) *core.Matrix {
	m := core.Identity(4)
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return m
}

// RotationX returns a right-handed rotation around the x axis (radians)
func RotationX(r float64) *core.Matrix {
	sin, cos := math.Sincos(r)
	m := core.Identity(4)
	m.Set(1, 1, cos)
	m.Set(1, 2, -sin)
	m.Set(2, 1, sin)
	m.Set(2, 2, cos)
	return m
}

// RotationY returns a right-handed rotation around the y axis (radians)
func RotationY(r float64) *core.Matrix {
	sin, cos := math.Sincos(r)
	m := core.Identity(4)
	m.Set(0, 0, cos)
	m.Set(0, 2, sin)
	m.Set(2, 0, -sin)
	m.Set(2, 2, cos)
	return m
}

// RotationZ returns a right-handed rotation around the z axis (radians)
func RotationZ(r float64) *core.Matrix {
	sin, cos := math.Sincos(r)
	m := core.Identity(4)
	m.Set(0, 0, cos)
	m.Set(0, 1, -sin)
	m.Set(1, 0, sin)
	m.Set(1, 1, cos)
	return m
}

// Shearing returns a matrix moving each component in proportion to the other two.
// xy moves x in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) *core.Matrix {
	m := core.Identity(4)
	m.Set(0, 1, xy)
	m.Set(0, 2, xz)
	m.Set(1, 0, yx)
	m.Set(1, 2, yz)
	m.Set(2, 0, zx)
	m.Set(2, 1, zy)
	return m
}
