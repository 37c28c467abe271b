package geometry

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/material"
	"github.com/df07/go-raykernel/pkg/transform"
)

// Sphere is a unit sphere centred at the object-space origin, placed in the
// world by its transformation. Transform it during scene setup only.
type Sphere struct {
	id        uuid.UUID
	transform *transform.Transformation
	Material  material.Material
}

// NewSphere creates a unit sphere with an identity transform and the default material
func NewSphere() *Sphere {
	return &Sphere{
		id:        uuid.New(),
		transform: transform.New(),
		Material:  material.Default(),
	}
}

// ID returns the stable identity of the sphere
func (s *Sphere) ID() uuid.UUID {
	return s.id
}

// Transform returns the cumulative object-to-world matrix
func (s *Sphere) Transform() *core.Matrix {
	return s.transform.Matrix()
}

// Translate appends a translation to the sphere's transform
func (s *Sphere) Translate(x, y, z float64) *Sphere {
	return s.add(transform.Translation(x, y, z))
}

// Scale appends a scaling to the sphere's transform
func (s *Sphere) Scale(x, y, z float64) *Sphere {
	return s.add(transform.Scaling(x, y, z))
}

// RotateX appends a rotation around the x axis (radians)
func (s *Sphere) RotateX(r float64) *Sphere {
	return s.add(transform.RotationX(r))
}

// RotateY appends a rotation around the y axis (radians)
func (s *Sphere) RotateY(r float64) *Sphere {
	return s.add(transform.RotationY(r))
}

// RotateZ appends a rotation around the z axis (radians)
func (s *Sphere) RotateZ(r float64) *Sphere {
	return s.add(transform.RotationZ(r))
}

// Shear appends a shearing to the sphere's transform
func (s *Sphere) Shear(xy, xz, yx, yz, zx, zy float64) *Sphere {
	return s.add(transform.Shearing(xy, xz, yx, yz, zx, zy))
}

// AddTransform appends an arbitrary matrix, which must be 4x4
func (s *Sphere) AddTransform(m *core.Matrix) error {
	return s.transform.Add(m)
}

func (s *Sphere) add(m *core.Matrix) *Sphere {
	// Elementary transforms are always 4x4.
	if err := s.transform.Add(m); err != nil {
		panic(err)
	}
	return s
}

// Intersections returns the two parameters at which the ray crosses the sphere,
// nearest first, or none when the ray misses
func (s *Sphere) Intersections(ray core.Ray) ([]Intersection, error) {
	inv, err := s.transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("sphere %s: %w", s.id, err)
	}
	local, err := ray.Transform(inv)
	if err != nil {
		return nil, err
	}

	sphereToRay := local.Origin.Subtract(core.NewPoint(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := local.Direction.Dot(local.Direction)
	b := 2.0 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1.0

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2.0 * a)
	t2 := (-b + sqrtD) / (2.0 * a)

	return []Intersection{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}, nil
}

// NormalAt returns the unit surface normal at a world-space point
func (s *Sphere) NormalAt(worldPoint core.Tuple) (core.Tuple, error) {
	if !worldPoint.IsPoint() {
		return core.Tuple{}, fmt.Errorf("normal at %v: %w", worldPoint, core.ErrTypeMismatch)
	}
	inv, err := s.transform.Inverse()
	if err != nil {
		return core.Tuple{}, fmt.Errorf("sphere %s: %w", s.id, err)
	}

	objectPoint, err := inv.MultiplyTuple(worldPoint)
	if err != nil {
		return core.Tuple{}, err
	}
	objectNormal := objectPoint.Subtract(core.NewPoint(0, 0, 0))

	// Normals map back with the transpose of the inverse; translation leaks into w.
	worldNormal, err := inv.Transpose().MultiplyTuple(objectNormal)
	if err != nil {
		return core.Tuple{}, err
	}
	worldNormal.W = 0

	return worldNormal.Normalize(), nil
}
