package core

import "fmt"

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray. The origin must be a point and the direction a vector.
func NewRay(origin, direction Tuple) (Ray, error) {
	if !origin.IsPoint() || !direction.IsVector() {
		return Ray{}, fmt.Errorf("ray from %v along %v: %w", origin, direction, ErrTypeMismatch)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with origin and direction multiplied by m
func (r Ray) Transform(m *Matrix) (Ray, error) {
	origin, err := m.MultiplyTuple(r.Origin)
	if err != nil {
		return Ray{}, err
	}
	direction, err := m.MultiplyTuple(r.Direction)
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: direction}, nil
}
