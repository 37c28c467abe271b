package material

import (
	"fmt"
	"math"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/lights"
)

// Material holds the Phong reflection attributes of a surface
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// Default returns a white material with ambient 0.1, diffuse 0.9, specular 0.9 and shininess 200
func Default() Material {
	return Material{
		Color:     core.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}

// Lighting computes the ambient, diffuse and specular contributions of a light
// at a surface point seen along eyev with surface normal normalv
func (m Material) Lighting(light *lights.PointLight, point, eyev, normalv core.Tuple) (core.Color, error) {
	if !point.IsPoint() || !eyev.IsVector() || !normalv.IsVector() {
		return core.Color{}, fmt.Errorf("lighting at %v with eye %v and normal %v: %w",
			point, eyev, normalv, core.ErrTypeMismatch)
	}

	effectiveColor := m.Color.Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)

	// Light on the other side of the surface
	if lightDotNormal < 0 {
		return ambient, nil
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normalv)
	if reflectDotEye := reflectv.Dot(eyev); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular), nil
}
