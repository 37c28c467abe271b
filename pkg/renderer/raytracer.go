package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetSphere() *geometry.Sphere
	GetLight() *lights.PointLight // nil renders a flat silhouette
	GetFlatColor() core.Color
}

// Target receives rendered pixels. canvas.Canvas satisfies it.
type Target interface {
	Set(x, y int, color core.Color) error
}

// Sample is the outcome of tracing a single ray
type Sample struct {
	Hit          bool
	Intersection geometry.Intersection
	Point        core.Tuple
	Normal       core.Tuple
	Color        core.Color
}

// Raytracer casts rays at the scene sphere and shades what they hit
type Raytracer struct {
	scene Scene
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{scene: scene}
}

// TraceRay intersects the ray with the scene and shades the visible hit
func (rt *Raytracer) TraceRay(ray core.Ray) (Sample, error) {
	sphere := rt.scene.GetSphere()

	xs, err := sphere.Intersections(ray)
	if err != nil {
		return Sample{}, err
	}
	hit, ok := geometry.Hit(xs)
	if !ok {
		return Sample{Color: core.Black}, nil
	}

	sample := Sample{
		Hit:          true,
		Intersection: hit,
		Point:        ray.Position(hit.T),
	}

	sample.Normal, err = hit.Object.NormalAt(sample.Point)
	if err != nil {
		return Sample{}, err
	}

	light := rt.scene.GetLight()
	if light == nil {
		sample.Color = rt.scene.GetFlatColor()
		return sample, nil
	}

	eye := ray.Direction.Negate()
	sample.Color, err = hit.Object.Material.Lighting(light, sample.Point, eye, sample.Normal)
	if err != nil {
		return Sample{}, err
	}
	return sample, nil
}

// TracePixel traces the camera ray through pixel (x, y)
func (rt *Raytracer) TracePixel(x, y int) (Sample, error) {
	ray, err := rt.scene.GetCamera().GetRay(x, y)
	if err != nil {
		return Sample{}, err
	}
	return rt.TraceRay(ray)
}

// RenderBounds renders every pixel inside bounds and writes hits to the target.
// Misses are left untouched so the target keeps its background.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, target Target) (RenderStats, error) {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sample, err := rt.TracePixel(x, y)
			if err != nil {
				return stats, fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
			if !sample.Hit {
				continue
			}
			if err := target.Set(x, y, sample.Color); err != nil {
				return stats, err
			}
			stats.HitPixels++
		}
	}

	return stats, nil
}
