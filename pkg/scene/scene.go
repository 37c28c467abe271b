package scene

import (
	"github.com/df07/go-raykernel/pkg/canvas"
	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
	"github.com/df07/go-raykernel/pkg/renderer"
)

// Scene contains all the elements needed for rendering: one sphere seen by one camera,
// lit by an optional point light
type Scene struct {
	Name         string
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	Sphere       *geometry.Sphere
	Light        *lights.PointLight // nil renders a silhouette in FlatColor
	FlatColor    core.Color
}

func (s *Scene) GetCamera() *renderer.Camera  { return s.Camera }
func (s *Scene) GetSphere() *geometry.Sphere  { return s.Sphere }
func (s *Scene) GetLight() *lights.PointLight { return s.Light }
func (s *Scene) GetFlatColor() core.Color     { return s.FlatColor }

// NewCanvas returns a black canvas sized for the scene's camera
func (s *Scene) NewCanvas() *canvas.Canvas {
	return canvas.New(s.CameraConfig.Width, s.CameraConfig.Height)
}

// newScene builds the camera for config and wraps the remaining parts
func newScene(name string, config renderer.CameraConfig, sphere *geometry.Sphere, light *lights.PointLight) (*Scene, error) {
	camera, err := renderer.NewCamera(config)
	if err != nil {
		return nil, err
	}
	return &Scene{
		Name:         name,
		Camera:       camera,
		CameraConfig: config,
		Sphere:       sphere,
		Light:        light,
		FlatColor:    core.Red,
	}, nil
}
