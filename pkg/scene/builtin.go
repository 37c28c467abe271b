package scene

import (
	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
	"github.com/df07/go-raykernel/pkg/renderer"
)

// NewSilhouetteScene creates the flat red outline of a unit sphere on a 100x100 canvas
func NewSilhouetteScene() (*Scene, error) {
	return newScene("silhouette", renderer.DefaultCameraConfig(), geometry.NewSphere(), nil)
}

// NewShadedScene creates a purple Phong-shaded unit sphere lit from the upper left
func NewShadedScene() (*Scene, error) {
	return newShaded("shaded", geometry.NewSphere())
}

// NewSquashedScene creates the shaded sphere flattened along the y axis
func NewSquashedScene() (*Scene, error) {
	return newShaded("squashed", geometry.NewSphere().Scale(1, 0.5, 1))
}

// NewShearedScene creates the shaded sphere sheared and thinned along x
func NewShearedScene() (*Scene, error) {
	return newShaded("sheared", geometry.NewSphere().Shear(1, 0, 0, 0, 0, 0).Scale(0.5, 1, 1))
}

func newShaded(name string, sphere *geometry.Sphere) (*Scene, error) {
	sphere.Material.Color = core.NewColor(1, 0.2, 1)

	light, err := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	if err != nil {
		return nil, err
	}

	config := renderer.DefaultCameraConfig()
	config.Width = 200
	config.Height = 200
	return newScene(name, config, sphere, light)
}
