package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
	"github.com/df07/go-raykernel/pkg/renderer"
	"github.com/df07/go-raykernel/pkg/transform"
)

// Vec3 is a JSON triple used for points, vectors and colors
type Vec3 [3]float64

type CameraCfg struct {
	Origin   *Vec3   `json:"origin,omitempty"`
	WallZ    float64 `json:"wallZ,omitempty"`
	WallSize float64 `json:"wallSize,omitempty"`
}

// MaterialCfg fields left out of the file keep the Material defaults
type MaterialCfg struct {
	Color     *Vec3    `json:"color,omitempty"`
	Ambient   *float64 `json:"ambient,omitempty"`
	Diffuse   *float64 `json:"diffuse,omitempty"`
	Specular  *float64 `json:"specular,omitempty"`
	Shininess *float64 `json:"shininess,omitempty"`
}

// TransformCfg is one step of the sphere's transformation chain.
// Rotations are in degrees.
type TransformCfg struct {
	Type string    `json:"type"`
	Args []float64 `json:"args"`
}

type SphereCfg struct {
	Material   MaterialCfg    `json:"material"`
	Transforms []TransformCfg `json:"transforms,omitempty"`
}

type LightCfg struct {
	Position  Vec3 `json:"position"`
	Intensity Vec3 `json:"intensity"`
}

// Config is the on-disk description of a single sphere scene
type Config struct {
	Name      string    `json:"name,omitempty"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Camera    CameraCfg `json:"camera"`
	Sphere    SphereCfg `json:"sphere"`
	Light     *LightCfg `json:"light,omitempty"` // omitted for a silhouette
	FlatColor *Vec3     `json:"flatColor,omitempty"`
}

// LoadFile reads a JSON scene file and builds the scene it describes
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cfg.Build()
}

// Build validates the config and constructs the runtime scene, filling defaults for
// anything the file left out
func (cfg Config) Build() (*Scene, error) {
	camera := renderer.DefaultCameraConfig()
	if cfg.Width > 0 {
		camera.Width = cfg.Width
	}
	if cfg.Height > 0 {
		camera.Height = cfg.Height
	}
	if cfg.Camera.Origin != nil {
		camera.Origin = cfg.Camera.Origin.point()
	}
	if cfg.Camera.WallZ != 0 {
		camera.WallZ = cfg.Camera.WallZ
	}
	if cfg.Camera.WallSize != 0 {
		camera.WallSize = cfg.Camera.WallSize
	}

	sphere, err := cfg.Sphere.Build()
	if err != nil {
		return nil, err
	}

	var light *lights.PointLight
	if cfg.Light != nil {
		light, err = lights.NewPointLight(cfg.Light.Position.point(), cfg.Light.Intensity.color())
		if err != nil {
			return nil, err
		}
	}

	scene, err := newScene(cfg.Name, camera, sphere, light)
	if err != nil {
		return nil, err
	}
	if cfg.FlatColor != nil {
		scene.FlatColor = cfg.FlatColor.color()
	}
	return scene, nil
}

// Build constructs the sphere with its material and transformation chain applied in order
func (sc SphereCfg) Build() (*geometry.Sphere, error) {
	sphere := geometry.NewSphere()

	m := &sphere.Material
	if sc.Material.Color != nil {
		m.Color = sc.Material.Color.color()
	}
	if sc.Material.Ambient != nil {
		m.Ambient = *sc.Material.Ambient
	}
	if sc.Material.Diffuse != nil {
		m.Diffuse = *sc.Material.Diffuse
	}
	if sc.Material.Specular != nil {
		m.Specular = *sc.Material.Specular
	}
	if sc.Material.Shininess != nil {
		m.Shininess = *sc.Material.Shininess
	}

	for i, tc := range sc.Transforms {
		matrix, err := tc.Matrix()
		if err != nil {
			return nil, fmt.Errorf("transform %d: %w", i, err)
		}
		if err := sphere.AddTransform(matrix); err != nil {
			return nil, fmt.Errorf("transform %d: %w", i, err)
		}
	}
	return sphere, nil
}

// Matrix returns the elementary transformation matrix this step describes
func (tc TransformCfg) Matrix() (*core.Matrix, error) {
	want := 3
	switch tc.Type {
	case "rotate_x", "rotate_y", "rotate_z":
		want = 1
	case "shear":
		want = 6
	}
	if len(tc.Args) != want {
		return nil, fmt.Errorf("%q takes %d args, got %d", tc.Type, want, len(tc.Args))
	}

	a := tc.Args
	const k = math.Pi / 180
	switch tc.Type {
	case "translate":
		return transform.Translation(a[0], a[1], a[2]), nil
	case "scale":
		return transform.Scaling(a[0], a[1], a[2]), nil
	case "rotate_x":
		return transform.RotationX(a[0] * k), nil
	case "rotate_y":
		return transform.RotationY(a[0] * k), nil
	case "rotate_z":
		return transform.RotationZ(a[0] * k), nil
	case "shear":
		return transform.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	default:
		return nil, fmt.Errorf("unknown transform type %q", tc.Type)
	}
}

func (v Vec3) point() core.Tuple {
	return core.NewPoint(v[0], v[1], v[2])
}

func (v Vec3) color() core.Color {
	return core.NewColor(v[0], v[1], v[2])
}
