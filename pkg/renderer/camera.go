package renderer

import (
	"fmt"

	"github.com/df07/go-raykernel/pkg/core"
)

// CameraConfig describes a pinhole eye looking through a square wall of pixels
type CameraConfig struct {
	Origin   core.Tuple // Eye position (a point)
	WallZ    float64    // Z coordinate of the projection wall
	WallSize float64    // Width of the wall in world units
	Width    int        // Image width in pixels
	Height   int        // Image height in pixels
}

// DefaultCameraConfig returns the 100x100 view of a unit sphere at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:   core.NewPoint(0, 0, -5),
		WallZ:    10.0,
		WallSize: 7.0,
		Width:    100,
		Height:   100,
	}
}

// Camera generates rays for rendering
type Camera struct {
	config    CameraConfig
	pixelSize float64
	halfWidth float64
	halfHigh  float64
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if !config.Origin.IsPoint() {
		return nil, fmt.Errorf("camera origin %v: %w", config.Origin, core.ErrTypeMismatch)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("camera size %dx%d: %w", config.Width, config.Height, core.ErrInvalidConstruction)
	}
	if config.WallSize <= 0 {
		return nil, fmt.Errorf("camera wall size %f: %w", config.WallSize, core.ErrInvalidConstruction)
	}

	pixelSize := config.WallSize / float64(config.Width)
	return &Camera{
		config:    config,
		pixelSize: pixelSize,
		halfWidth: config.WallSize / 2,
		halfHigh:  pixelSize * float64(config.Height) / 2,
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay returns the normalized ray from the eye through pixel (x, y).
// Pixel rows grow downward while world y grows upward.
func (c *Camera) GetRay(x, y int) (core.Ray, error) {
	worldX := -c.halfWidth + c.pixelSize*float64(x)
	worldY := c.halfHigh - c.pixelSize*float64(y)
	target := core.NewPoint(worldX, worldY, c.config.WallZ)

	return core.NewRay(c.config.Origin, target.Subtract(c.config.Origin).Normalize())
}
