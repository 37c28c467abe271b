package lights

import (
	"fmt"

	"github.com/df07/go-raykernel/pkg/core"
)

// PointLight is a light source with no size, existing at a single point in space
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light. The position must be a point.
func NewPointLight(position core.Tuple, intensity core.Color) (*PointLight, error) {
	if !position.IsPoint() {
		return nil, fmt.Errorf("light position %v: %w", position, core.ErrTypeMismatch)
	}
	return &PointLight{Position: position, Intensity: intensity}, nil
}
