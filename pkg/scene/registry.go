package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownScene is returned by Create for names that are neither built-in nor a scene file
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene for listings
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type builtin struct {
	description string
	create      func() (*Scene, error)
}

var builtins = map[string]builtin{
	"silhouette": {"Flat red outline of a unit sphere", NewSilhouetteScene},
	"shaded":     {"Phong-shaded purple sphere lit from the upper left", NewShadedScene},
	"squashed":   {"Shaded sphere squashed to half height", NewSquashedScene},
	"sheared":    {"Shaded sphere sheared and thinned along x", NewShearedScene},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := lo.Keys(builtins)
	sort.Strings(names)
	return names
}

// List returns the built-in scenes with their descriptions, sorted by name
func List() []SceneInfo {
	return lo.Map(Names(), func(name string, _ int) SceneInfo {
		return SceneInfo{Name: name, Description: builtins[name].description}
	})
}

// Create returns the named built-in scene, or loads the scene file when name ends in .json
func Create(name string) (*Scene, error) {
	if strings.HasSuffix(name, ".json") {
		return LoadFile(name)
	}
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return b.create()
}
