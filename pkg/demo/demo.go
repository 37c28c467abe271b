package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-raykernel/pkg/canvas"
	"github.com/df07/go-raykernel/pkg/core"
	"github.com/samber/lo"
)

var drawings = map[string]func() (*canvas.Canvas, error){
	"projectile": func() (*canvas.Canvas, error) { return Trajectory(), nil },
	"clock":      func() (*canvas.Canvas, error) { return Clock(100) },
}

// Text demos write their output through the logger instead of drawing
var texts = map[string]func(logger core.Logger){
	"trajectory": func(logger core.Logger) {
		p := &Projectile{
			Position: core.NewPoint(0, 1, 0),
			Velocity: core.NewVector(1, 1, 0).Normalize(),
		}
		Run(DefaultEnvironment(), p, logger)
	},
}

// Names returns every available demo in sorted order
func Names() []string {
	names := append(lo.Keys(drawings), lo.Keys(texts)...)
	sort.Strings(names)
	return names
}

// IsText reports whether the named demo prints text rather than drawing a canvas
func IsText(name string) bool {
	_, ok := texts[name]
	return ok
}

// Draw renders the named demo onto a fresh canvas
func Draw(name string) (*canvas.Canvas, error) {
	draw, ok := drawings[name]
	if !ok {
		return nil, unknownDemo(name)
	}
	return draw()
}

// Print runs the named text demo, writing each line to logger
func Print(name string, logger core.Logger) error {
	text, ok := texts[name]
	if !ok {
		return unknownDemo(name)
	}
	text(logger)
	return nil
}

func unknownDemo(name string) error {
	return fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(Names(), ", "))
}
