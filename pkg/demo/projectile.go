package demo

import (
	"fmt"
	"math"

	"github.com/df07/go-raykernel/pkg/canvas"
	"github.com/df07/go-raykernel/pkg/core"
)

// Environment is the world a projectile moves through
type Environment struct {
	Gravity core.Tuple // vector
	Wind    core.Tuple // vector
}

// Projectile is a point mass with a velocity and a tick counter
type Projectile struct {
	Position core.Tuple // point
	Velocity core.Tuple // vector
	Clock    int
}

// DefaultEnvironment returns light gravity with a slight headwind
func DefaultEnvironment() Environment {
	return Environment{
		Gravity: core.NewVector(0, -0.1, 0),
		Wind:    core.NewVector(-0.01, 0, 0),
	}
}

// Tick lets one unit of time pass
func (p *Projectile) Tick(env Environment) {
	p.Position = p.Position.Add(p.Velocity)
	p.Velocity = p.Velocity.Add(env.Gravity).Add(env.Wind)
	p.Clock++
}

// Plot marks the projectile on c with y pointing up. Positions off the canvas are skipped.
func (p *Projectile) Plot(c *canvas.Canvas) {
	x := int(math.RoundToEven(p.Position.X))
	y := c.Height() - int(math.RoundToEven(p.Position.Y))
	_ = c.Set(x, y, core.Red) // off-canvas positions are dropped
}

func (p *Projectile) String() string {
	return fmt.Sprintf("@%d: x=%.2f y=%.2f z=%.2f", p.Clock, p.Position.X, p.Position.Y, p.Position.Z)
}

// Run ticks the projectile until it reaches the ground, logging every position.
// It returns the number of ticks taken.
func Run(env Environment, p *Projectile, logger core.Logger) int {
	for p.Position.Y > 0 {
		logger.Printf("%s\n", p)
		p.Tick(env)
	}
	logger.Printf("Projectile hit the ground after %d ticks!\n", p.Clock)
	return p.Clock
}

// PlotCourse ticks the projectile until it reaches the ground, plotting each position on c
func PlotCourse(c *canvas.Canvas, env Environment, p *Projectile) {
	for p.Position.Y > 0 {
		p.Plot(c)
		p.Tick(env)
	}
}

// Trajectory draws the course of a fast projectile on a 900x550 canvas
func Trajectory() *canvas.Canvas {
	c := canvas.New(900, 550)
	p := &Projectile{
		Position: core.NewPoint(0, 1, 0),
		Velocity: core.NewVector(1, 1.8, 0).Normalize().Multiply(11.25),
	}
	PlotCourse(c, DefaultEnvironment(), p)
	return c
}
