package demo

import (
	"math"

	"github.com/df07/go-raykernel/pkg/canvas"
	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/transform"
)

// Clock draws the twelve hour marks of an analog clock face, seen from above, on a
// size x size canvas
func Clock(size int) (*canvas.Canvas, error) {
	c := canvas.New(size, size)

	radius := float64(size) * 3 / 8
	origin := float64(size) / 2
	twelve := core.NewPoint(0, 0, 1)

	for hour := 0; hour < 12; hour++ {
		t := transform.New()
		for _, m := range []*core.Matrix{
			transform.RotationY(float64(hour) * math.Pi / 6),
			transform.Scaling(radius, 0, radius),
			transform.Translation(origin, 0, origin),
		} {
			if err := t.Add(m); err != nil {
				return nil, err
			}
		}

		p, err := t.Apply(twelve)
		if err != nil {
			return nil, err
		}
		x := int(math.RoundToEven(p.X))
		y := int(math.RoundToEven(p.Z))
		if err := c.Set(x, y, core.Red); err != nil {
			return nil, err
		}
	}
	return c, nil
}
