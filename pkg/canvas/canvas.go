// Package canvas stores rendered colors in a pixel grid and serializes them
// as PPM, PNG or BMP images.
package canvas

import (
	"errors"
	"fmt"

	"github.com/df07/go-raykernel/pkg/core"
)

// ErrOutOfBounds indicates a pixel position outside the canvas
var ErrOutOfBounds = errors.New("canvas: position out of bounds")

// Canvas is a width × height grid of colors, black until written.
// Concurrent writes to distinct pixels are safe.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the number of columns
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows
func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, fmt.Errorf("pixel (%d, %d) on %dx%d canvas: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	return y*c.width + x, nil
}

// Set writes a color at x, y
func (c *Canvas) Set(x, y int, color core.Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = color
	return nil
}

// At returns the color at x, y
func (c *Canvas) At(x, y int) (core.Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return core.Color{}, err
	}
	return c.pixels[i], nil
}
