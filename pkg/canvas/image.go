package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// Format names an image encoding supported by Encode
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatBMP:
		return "image/bmp"
	default:
		return "image/x-portable-pixmap"
	}
}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatPPM, FormatPNG, FormatBMP:
		return f, nil
	default:
		return "", fmt.Errorf("unknown image format %q (want ppm, png or bmp)", name)
	}
}

// Image converts the canvas to an RGBA image using the same clamping as the PPM output
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(channelValue(p.R)),
				G: uint8(channelValue(p.G)),
				B: uint8(channelValue(p.B)),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// WriteBMP encodes the canvas as BMP
func (c *Canvas) WriteBMP(w io.Writer) error {
	return bmp.Encode(w, c.Image())
}

// Encode writes the canvas in the requested format
func (c *Canvas) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPPM:
		return c.WritePPM(w)
	case FormatPNG:
		return c.WritePNG(w)
	case FormatBMP:
		return c.WriteBMP(w)
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
}
