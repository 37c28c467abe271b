package canvas

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	ppmMagic      = "P3"
	maxColorValue = 255
	maxLineLength = 70
)

// WritePPM serializes the canvas as a plain-text PPM image
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(ppmMagic + "\n")
	bw.WriteString(strconv.Itoa(c.width) + " " + strconv.Itoa(c.height) + "\n")
	bw.WriteString(strconv.Itoa(maxColorValue) + "\n")

	samples := make([]string, 0, c.width*3)
	for y := 0; y < c.height; y++ {
		samples = samples[:0]
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			samples = append(samples,
				strconv.Itoa(channelValue(p.R)),
				strconv.Itoa(channelValue(p.G)),
				strconv.Itoa(channelValue(p.B)))
		}
		for _, line := range wrapSamples(samples, maxLineLength) {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// PPM returns the canvas as a PPM string
func (c *Canvas) PPM() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = c.WritePPM(&sb)
	return sb.String()
}

// channelValue maps an intensity to [0, 255], rounding half to even
func channelValue(intensity float64) int {
	clamped := math.Max(0, math.Min(1, intensity))
	return int(math.RoundToEven(maxColorValue * clamped))
}

// wrapSamples joins samples with spaces into lines no longer than limit
func wrapSamples(samples []string, limit int) []string {
	var lines []string
	var line strings.Builder
	for _, s := range samples {
		if line.Len() > 0 && line.Len()+1+len(s) > limit {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(s)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
