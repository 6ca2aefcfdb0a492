package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// Canvas is the pixel buffer a render writes into: a write-only 2D sink
// of float colors, exported row-major. Writes outside the bounds are
// silently ignored so camera-space rounding at the image edge is
// harmless.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given dimensions
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// WritePixel sets the color at (x, y). Out-of-range writes are dropped.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// Pixels returns the row-major pixel sequence
func (c *Canvas) Pixels() []core.Color {
	return c.pixels
}

// ToRGBA converts the canvas to an 8-bit RGBA image, clamping each
// channel into [0, 255]
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: clampChannel(pixel.R),
				G: clampChannel(pixel.G),
				B: clampChannel(pixel.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM encodes the canvas as plain PPM (P3), keeping lines at or
// under 70 characters for strict readers
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	for y := 0; y < c.Height; y++ {
		line := ""
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			for _, channel := range [3]float64{pixel.R, pixel.G, pixel.B} {
				value := strconv.Itoa(int(clampChannel(channel)))
				if line == "" {
					line = value
				} else if len(line)+1+len(value) > 70 {
					if _, err := fmt.Fprintln(w, line); err != nil {
						return err
					}
					line = value
				} else {
					line += " " + value
				}
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// clampChannel scales a float channel to [0, 255] with rounding
func clampChannel(value float64) uint8 {
	scaled := math.Round(value * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
