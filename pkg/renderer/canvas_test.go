package renderer

import (
	"strings"
	"testing"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

func TestCanvas_WritePixel(t *testing.T) {
	c := NewCanvas(10, 20)

	t.Run("starts black", func(t *testing.T) {
		if !c.PixelAt(3, 7).Equals(core.Black) {
			t.Errorf("Expected a fresh canvas to be black, got %v", c.PixelAt(3, 7))
		}
	})

	t.Run("writes are readable back", func(t *testing.T) {
		red := core.NewColor(1, 0, 0)
		c.WritePixel(2, 3, red)
		if !c.PixelAt(2, 3).Equals(red) {
			t.Errorf("Expected red at (2,3), got %v", c.PixelAt(2, 3))
		}
	})

	t.Run("out-of-range writes are dropped", func(t *testing.T) {
		c.WritePixel(-1, 0, core.White)
		c.WritePixel(10, 0, core.White)
		c.WritePixel(0, 20, core.White)
		if !c.PixelAt(0, 0).Equals(core.Black) {
			t.Error("Out-of-range writes must not land on the canvas")
		}
	})
}

func TestCanvas_WritePPM(t *testing.T) {
	t.Run("header", func(t *testing.T) {
		c := NewCanvas(5, 3)
		var sb strings.Builder
		if err := c.WritePPM(&sb); err != nil {
			t.Fatalf("WritePPM failed: %v", err)
		}

		lines := strings.Split(sb.String(), "\n")
		if lines[0] != "P3" || lines[1] != "5 3" || lines[2] != "255" {
			t.Errorf("unexpected header %q", lines[:3])
		}
	})

	t.Run("clamps channels into [0, 255]", func(t *testing.T) {
		c := NewCanvas(5, 3)
		c.WritePixel(0, 0, core.NewColor(1.5, 0, 0))
		c.WritePixel(2, 1, core.NewColor(0, 0.5, 0))
		c.WritePixel(4, 2, core.NewColor(-0.5, 0, 1))

		var sb strings.Builder
		if err := c.WritePPM(&sb); err != nil {
			t.Fatalf("WritePPM failed: %v", err)
		}

		lines := strings.Split(sb.String(), "\n")
		if lines[3] != "255 0 0 0 0 0 0 0 0 0 0 0 0 0 0" {
			t.Errorf("unexpected first row %q", lines[3])
		}
		if lines[4] != "0 0 0 0 0 0 0 128 0 0 0 0 0 0 0" {
			t.Errorf("unexpected second row %q", lines[4])
		}
		if lines[5] != "0 0 0 0 0 0 0 0 0 0 0 0 0 0 255" {
			t.Errorf("unexpected third row %q", lines[5])
		}
	})

	t.Run("wraps long lines at 70 characters", func(t *testing.T) {
		c := NewCanvas(10, 2)
		for y := 0; y < 2; y++ {
			for x := 0; x < 10; x++ {
				c.WritePixel(x, y, core.NewColor(1, 0.8, 0.6))
			}
		}

		var sb strings.Builder
		if err := c.WritePPM(&sb); err != nil {
			t.Fatalf("WritePPM failed: %v", err)
		}

		for i, line := range strings.Split(sb.String(), "\n") {
			if len(line) > 70 {
				t.Errorf("Line %d exceeds 70 characters: %q", i, line)
			}
		}
	})

	t.Run("ends with a newline", func(t *testing.T) {
		c := NewCanvas(5, 3)
		var sb strings.Builder
		if err := c.WritePPM(&sb); err != nil {
			t.Fatalf("WritePPM failed: %v", err)
		}
		if !strings.HasSuffix(sb.String(), "\n") {
			t.Error("Expected the PPM data to end with a newline")
		}
	})
}

func TestCanvas_ToRGBA(t *testing.T) {
	c := NewCanvas(2, 2)
	c.WritePixel(0, 0, core.NewColor(1, 0, 0))
	c.WritePixel(1, 1, core.NewColor(2, -1, 0.5))

	img := c.ToRGBA()

	if got := img.RGBAAt(0, 0); got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("unexpected pixel at (0,0): %+v", got)
	}
	if got := img.RGBAAt(1, 1); got.R != 255 || got.G != 0 || got.B != 128 {
		t.Errorf("Expected channel clamping at (1,1), got %+v", got)
	}
	if got := img.RGBAAt(1, 0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected untouched pixels to stay black, got %+v", got)
	}
}
