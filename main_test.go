package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/renderer"
)

func TestSaveCanvas(t *testing.T) {
	canvas := renderer.NewCanvas(4, 3)
	canvas.WritePixel(1, 1, core.NewColor(1, 0, 0))

	t.Run("png output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "render.png")
		if err := saveCanvas(canvas, path); err != nil {
			t.Fatalf("saveCanvas failed: %v", err)
		}

		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("Opening output: %v", err)
		}
		defer file.Close()

		img, err := png.Decode(file)
		if err != nil {
			t.Fatalf("Expected a decodable PNG: %v", err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != 4 || bounds.Dy() != 3 {
			t.Errorf("Expected a 4x3 image, got %dx%d", bounds.Dx(), bounds.Dy())
		}
	})

	t.Run("ppm output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "render.ppm")
		if err := saveCanvas(canvas, path); err != nil {
			t.Fatalf("saveCanvas failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Reading output: %v", err)
		}
		if !strings.HasPrefix(string(data), "P3\n4 3\n255\n") {
			t.Errorf("Expected a plain PPM header, got %q", string(data[:min(len(data), 16)]))
		}
	})

	t.Run("uppercase extension still writes ppm", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "render.PPM")
		if err := saveCanvas(canvas, path); err != nil {
			t.Fatalf("saveCanvas failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Reading output: %v", err)
		}
		if !strings.HasPrefix(string(data), "P3\n") {
			t.Error("Expected PPM output for an uppercase extension")
		}
	})

	t.Run("unwritable path errors", func(t *testing.T) {
		if err := saveCanvas(canvas, filepath.Join(t.TempDir(), "missing", "render.png")); err == nil {
			t.Error("Expected an error for a nonexistent directory")
		}
	})
}
