package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rmoran/go-phong-raytracer/pkg/renderer"
	"github.com/rmoran/go-phong-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	out := flag.String("out", "", "Output file (.png or .ppm); default output/<scene>/render_<timestamp>.png")
	workers := flag.Int("workers", 0, "Scanlines rendered in parallel per batch (0 = CPU count)")
	depth := flag.Int("depth", 0, "Reflection recursion budget (0 = default)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	builder, ok := scene.Get(*sceneName)
	if !ok {
		fmt.Printf("Unknown scene %q. Available scenes: %s\n", *sceneName, strings.Join(scene.Names(), ", "))
		os.Exit(1)
	}

	logger := renderer.NewDefaultLogger()
	logger.Printf("Rendering scene %q at %dx%d...\n", *sceneName, *width, *height)

	world, camera := builder(*width, *height)
	stream := renderer.NewStream(world, camera, renderer.StreamConfig{
		Workers:  *workers,
		MaxDepth: *depth,
	}, logger)

	startTime := time.Now()
	canvas := stream.Finalize()
	logger.Printf("Rendered %d pixels in %v\n", canvas.Width*canvas.Height, time.Since(startTime))

	outputPath := *out
	if outputPath == "" {
		outputDir := filepath.Join("output", *sceneName)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		outputPath = filepath.Join(outputDir, fmt.Sprintf("render_%d.png", time.Now().Unix()))
	}

	if err := saveCanvas(canvas, outputPath); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Saved to %s\n", outputPath)
}

// saveCanvas writes the canvas as PNG or plain PPM depending on the
// output file extension
func saveCanvas(canvas *renderer.Canvas, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if strings.HasSuffix(strings.ToLower(path), ".ppm") {
		return canvas.WritePPM(file)
	}
	return png.Encode(file, canvas.ToRGBA())
}
