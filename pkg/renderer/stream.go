package renderer

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/world"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// StreamConfig contains configuration for the scanline stream
type StreamConfig struct {
	Workers  int // Scanlines per batch, one goroutine each (0 = CPU count)
	MaxDepth int // Reflection recursion budget (0 = world default)
}

// DefaultStreamConfig returns sensible default values
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		Workers:  0,
		MaxDepth: world.DefaultReflectionDepth,
	}
}

// Stream renders an image incrementally, one batch of consecutive
// scanlines per Advance call. Lines in a batch are computed in parallel:
// each goroutine writes a disjoint canvas row and reads only the
// immutable World and Camera, so no locking is needed. Callers that want
// progressive output read the canvas between Advance calls; full renders
// just call Finalize.
type Stream struct {
	camera  *Camera
	world   *world.World
	canvas  *Canvas
	config  StreamConfig
	nextRow int
	logger  core.Logger
}

// NewStream creates a stream over the given scene and camera
func NewStream(w *world.World, camera *Camera, config StreamConfig, logger core.Logger) *Stream {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = world.DefaultReflectionDepth
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Stream{
		camera: camera,
		world:  w,
		canvas: NewCanvas(camera.HSize, camera.VSize),
		config: config,
		logger: logger,
	}
}

// Canvas returns the pixel buffer the stream writes into
func (s *Stream) Canvas() *Canvas {
	return s.canvas
}

// CompletedRows returns the number of scanlines rendered so far
func (s *Stream) CompletedRows() int {
	return s.nextRow
}

// Advance renders the next batch of scanlines. It returns false once all
// rows have been produced; the final batch is rendered on the call that
// returns false.
func (s *Stream) Advance() bool {
	if s.nextRow >= s.camera.VSize {
		return false
	}

	end := min(s.nextRow+s.config.Workers, s.camera.VSize)

	var g errgroup.Group
	for y := s.nextRow; y < end; y++ {
		y := y
		g.Go(func() error {
			s.renderRow(y)
			return nil
		})
	}
	// Row rendering has no failure path; Wait only synchronizes the batch.
	_ = g.Wait()

	s.nextRow = end
	return s.nextRow < s.camera.VSize
}

// Finalize drains the stream and returns the completed canvas
func (s *Stream) Finalize() *Canvas {
	for s.Advance() {
	}
	return s.canvas
}

// renderRow computes every pixel of one scanline. A camera with a
// non-invertible view transform produces no rays and the row stays at
// the background color.
func (s *Stream) renderRow(y int) {
	for x := 0; x < s.camera.HSize; x++ {
		ray, ok := s.camera.RayForPixel(x, y)
		if !ok {
			continue
		}
		s.canvas.WritePixel(x, y, s.world.ColorAt(ray, s.config.MaxDepth))
	}
}
