package renderer

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// Camera maps pixel coordinates to world-space rays through a view
// transform and a field of view
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Matrix
	inverse    core.Matrix
	invertible bool

	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera at the identity view transform
func NewCamera(hSize, vSize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hSize,
		VSize:       vSize,
		FieldOfView: fieldOfView,
	}
	c.computePixelSize()
	c.SetTransform(core.Identity())
	return c
}

// SetTransform sets the world-to-camera view transform, normally built
// with core.ViewTransform. A non-invertible transform is a configuration
// error; RayForPixel then declines to produce rays.
func (c *Camera) SetTransform(m core.Matrix) {
	c.transform = m
	c.inverse, c.invertible = m.Inverse()
}

// Transform returns the camera's view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetFieldOfView changes the field of view and recomputes the derived
// pixel geometry
func (c *Camera) SetFieldOfView(fov float64) {
	c.FieldOfView = fov
	c.computePixelSize()
}

// PixelSize returns the world-space size of one square pixel on the
// canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// computePixelSize derives the half extents of the canvas plane one unit
// in front of the camera, and from them the pixel size
func (c *Camera) computePixelSize() {
	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(c.HSize) / float64(c.VSize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}

	c.pixelSize = c.halfWidth * 2 / float64(c.HSize)
}

// RayForPixel returns the world-space ray through the center of the
// given pixel. The second return value is false when the view transform
// is not invertible.
func (c *Camera) RayForPixel(px, py int) (core.Ray, bool) {
	if !c.invertible {
		return core.Ray{}, false
	}

	// Offset from the canvas edge to the pixel's center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Untransformed world coordinates of the pixel; the camera looks
	// toward -z, so +x is to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction), true
}
