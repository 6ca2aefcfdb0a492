package geometry

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// Cube represents the axis-aligned unit cube with faces at ±1
type Cube struct{}

// NewCube creates a new unit cube
func NewCube() *Cube {
	return &Cube{}
}

// LocalIntersect uses the slab method: intersect the ray against the pair
// of planes on each axis, then keep the interval common to all three
func (c *Cube) LocalIntersect(ray core.Ray) []Intersection {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}

	return []Intersection{
		{T: tMin, Normal: c.LocalNormalAt(ray.Position(tMin))},
		{T: tMax, Normal: c.LocalNormalAt(ray.Position(tMax))},
	}
}

// checkAxis returns the entry and exit times against one slab. A zero
// direction component divides to ±Inf, which makes a ray outside the slab
// on that axis miss via the min/max reduction above.
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	tMin := tMinNumerator / direction
	tMax := tMaxNumerator / direction

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalNormalAt picks the face by the largest absolute component of the
// local point
func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	absX := math.Abs(point.X)
	absY := math.Abs(point.Y)
	absZ := math.Abs(point.Z)

	maxC := math.Max(absX, math.Max(absY, absZ))
	switch maxC {
	case absX:
		return core.NewVector(point.X, 0, 0)
	case absY:
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}
