package geometry

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// Cylinder represents a cylinder of unit radius around the local y axis.
// It is infinite unless truncated at Bottom/Top (exclusive bounds), and
// open-ended unless Closed adds flat caps at the truncation planes.
type Cylinder struct {
	Bottom float64
	Top    float64
	Closed bool
}

// NewCylinder creates a new infinite open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		Bottom: math.Inf(-1),
		Top:    math.Inf(1),
	}
}

// NewTruncatedCylinder creates a cylinder truncated at the given y bounds
func NewTruncatedCylinder(bottom, top float64, closed bool) *Cylinder {
	return &Cylinder{Bottom: bottom, Top: top, Closed: closed}
}

// LocalIntersect solves the quadratic in x and z for the side surface,
// keeping roots whose y falls inside the truncation bounds, then tests the
// end caps when the cylinder is closed
func (cyl *Cylinder) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if cyl.Bottom < y && y < cyl.Top {
				xs = append(xs, Intersection{T: t, Normal: cyl.LocalNormalAt(ray.Position(t))})
			}
		}
	}

	return cyl.intersectCaps(ray, xs)
}

// intersectCaps adds hits on the flat end caps of a closed cylinder
func (cyl *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	// An open cylinder has no caps, and a ray without a y component can
	// never cross the cap planes.
	if !cyl.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	// Bottom cap, then top cap
	t := (cyl.Bottom - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t) {
		xs = append(xs, Intersection{T: t, Normal: core.NewVector(0, -1, 0)})
	}

	t = (cyl.Top - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t) {
		xs = append(xs, Intersection{T: t, Normal: core.NewVector(0, 1, 0)})
	}

	return xs
}

// checkCap reports whether the ray at t lands within unit radius of the axis
func checkCap(ray core.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

// LocalNormalAt returns the cap normal near a closed end, otherwise the
// radial direction from the axis
func (cyl *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	// Square of the distance from the y axis
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= cyl.Top-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= cyl.Bottom+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}
