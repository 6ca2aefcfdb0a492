package geometry

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// Sphere represents the unit sphere centered at the local origin
type Sphere struct{}

// NewSphere creates a new unit sphere
func NewSphere() *Sphere {
	return &Sphere{}
}

// LocalIntersect solves |O + tD|² = 1 for t
func (s *Sphere) LocalIntersect(ray core.Ray) []Intersection {
	// Vector from the sphere center to the ray origin
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		{T: t1, Normal: s.LocalNormalAt(ray.Position(t1))},
		{T: t2, Normal: s.LocalNormalAt(ray.Position(t2))},
	}
}

// LocalNormalAt returns the local hit point viewed as a vector
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.NewVector(point.X, point.Y, point.Z)
}
