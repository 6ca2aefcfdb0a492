package geometry

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// Plane represents the xz plane with a constant +y normal
type Plane struct{}

// NewPlane creates a new xz plane
func NewPlane() *Plane {
	return &Plane{}
}

// LocalIntersect returns the single root -O.y / D.y, or nothing when the
// ray is parallel to the plane
func (p *Plane) LocalIntersect(ray core.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{{T: t, Normal: p.LocalNormalAt(ray.Position(t))}}
}

// LocalNormalAt returns the constant plane normal
func (p *Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
