package geometry

import (
	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// Shape is the capability every primitive implements to report ray hits in
// its own local coordinate frame. New shapes plug into the renderer by
// implementing this interface; World, Object and Camera never change.
type Shape interface {
	// LocalIntersect returns the intersections of a local-space ray with
	// the shape, in discovery order. Sorting by time of impact happens at
	// the World level.
	LocalIntersect(ray core.Ray) []Intersection

	// LocalNormalAt returns the surface normal at a local-space point on
	// the shape. Results for points off the surface are undefined but
	// never panic.
	LocalNormalAt(point core.Tuple) core.Tuple
}

// Intersection is a single local-space ray hit: the time of impact along
// the ray and the local surface normal at the hit point. The time of
// impact may be negative for hits behind the ray origin.
type Intersection struct {
	T      float64
	Normal core.Tuple
}
