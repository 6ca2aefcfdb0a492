package world

import (
	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/geometry"
	"github.com/rmoran/go-phong-raytracer/pkg/material"
)

// Interference is the fully resolved record for one ray hit, carrying
// everything shading needs: the hit point, the offset points used as
// shadow/reflection/refraction ray origins, the eye and (possibly
// flipped) normal vectors, the reflection vector, and the refractive
// indices on either side of the boundary.
type Interference struct {
	T          float64
	Object     *geometry.Object
	Point      core.Tuple
	OverPoint  core.Tuple
	UnderPoint core.Tuple
	Eye        core.Tuple
	Normal     core.Tuple
	Reflect    core.Tuple
	Inside     bool
	N1         float64
	N2         float64
}

// InterferenceSeq walks a ray's sorted intersections exactly once,
// materializing an Interference per hit. Consuming the hits in ascending
// time-of-impact order is what keeps the refractive-index stack honest:
// each hit toggles its object in the set of volumes the ray is currently
// inside.
type InterferenceSeq struct {
	ray        core.Ray
	hits       []geometry.HitRecord
	index      int
	containers []*geometry.Object
}

// Next materializes the next interference along the ray. It returns
// false when the sequence is exhausted.
func (s *InterferenceSeq) Next() (Interference, bool) {
	if s.index >= len(s.hits) {
		return Interference{}, false
	}
	rec := s.hits[s.index]
	s.index++

	n1 := s.topRefractiveIndex()
	s.toggle(rec.Object)
	n2 := s.topRefractiveIndex()

	inf := Interference{
		T:      rec.T,
		Object: rec.Object,
		N1:     n1,
		N2:     n2,
	}

	inf.Point = s.ray.Position(rec.T)
	inf.Eye = s.ray.Direction.Negate()

	inf.Normal = rec.Normal
	if inf.Normal.Dot(inf.Eye) < 0 {
		// The hit is on the far side of the surface; flip the normal so
		// it faces the eye.
		inf.Inside = true
		inf.Normal = inf.Normal.Negate()
	}

	inf.Reflect = s.ray.Direction.Reflect(inf.Normal)

	offset := inf.Normal.Multiply(core.Epsilon)
	inf.OverPoint = inf.Point.Add(offset)
	inf.UnderPoint = inf.Point.Subtract(offset)

	return inf, true
}

// Hit advances to the nearest hit with a non-negative time of impact.
// It returns false when every remaining hit is behind the ray origin.
func (s *InterferenceSeq) Hit() (Interference, bool) {
	for {
		inf, ok := s.Next()
		if !ok {
			return Interference{}, false
		}
		if inf.T >= 0 {
			return inf, true
		}
	}
}

// topRefractiveIndex returns the refractive index of the volume the ray
// is currently inside, or the vacuum index when it is in open space
func (s *InterferenceSeq) topRefractiveIndex() float64 {
	if len(s.containers) == 0 {
		return material.VacuumRefractiveIndex
	}
	return s.containers[len(s.containers)-1].Material.RefractiveIndex
}

// toggle records the ray entering or leaving an object's volume
func (s *InterferenceSeq) toggle(o *geometry.Object) {
	for i, entered := range s.containers {
		if entered == o {
			s.containers = append(s.containers[:i], s.containers[i+1:]...)
			return
		}
	}
	s.containers = append(s.containers, o)
}
