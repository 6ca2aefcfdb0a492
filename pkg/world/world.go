package world

import (
	"sort"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/geometry"
)

// DefaultReflectionDepth bounds the recursive reflection between ColorAt
// and ReflectedColor. Five bounces is enough for mirror scenes without
// letting a mirror box recurse forever.
const DefaultReflectionDepth = 5

// World is the scene graph: objects in insertion order plus the lights
// that illuminate them. Insertion order is the tie-break for equal
// intersection times and the traversal order for aggregation.
type World struct {
	Objects []*geometry.Object
	Lights  []PointLight
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// AddObject appends an object to the scene
func (w *World) AddObject(o *geometry.Object) {
	w.Objects = append(w.Objects, o)
}

// AddLight appends a light to the scene
func (w *World) AddLight(light PointLight) {
	w.Lights = append(w.Lights, light)
}

// Contains reports whether the object is part of this world
func (w *World) Contains(o *geometry.Object) bool {
	for _, obj := range w.Objects {
		if obj == o {
			return true
		}
	}
	return false
}

// Intersect aggregates every object's world-space intersections with the
// ray, sorted ascending by time of impact. The sort is stable so objects
// earlier in the scene win ties.
func (w *World) Intersect(ray core.Ray) []geometry.HitRecord {
	var hits []geometry.HitRecord
	for _, obj := range w.Objects {
		hits = append(hits, obj.Intersect(ray)...)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].T < hits[j].T
	})
	return hits
}

// InterferencesWithRay returns the ray's hits as a lazy, single-pass
// sequence of fully resolved interference records
func (w *World) InterferencesWithRay(ray core.Ray) *InterferenceSeq {
	return &InterferenceSeq{ray: ray, hits: w.Intersect(ray)}
}

// ShadeHit resolves the color of one interference: Phong lighting per
// light with hard shadow attenuation, plus the recursively reflected
// color. It declines (ok=false) when the world has no light or the hit
// object is no longer part of the world.
func (w *World) ShadeHit(inf Interference, remaining int) (core.Color, bool) {
	if len(w.Lights) == 0 || !w.Contains(inf.Object) {
		return core.Black, false
	}

	surface := core.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(inf.OverPoint, light)
		surface = surface.Add(Lighting(inf.Object, light, inf.OverPoint, inf.Eye, inf.Normal, shadowed))
	}

	return surface.Add(w.ReflectedColor(inf, remaining)), true
}

// ColorAt shades the nearest non-negative hit of the ray, or returns the
// black background on a miss. A world with no lights shades to black
// rather than failing.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	inf, ok := w.InterferencesWithRay(ray).Hit()
	if !ok {
		return core.Black
	}
	color, ok := w.ShadeHit(inf, remaining)
	if !ok {
		return core.Black
	}
	return color
}

// ReflectedColor casts a reflection ray from the interference and returns
// its color scaled by the material's reflectivity. Depth exhaustion is
// the defined terminal state, not an error, and a non-reflective surface
// short-circuits without casting a ray.
func (w *World) ReflectedColor(inf Interference, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	reflective := inf.Object.Material.Reflective
	if reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(inf.OverPoint, inf.Reflect)
	return w.ColorAt(reflectRay, remaining-1).Scale(reflective)
}

// IsShadowed reports whether a point is shadowed with respect to a light:
// some object intercepts the ray toward the light strictly before the
// light itself
func (w *World) IsShadowed(point core.Tuple, light PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()

	ray := core.NewRay(point, toLight.Normalize())
	hit, ok := geometry.ClosestHit(w.Intersect(ray))
	return ok && hit.T < distance
}
