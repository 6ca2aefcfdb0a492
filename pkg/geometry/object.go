package geometry

import (
	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/material"
)

// Object couples a shape with a material and a placement transform. The
// shape may be shared between objects; the material and transform belong
// to this object alone.
type Object struct {
	Shape    Shape
	Material material.Material

	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	invertible       bool
}

// HitRecord is a world-space intersection: the time of impact, the
// world-space surface normal and the object that was hit
type HitRecord struct {
	T      float64
	Normal core.Tuple
	Object *Object
}

// NewObject creates an object at the identity transform with the default
// material
func NewObject(shape Shape) *Object {
	o := &Object{
		Shape:    shape,
		Material: material.NewDefaultMaterial(),
	}
	o.SetTransform(core.Identity())
	return o
}

// SetTransform places the object and caches the inverse used for every
// ray and normal conversion. A non-invertible transform is a scene
// configuration error; the object then reports no intersections.
func (o *Object) SetTransform(m core.Matrix) {
	o.transform = m
	o.inverse, o.invertible = m.Inverse()
	if o.invertible {
		o.inverseTranspose = o.inverse.Transpose()
	}
}

// Transform returns the object's placement transform
func (o *Object) Transform() core.Matrix {
	return o.transform
}

// Inverse returns the cached inverse of the placement transform. The
// second return value is false when the transform is not invertible.
func (o *Object) Inverse() (core.Matrix, bool) {
	return o.inverse, o.invertible
}

// Intersect transforms a world-space ray into the object's local frame,
// delegates to the shape, and promotes each hit back to world space
func (o *Object) Intersect(ray core.Ray) []HitRecord {
	if !o.invertible {
		return nil
	}

	localRay := ray.Transform(o.inverse)
	locals := o.Shape.LocalIntersect(localRay)
	if len(locals) == 0 {
		return nil
	}

	records := make([]HitRecord, 0, len(locals))
	for _, hit := range locals {
		records = append(records, HitRecord{
			T:      hit.T,
			Normal: o.NormalToWorld(hit.Normal),
			Object: o,
		})
	}
	return records
}

// NormalToWorld converts a local-space normal to world space. Normals
// transform by the transpose of the inverse, not the transform itself,
// so non-uniform scales keep them perpendicular to the surface.
func (o *Object) NormalToWorld(localNormal core.Tuple) core.Tuple {
	worldNormal := o.inverseTranspose.MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// NormalAt returns the world-space normal at a world-space point on the
// object's surface
func (o *Object) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := o.inverse.MultiplyTuple(worldPoint)
	return o.NormalToWorld(o.Shape.LocalNormalAt(localPoint))
}

// ColorAt resolves the object's material color at a world-space point.
// Patterns are defined in object space, so the point passes through the
// object's inverse transform before the pattern applies its own.
func (o *Object) ColorAt(worldPoint core.Tuple) core.Color {
	return o.Material.ColorAt(o.inverse, worldPoint)
}

// ClosestHit returns the hit with the smallest non-negative time of
// impact, or false when every hit lies behind the ray origin
func ClosestHit(records []HitRecord) (HitRecord, bool) {
	var closest HitRecord
	found := false
	for _, rec := range records {
		if rec.T < 0 {
			continue
		}
		if !found || rec.T < closest.T {
			closest = rec
			found = true
		}
	}
	return closest, found
}
