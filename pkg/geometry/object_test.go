package geometry

import (
	"math"
	"testing"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

func TestObject_Intersect_Transformed(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	t.Run("scaled sphere", func(t *testing.T) {
		obj := NewObject(NewSphere())
		obj.SetTransform(core.Scaling(2, 2, 2))

		xs := obj.Intersect(ray)
		if len(xs) != 2 {
			t.Fatalf("Expected 2 intersections, got %d", len(xs))
		}
		if math.Abs(xs[0].T-3) > 1e-9 || math.Abs(xs[1].T-7) > 1e-9 {
			t.Errorf("Expected times 3 and 7, got %v and %v", xs[0].T, xs[1].T)
		}
	})

	t.Run("translated sphere misses", func(t *testing.T) {
		obj := NewObject(NewSphere())
		obj.SetTransform(core.Translation(5, 0, 0))

		if xs := obj.Intersect(ray); len(xs) != 0 {
			t.Errorf("Expected miss, got %d intersections", len(xs))
		}
	})

	t.Run("non-invertible transform yields nothing", func(t *testing.T) {
		obj := NewObject(NewSphere())
		obj.SetTransform(core.Scaling(0, 0, 0))

		if xs := obj.Intersect(ray); len(xs) != 0 {
			t.Errorf("Expected no intersections for a degenerate transform, got %d", len(xs))
		}
	})
}

func TestObject_NormalAt(t *testing.T) {
	t.Run("translated sphere", func(t *testing.T) {
		obj := NewObject(NewSphere())
		obj.SetTransform(core.Translation(0, 1, 0))

		normal := obj.NormalAt(core.NewPoint(0, 1.70711, -0.70711))
		if !normal.Equals(core.NewVector(0, 0.70711, -0.70711)) {
			t.Errorf("unexpected normal %v", normal)
		}
	})

	t.Run("scaled and rotated sphere", func(t *testing.T) {
		obj := NewObject(NewSphere())
		obj.SetTransform(core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi / 5)))

		normal := obj.NormalAt(core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2))
		if !normal.Equals(core.NewVector(0, 0.97014, -0.24254)) {
			t.Errorf("unexpected normal %v", normal)
		}
	})

	t.Run("normals come back normalized", func(t *testing.T) {
		obj := NewObject(NewSphere())
		obj.SetTransform(core.Scaling(1, 3, 0.5))

		normal := obj.NormalAt(obj.Transform().MultiplyTuple(core.NewPoint(1, 0, 0)))
		if math.Abs(normal.Magnitude()-1) > 1e-9 {
			t.Errorf("Expected unit normal, got magnitude %v", normal.Magnitude())
		}
	})
}

func TestClosestHit(t *testing.T) {
	obj := NewObject(NewSphere())
	rec := func(t float64) HitRecord {
		return HitRecord{T: t, Object: obj}
	}

	tests := []struct {
		name     string
		records  []HitRecord
		expected float64
		found    bool
	}{
		{"all positive", []HitRecord{rec(1), rec(2)}, 1, true},
		{"some negative", []HitRecord{rec(-1), rec(1)}, 1, true},
		{"all negative", []HitRecord{rec(-2), rec(-1)}, 0, false},
		{"smallest non-negative wins", []HitRecord{rec(5), rec(7), rec(-3), rec(2)}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := ClosestHit(tt.records)
			if ok != tt.found {
				t.Fatalf("Expected found=%t, got %t", tt.found, ok)
			}
			if ok && math.Abs(hit.T-tt.expected) > 1e-9 {
				t.Errorf("Expected hit at t=%v, got t=%v", tt.expected, hit.T)
			}
		})
	}
}

func TestObject_MaterialIndependence(t *testing.T) {
	// Two objects may share one shape while owning separate materials
	shape := NewSphere()
	a := NewObject(shape)
	b := NewObject(shape)

	a.Material.Ambient = 1
	if b.Material.Ambient == 1 {
		t.Error("Materials must be independent per object even when shapes are shared")
	}
}
