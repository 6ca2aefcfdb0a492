package geometry

import (
	"math"
	"testing"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

func TestCylinder_LocalIntersect_Miss(t *testing.T) {
	cyl := NewCylinder()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
	}{
		{"on the surface pointing up", core.NewPoint(1, 0, 0), core.NewVector(0, 1, 0)},
		{"inside pointing up", core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0)},
		{"askew away from the cylinder", core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction.Normalize())
			if xs := cyl.LocalIntersect(ray); len(xs) != 0 {
				t.Errorf("Expected miss, got %d intersections", len(xs))
			}
		})
	}
}

func TestCylinder_LocalIntersect_Hits(t *testing.T) {
	cyl := NewCylinder()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		t1, t2    float64
	}{
		{"tangent", core.NewPoint(1, 0, -5), core.NewVector(0, 0, 1), 5, 5},
		{"through the center", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{"askew strike", core.NewPoint(0.5, 0, -5), core.NewVector(0.1, 1, 1), 6.80798, 7.08872},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction.Normalize())
			xs := cyl.LocalIntersect(ray)
			if len(xs) != 2 {
				t.Fatalf("Expected 2 intersections, got %d", len(xs))
			}
			if math.Abs(xs[0].T-tt.t1) > 1e-4 || math.Abs(xs[1].T-tt.t2) > 1e-4 {
				t.Errorf("Expected times %v and %v, got %v and %v", tt.t1, tt.t2, xs[0].T, xs[1].T)
			}
		})
	}
}

func TestCylinder_Truncated(t *testing.T) {
	cyl := NewTruncatedCylinder(1, 2, false)

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"diagonal escape from inside", core.NewPoint(0, 1.5, 0), core.NewVector(0.1, 1, 0), 0},
		{"perpendicular above the top", core.NewPoint(0, 3, -5), core.NewVector(0, 0, 1), 0},
		{"perpendicular below the bottom", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 0},
		{"exactly at the top bound is exclusive", core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1), 0},
		{"exactly at the bottom bound is exclusive", core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1), 0},
		{"through the middle", core.NewPoint(0, 1.5, -2), core.NewVector(0, 0, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction.Normalize())
			if xs := cyl.LocalIntersect(ray); len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_Capped(t *testing.T) {
	cyl := NewTruncatedCylinder(1, 2, true)

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"down the axis through both caps", core.NewPoint(0, 3, 0), core.NewVector(0, -1, 0), 2},
		{"diagonal through a cap and a wall", core.NewPoint(0, 3, -2), core.NewVector(0, -1, 2), 2},
		{"diagonal exiting at a cap edge", core.NewPoint(0, 4, -2), core.NewVector(0, -1, 1), 2},
		{"up through a cap and a wall", core.NewPoint(0, 0, -2), core.NewVector(0, 1, 2), 2},
		{"up exiting at a cap edge", core.NewPoint(0, -1, -2), core.NewVector(0, 1, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction.Normalize())
			if xs := cyl.LocalIntersect(ray); len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_LocalNormalAt(t *testing.T) {
	t.Run("side surface", func(t *testing.T) {
		cyl := NewCylinder()
		tests := []struct {
			point    core.Tuple
			expected core.Tuple
		}{
			{core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
			{core.NewPoint(0, 5, -1), core.NewVector(0, 0, -1)},
			{core.NewPoint(0, -2, 1), core.NewVector(0, 0, 1)},
			{core.NewPoint(-1, 1, 0), core.NewVector(-1, 0, 0)},
		}
		for _, tt := range tests {
			if normal := cyl.LocalNormalAt(tt.point); !normal.Equals(tt.expected) {
				t.Errorf("At %v: expected normal %v, got %v", tt.point, tt.expected, normal)
			}
		}
	})

	t.Run("end caps", func(t *testing.T) {
		cyl := NewTruncatedCylinder(1, 2, true)
		tests := []struct {
			point    core.Tuple
			expected core.Tuple
		}{
			{core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0)},
			{core.NewPoint(0.5, 1, 0), core.NewVector(0, -1, 0)},
			{core.NewPoint(0, 2, 0), core.NewVector(0, 1, 0)},
			{core.NewPoint(0, 2, 0.5), core.NewVector(0, 1, 0)},
		}
		for _, tt := range tests {
			if normal := cyl.LocalNormalAt(tt.point); !normal.Equals(tt.expected) {
				t.Errorf("At %v: expected normal %v, got %v", tt.point, tt.expected, normal)
			}
		}
	})
}
