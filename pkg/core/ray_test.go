package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRay_CoercesPointAndVector(t *testing.T) {
	// Caller-supplied w values are overridden
	ray := NewRay(Tuple{1, 2, 3, 0}, Tuple{0, 1, 0, 1})
	if !ray.Origin.IsPoint() {
		t.Error("Ray origin should always be a point")
	}
	if !ray.Direction.IsVector() {
		t.Error("Ray direction should always be a vector")
	}
}

func TestRay_Position(t *testing.T) {
	ray := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.expected, ray.Position(tt.t), approx); diff != "" {
			t.Errorf("Position(%v) mismatch (-want +got):\n%s", tt.t, diff)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	ray := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	translated := ray.Transform(Translation(3, 4, 5))
	if diff := cmp.Diff(NewPoint(4, 6, 8), translated.Origin, approx); diff != "" {
		t.Errorf("unexpected translated origin (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewVector(0, 1, 0), translated.Direction, approx); diff != "" {
		t.Errorf("unexpected translated direction (-want +got):\n%s", diff)
	}

	scaled := ray.Transform(Scaling(2, 3, 4))
	if diff := cmp.Diff(NewPoint(2, 6, 12), scaled.Origin, approx); diff != "" {
		t.Errorf("unexpected scaled origin (-want +got):\n%s", diff)
	}
	// The direction is not renormalized, preserving t values
	if diff := cmp.Diff(NewVector(0, 3, 0), scaled.Direction, approx); diff != "" {
		t.Errorf("unexpected scaled direction (-want +got):\n%s", diff)
	}
}
