package world

import (
	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// PointLight is a dimensionless light source with a position and an
// intensity color. Point lights cast hard shadows; there is no area term.
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light at the given position
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	position.W = 1
	return PointLight{Position: position, Intensity: intensity}
}
