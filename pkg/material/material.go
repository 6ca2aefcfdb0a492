package material

import (
	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// Default Phong reflectance parameters
const (
	DefaultAmbient         = 0.1
	DefaultDiffuse         = 0.9
	DefaultSpecular        = 0.9
	DefaultShininess       = 200.0
	DefaultReflective      = 0.0
	DefaultTransparency    = 0.0
	DefaultRefractiveIndex = 1.0
)

// VacuumRefractiveIndex is the refractive index outside every object
const VacuumRefractiveIndex = 1.0

// Material holds the surface-reflectance parameters consumed by shading.
// Transparency and RefractiveIndex participate in the refractive-index
// bookkeeping along a ray but no refracted light path is traced yet.
type Material struct {
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// NewDefaultMaterial creates a solid white material with the default
// Phong parameters
func NewDefaultMaterial() Material {
	return Material{
		Pattern:         NewSolidPattern(core.White),
		Ambient:         DefaultAmbient,
		Diffuse:         DefaultDiffuse,
		Specular:        DefaultSpecular,
		Shininess:       DefaultShininess,
		Reflective:      DefaultReflective,
		Transparency:    DefaultTransparency,
		RefractiveIndex: DefaultRefractiveIndex,
	}
}

// ColorAt resolves the material's color at a world-space point. The
// object's inverse transform maps the point into object space first, so
// patterns stay attached to the surface they decorate.
func (m Material) ColorAt(objectInverse core.Matrix, worldPoint core.Tuple) core.Color {
	objectPoint := objectInverse.MultiplyTuple(worldPoint)
	return m.Pattern.ColorAt(objectPoint)
}
