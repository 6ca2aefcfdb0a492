package world

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/geometry"
)

// Lighting evaluates the Phong reflectance model for one light: ambient
// plus diffuse plus specular, using the object's material color at the
// point. A shadowed point receives only the ambient term.
func Lighting(object *geometry.Object, light PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	m := object.Material

	// Surface color modulated by the light's intensity
	effective := object.ColorAt(point).Multiply(light.Intensity)
	ambient := effective.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightVec := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightVec.Dot(normal)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectVec := lightVec.Negate().Reflect(normal)
	reflectDotEye := reflectVec.Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
