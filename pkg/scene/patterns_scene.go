package scene

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/geometry"
	"github.com/rmoran/go-phong-raytracer/pkg/material"
	"github.com/rmoran/go-phong-raytracer/pkg/renderer"
	"github.com/rmoran/go-phong-raytracer/pkg/world"
)

// NewPatternsScene creates a scene exercising every pattern kind: nested
// stripes on the floor, a gradient sphere, a ringed sphere and a blended
// cube
func NewPatternsScene(width, height int) (*world.World, *renderer.Camera) {
	w := world.NewWorld()

	// Floor of perpendicular stripes blended together
	stripesA := material.NewStripePattern(
		material.NewSolidPattern(core.NewColor(0.9, 0.9, 0.9)),
		material.NewSolidPattern(core.NewColor(0.4, 0.4, 0.4)),
	)
	stripesB := material.NewStripePattern(
		material.NewSolidPattern(core.NewColor(0.9, 0.9, 0.9)),
		material.NewSolidPattern(core.NewColor(0.4, 0.4, 0.4)),
	)
	stripesB.SetTransform(core.RotationY(math.Pi / 2))

	floor := geometry.NewObject(geometry.NewPlane())
	floor.Material.Pattern = material.NewBlendedPattern(stripesA, stripesB)
	floor.Material.Specular = 0
	w.AddObject(floor)

	// Gradient sphere
	gradient := material.NewLinearGradientPattern(
		core.NewColor(1, 0.2, 0.2),
		core.NewColor(0.2, 0.2, 1),
	)
	// Stretch the gradient across the sphere's diameter
	gradient.SetTransform(core.Translation(-1, 0, 0).Multiply(core.Scaling(2, 2, 2)))

	left := geometry.NewObject(geometry.NewSphere())
	left.SetTransform(core.Translation(-1.7, 1, 0.5))
	left.Material.Pattern = gradient
	w.AddObject(left)

	// Ringed sphere
	rings := material.NewRingPattern(
		material.NewSolidPattern(core.NewColor(0.1, 0.6, 0.3)),
		material.NewSolidPattern(core.NewColor(0.9, 0.9, 0.6)),
	)
	rings.SetTransform(core.Scaling(0.17, 0.17, 0.17).Multiply(core.RotationX(-math.Pi / 4)))

	middle := geometry.NewObject(geometry.NewSphere())
	middle.SetTransform(core.Translation(0.6, 1, 1.5))
	middle.Material.Pattern = rings
	w.AddObject(middle)

	// Cube with a radial gradient top
	radial := material.NewRadialGradientPattern(
		core.NewColor(1, 0.9, 0.1),
		core.NewColor(0.7, 0.2, 0.1),
	)
	radial.SetTransform(core.Scaling(0.3, 0.3, 0.3))

	cube := geometry.NewObject(geometry.NewCube())
	cube.SetTransform(core.Translation(2.2, 0.6, -0.5).
		Multiply(core.RotationY(math.Pi / 5)).
		Multiply(core.Scaling(0.6, 0.6, 0.6)))
	cube.Material.Pattern = radial
	w.AddObject(cube)

	w.AddLight(world.NewPointLight(core.NewPoint(-10, 12, -10), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return w, camera
}
