package scene

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/geometry"
	"github.com/rmoran/go-phong-raytracer/pkg/material"
	"github.com/rmoran/go-phong-raytracer/pkg/renderer"
	"github.com/rmoran/go-phong-raytracer/pkg/world"
)

// NewDefaultScene creates the default scene: three spheres resting on a
// checkered floor under a single point light
func NewDefaultScene(width, height int) (*world.World, *renderer.Camera) {
	w := world.NewWorld()

	// Checkered floor
	floor := geometry.NewObject(geometry.NewPlane())
	floor.Material.Pattern = material.NewCheckersPattern(
		material.NewSolidPattern(core.NewColor(0.85, 0.85, 0.85)),
		material.NewSolidPattern(core.NewColor(0.25, 0.25, 0.25)),
	)
	floor.Material.Specular = 0
	w.AddObject(floor)

	// Large middle sphere
	middle := geometry.NewObject(geometry.NewSphere())
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material.Pattern = material.NewSolidPattern(core.NewColor(0.1, 1, 0.5))
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3
	w.AddObject(middle)

	// Smaller sphere on the right
	right := geometry.NewObject(geometry.NewSphere())
	right.SetTransform(core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	right.Material.Pattern = material.NewSolidPattern(core.NewColor(0.5, 1, 0.1))
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3
	w.AddObject(right)

	// Small sphere on the left
	left := geometry.NewObject(geometry.NewSphere())
	left.SetTransform(core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33)))
	left.Material.Pattern = material.NewSolidPattern(core.NewColor(1, 0.8, 0.1))
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3
	w.AddObject(left)

	w.AddLight(world.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return w, camera
}
