package scene

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/geometry"
	"github.com/rmoran/go-phong-raytracer/pkg/material"
	"github.com/rmoran/go-phong-raytracer/pkg/renderer"
	"github.com/rmoran/go-phong-raytracer/pkg/world"
)

// NewReflectionsScene creates a scene dominated by mirrors: a polished
// sphere between two reflective walls, demonstrating the bounded
// recursion of reflected color
func NewReflectionsScene(width, height int) (*world.World, *renderer.Camera) {
	w := world.NewWorld()

	// Matte checkered floor
	floor := geometry.NewObject(geometry.NewPlane())
	floor.Material.Pattern = material.NewCheckersPattern(
		material.NewSolidPattern(core.NewColor(0.9, 0.9, 0.9)),
		material.NewSolidPattern(core.NewColor(0.1, 0.1, 0.1)),
	)
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.08
	w.AddObject(floor)

	// Two facing mirror walls; the reflection budget keeps the render
	// finite even though the walls see each other
	back := geometry.NewObject(geometry.NewPlane())
	back.SetTransform(core.Translation(0, 0, 6).Multiply(core.RotationX(math.Pi / 2)))
	back.Material.Pattern = material.NewSolidPattern(core.NewColor(0.05, 0.05, 0.05))
	back.Material.Reflective = 0.9
	back.Material.Diffuse = 0.1
	w.AddObject(back)

	front := geometry.NewObject(geometry.NewPlane())
	front.SetTransform(core.Translation(0, 0, -12).Multiply(core.RotationX(math.Pi / 2)))
	front.Material.Pattern = material.NewSolidPattern(core.NewColor(0.05, 0.05, 0.05))
	front.Material.Reflective = 0.9
	front.Material.Diffuse = 0.1
	w.AddObject(front)

	// Polished metal sphere
	mirror := geometry.NewObject(geometry.NewSphere())
	mirror.SetTransform(core.Translation(0, 1, 0))
	mirror.Material.Pattern = material.NewSolidPattern(core.NewColor(0.1, 0.1, 0.12))
	mirror.Material.Reflective = 0.95
	mirror.Material.Diffuse = 0.2
	mirror.Material.Specular = 1
	mirror.Material.Shininess = 400
	w.AddObject(mirror)

	// Colored companions to reflect
	red := geometry.NewObject(geometry.NewSphere())
	red.SetTransform(core.Translation(-2.2, 0.6, -1.2).Multiply(core.Scaling(0.6, 0.6, 0.6)))
	red.Material.Pattern = material.NewSolidPattern(core.NewColor(0.9, 0.2, 0.2))
	w.AddObject(red)

	blue := geometry.NewObject(geometry.NewSphere())
	blue.SetTransform(core.Translation(2.1, 0.4, -0.8).Multiply(core.Scaling(0.4, 0.4, 0.4)))
	blue.Material.Pattern = material.NewSolidPattern(core.NewColor(0.2, 0.3, 0.9))
	w.AddObject(blue)

	w.AddLight(world.NewPointLight(core.NewPoint(-8, 10, -8), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.8, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return w, camera
}
