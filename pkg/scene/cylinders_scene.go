package scene

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/geometry"
	"github.com/rmoran/go-phong-raytracer/pkg/material"
	"github.com/rmoran/go-phong-raytracer/pkg/renderer"
	"github.com/rmoran/go-phong-raytracer/pkg/world"
)

// NewCylindersScene creates a ring of capped cylinders of varying height
// around a cube pedestal
func NewCylindersScene(width, height int) (*world.World, *renderer.Camera) {
	w := world.NewWorld()

	floor := geometry.NewObject(geometry.NewPlane())
	floor.Material.Pattern = material.NewCheckersPattern(
		material.NewSolidPattern(core.NewColor(0.8, 0.8, 0.8)),
		material.NewSolidPattern(core.NewColor(0.3, 0.3, 0.3)),
	)
	floor.Material.Specular = 0
	w.AddObject(floor)

	// Pedestal cube
	pedestal := geometry.NewObject(geometry.NewCube())
	pedestal.SetTransform(core.Translation(0, 0.25, 0).Multiply(core.Scaling(0.8, 0.25, 0.8)))
	pedestal.Material.Pattern = material.NewSolidPattern(core.NewColor(0.6, 0.5, 0.4))
	w.AddObject(pedestal)

	// Open cylinder standing on the pedestal
	tube := geometry.NewObject(geometry.NewTruncatedCylinder(0, 2, false))
	tube.SetTransform(core.Translation(0, 0.5, 0).Multiply(core.Scaling(0.4, 1, 0.4)))
	tube.Material.Pattern = material.NewSolidPattern(core.NewColor(0.2, 0.6, 0.8))
	tube.Material.Reflective = 0.2
	w.AddObject(tube)

	// Ring of closed cylinders
	count := 8
	for i := 0; i < count; i++ {
		angle := float64(i) * 2 * math.Pi / float64(count)
		h := 0.3 + 0.1*float64(i)

		pillar := geometry.NewObject(geometry.NewTruncatedCylinder(0, h, true))
		pillar.SetTransform(core.RotationY(angle).
			Multiply(core.Translation(2.5, 0, 0)).
			Multiply(core.Scaling(0.25, 1, 0.25)))
		pillar.Material.Pattern = material.NewSolidPattern(core.NewColor(
			0.4+0.5*float64(i)/float64(count),
			0.3,
			0.9-0.6*float64(i)/float64(count),
		))
		w.AddObject(pillar)
	}

	w.AddLight(world.NewPointLight(core.NewPoint(-6, 8, -6), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 3.5, -6),
		core.NewPoint(0, 0.8, 0),
		core.NewVector(0, 1, 0),
	))

	return w, camera
}
