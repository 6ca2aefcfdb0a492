package scene

import (
	"sort"

	"github.com/rmoran/go-phong-raytracer/pkg/renderer"
	"github.com/rmoran/go-phong-raytracer/pkg/world"
)

// Builder constructs a named scene: the world to render and the camera
// to render it through. The camera is built for the requested image size.
type Builder func(width, height int) (*world.World, *renderer.Camera)

// builders is the registry of named example scenes, constructed once at
// startup and looked up by the CLI and the web server
var builders = map[string]Builder{
	"default":     NewDefaultScene,
	"patterns":    NewPatternsScene,
	"reflections": NewReflectionsScene,
	"cylinders":   NewCylindersScene,
}

// Get returns the builder registered under the given name
func Get(name string) (Builder, bool) {
	b, ok := builders[name]
	return b, ok
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
