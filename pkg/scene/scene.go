// Package scene builds the preset worlds the command line can render.
// Scenes are assembled by direct calls; nothing is parsed from disk.
package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by Lookup for names that are not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Description string
	World       *geometry.HittableList // Objects in the scene
	Camera      renderer.CameraConfig  // Recommended camera; callers may override fields
}

type builder struct {
	description string
	build       func(random *rand.Rand) *Scene
}

var registry = map[string]builder{
	"basic":      {"Blue sphere resting on a yellow ground sphere", func(*rand.Rand) *Scene { return NewBasicScene() }},
	"materials":  {"Diffuse, hollow glass and fuzzy metal spheres with depth of field", func(*rand.Rand) *Scene { return NewMaterialsScene() }},
	"cover":      {"Random field of small spheres around three large ones", NewCoverScene},
	"spheregrid": {"Grid of metal spheres colored across hue and chroma", func(*rand.Rand) *Scene { return NewSphereGridScene() }},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a registered scene
func Describe(name string) string {
	return registry[name].description
}

// Lookup builds the named scene. Scenes with random layouts draw from a
// generator seeded with seed so the same seed always yields the same world.
func Lookup(name string, seed int64) (*Scene, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s := b.build(rand.New(rand.NewSource(seed)))
	s.Name = name
	s.Description = b.description
	return s, nil
}
