// Package material implements the surface scattering policies used by the path tracer.
//
// Every material is an immutable value satisfying core.Material, so a single
// instance can be shared by any number of spheres and render workers.
package material

import "github.com/df07/go-weekend-pathtracer/pkg/core"

// white is the attenuation of materials that do not absorb light
var white = core.NewVec3(1, 1, 1)

var (
	_ core.Material = (*Lambertian)(nil)
	_ core.Material = (*Metal)(nil)
	_ core.Material = (*Dielectric)(nil)
)
