package material

import (
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	direction := diffuseDirection(hit.Normal, core.RandomUnitVector(random))

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}

// diffuseDirection offsets the normal by a unit sphere sample, which gives a
// cosine-weighted direction. When the sample cancels the normal the normal
// itself is used.
func diffuseDirection(normal, sample core.Vec3) core.Vec3 {
	direction := normal.Add(sample)
	if direction.NearZero() {
		return normal
	}
	return direction
}
