package core

import (
	"math/rand"
)

// minSampleLengthSquared rejects in-sphere samples so close to the origin that normalizing them underflows
const minSampleLengthSquared = 1e-160

// RandomFloat returns a uniform value in [min, max)
func RandomFloat(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomVec3 returns a vector with components uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return NewVec3(random.Float64(), random.Float64(), random.Float64())
}

// RandomVec3Range returns a vector with components uniform in [min, max)
func RandomVec3Range(random *rand.Rand, min, max float64) Vec3 {
	return NewVec3(
		RandomFloat(random, min, max),
		RandomFloat(random, min, max),
		RandomFloat(random, min, max),
	)
}

// RandomInUnitSphere generates a random point inside the unit sphere.
// Points within sqrt(1e-160) of the origin are rejected.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(random, -1, 1)
		lensq := p.LengthSquared()
		if minSampleLengthSquared < lensq && lensq <= 1 {
			return p
		}
	}
}

// RandomUnitVector generates a random direction uniformly distributed on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomOnHemisphere generates a random unit direction in the hemisphere around normal
func RandomOnHemisphere(random *rand.Rand, normal Vec3) Vec3 {
	onUnitSphere := RandomUnitVector(random)
	if onUnitSphere.Dot(normal) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(RandomFloat(random, -1, 1), RandomFloat(random, -1, 1), 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
