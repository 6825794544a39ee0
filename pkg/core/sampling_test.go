package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomVec3Range(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := RandomVec3Range(random, -2, 3)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -2 || c >= 3 {
				t.Fatalf("Component %f outside [-2, 3)", c)
			}
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(random)
		lensq := p.LengthSquared()
		if lensq > 1 || lensq <= 1e-160 {
			t.Fatalf("Sample %v has squared length %g outside (1e-160, 1]", p, lensq)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
	}
}

func TestRandomOnHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 500; i++ {
			v := RandomOnHemisphere(random, normal)
			if v.Dot(normal) < 0 {
				t.Fatalf("Sample %v points away from normal %v", v, normal)
			}
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie in the z=0 plane, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Disk sample %v outside unit disk", p)
		}
	}
}

func TestSampling_Deterministic(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 10; i++ {
		if !RandomUnitVector(a).Equals(RandomUnitVector(b)) {
			t.Fatal("Identically seeded generators should produce identical samples")
		}
	}
}
