package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestDielectric_AlwaysScattersWithWhiteAttenuation(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	for i := 0; i < 100; i++ {
		result, scattered := glass.Scatter(ray, hit, random)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if !result.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}
	}
}

func TestDielectric_MatchingMediumDoesNotBend(t *testing.T) {
	air := NewDielectric(1.0)
	random := rand.New(rand.NewSource(42))
	normal := core.NewVec3(0, 1, 0)

	// Head-on: Schlick reflectance is exactly zero, so the ray always refracts
	headOn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -2, 0))
	for _, frontFace := range []bool{true, false} {
		hit := core.HitRecord{Normal: normal, FrontFace: frontFace}
		result, _ := air.Scatter(headOn, hit, random)
		if result.Scattered.Direction.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-12 {
			t.Errorf("Expected straight-through direction, got %v (front=%t)", result.Scattered.Direction, frontFace)
		}
	}

	// Oblique: every refracted ray is collinear with the incoming one
	incoming := core.NewVec3(1, -2, 0.5).Normalize()
	mirror := core.Reflect(incoming, normal)
	hit := core.HitRecord{Normal: normal, FrontFace: true}
	refracted := 0
	for i := 0; i < 200; i++ {
		result, _ := air.Scatter(core.NewRay(core.NewVec3(0, 0, 0), incoming), hit, random)
		dir := result.Scattered.Direction
		switch {
		case dir.Subtract(incoming).Length() < 1e-12:
			refracted++
		case dir.Subtract(mirror).Length() < 1e-12:
		default:
			t.Fatalf("Direction %v is neither straight-through nor mirror", dir)
		}
	}
	if refracted == 0 {
		t.Error("Expected most rays to pass straight through a matching medium")
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	// Exiting glass at 60 degrees: 1.5 * sin(60) > 1
	theta := math.Pi / 3
	incoming := core.NewVec3(math.Sin(theta), math.Cos(theta), 0)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, -1, 0),
		FrontFace: false,
	}
	expected := core.Reflect(incoming, hit.Normal)

	for i := 0; i < 50; i++ {
		result, scattered := glass.Scatter(core.NewRay(core.NewVec3(0, -1, 0), incoming), hit, random)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Fatalf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
		}
	}
}

func TestDielectric_RefractionBendsTowardNormal(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	incoming := core.NewVec3(1, -1, 0).Normalize()
	hit := core.HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	refracted := 0
	for i := 0; i < 200; i++ {
		result, _ := glass.Scatter(core.NewRay(core.NewVec3(-1, 1, 0), incoming), hit, random)
		dir := result.Scattered.Direction
		if dir.Y < 0 {
			refracted++
			sinOut := dir.X / dir.Length()
			if math.Abs(sinOut-math.Sin(math.Pi/4)/1.5) > 1e-9 {
				t.Fatalf("Snell's law violated: sin(theta_t) = %f", sinOut)
			}
		}
	}

	if refracted == 0 {
		t.Error("Expected refraction for air-to-glass at 45 degrees")
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence glass", 1.0, 1.5, 0.04},
		{"grazing incidence", 0.0, 1.5, 1.0},
		{"matching medium normal", 1.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}
