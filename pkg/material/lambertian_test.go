package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestLambertian_ScatterAboveSurface(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: core.NewVec3(0, 0, 1),
	}
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, random)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}

		// normal + unit vector never points below the tangent plane
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scattered direction %v points into the surface", scatter.Scattered.Direction)
		}

		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		sample   core.Vec3
		expected core.Vec3
	}{
		{"exact cancellation", normal.Negate(), normal},
		{"near cancellation", core.NewVec3(1e-10, -1, -1e-10), normal},
		{"regular sample", core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffuseDirection(normal, tt.sample)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected direction %v, got %v", tt.expected, got)
			}
			if got.NearZero() {
				t.Errorf("Direction must never be degenerate, got %v", got)
			}
		})
	}
}
