package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// NewMaterialsScene shows each material side by side, viewed from above with a shallow focus
func NewMaterialsScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxBounces:      50,
		VerticalFOV:     20,
		LookFrom:        core.NewVec3(-2, 2, 1),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    10.0,
		FocusDistance:   3.4,
	}

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialGlass := material.NewDielectric(1.5)
	materialGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	world := geometry.NewHittableList()
	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround))
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, materialCenter))

	// Hollow glass: the negative radius turns the inner surface inside out
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass))
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, materialGlass))

	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialGold))

	return &Scene{
		World:  world,
		Camera: cameraConfig,
	}
}
