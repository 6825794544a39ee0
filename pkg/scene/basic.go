package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// NewBasicScene creates a small sphere resting on a very large ground sphere
func NewBasicScene() *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = 16.0 / 9.0
	cameraConfig.ImageWidth = 400

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
	)

	return &Scene{
		World:  world,
		Camera: cameraConfig,
	}
}
