package scene

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cone response
	lCone := l + 0.3963377774*a + 0.2158037573*b
	mCone := l - 0.1055613458*a - 0.0638541728*b
	sCone := l - 0.0894841775*a - 1.2914855480*b

	lCone = lCone * lCone * lCone
	mCone = mCone * mCone * mCone
	sCone = sCone * sCone * sCone

	unit := core.NewInterval(0, 1)
	return core.NewVec3(
		unit.Clamp(+4.0767416621*lCone-3.3077115913*mCone+0.2309699292*sCone),
		unit.Clamp(-1.2684380046*lCone+2.6097574011*mCone-0.3413193965*sCone),
		unit.Clamp(-0.0041960863*lCone-0.7034186147*mCone+1.7076147010*sCone),
	)
}

// NewSphereGridScene creates a grid of metal spheres whose hue varies along X and chroma along Z
func NewSphereGridScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 50,
		MaxBounces:      20,
		VerticalFOV:     40,
		LookFrom:        core.NewVec3(4.5, 6, 18),
		LookAt:          core.NewVec3(4.5, 0.8, 4.5),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.3,
		FocusDistance:   core.NewVec3(4.5, 6, 18).Subtract(core.NewVec3(4.5, 0.8, 4.5)).Length(),
	}

	world := geometry.NewHittableList()
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// Every sphere is tested for every ray, so the grid stays small
	gridSize := 10
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := spacing * 0.35

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			fuzz := 0.05 + 0.1*float64((i+j)%3)/2.0
			world.Add(geometry.NewSphere(position, sphereRadius, material.NewMetal(oklchToRGB(lightness, chroma, hue), fuzz)))
		}
	}

	return &Scene{
		World:  world,
		Camera: cameraConfig,
	}
}
