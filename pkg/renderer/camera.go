package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// CameraConfig holds the user-facing camera options
type CameraConfig struct {
	AspectRatio     float64   // Target width / height ratio
	ImageWidth      int       // Output image width in pixels
	SamplesPerPixel int       // Stochastic samples averaged per pixel
	MaxBounces      int       // Recursion cap for the radiance estimate
	VerticalFOV     float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Aperture cone angle in degrees; <= 0 disables depth of field
	FocusDistance   float64   // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxBounces:      10,
		VerticalFOV:     90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// ImageHeight derives the image height from width and aspect ratio, never less than 1
func (c CameraConfig) ImageHeight() int {
	return max(1, int(float64(c.ImageWidth)/c.AspectRatio))
}

// Validate rejects configurations that would produce NaN-poisoned output
func (c CameraConfig) Validate() error {
	switch {
	case c.ImageWidth <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, c.ImageWidth)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w: got %g", ErrInvalidAspectRatio, c.AspectRatio)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	case c.MaxBounces <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidBounces, c.MaxBounces)
	case !(c.VerticalFOV > 0 && c.VerticalFOV < 180):
		return fmt.Errorf("%w: got %g", ErrInvalidFOV, c.VerticalFOV)
	case !(c.FocusDistance > 0) || math.IsInf(c.FocusDistance, 0):
		return fmt.Errorf("%w: got %g", ErrInvalidFocusDistance, c.FocusDistance)
	}

	view := c.LookFrom.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: both are %v", ErrDegenerateView, c.LookFrom)
	}
	if c.Up.Cross(view).NearZero() {
		return fmt.Errorf("%w: up %v, view %v", ErrDegenerateUp, c.Up, view)
	}

	return nil
}

// Camera generates primary rays. All derived state is computed once by
// NewCamera and is read-only afterwards, so a Camera can be shared by workers.
type Camera struct {
	config CameraConfig
	width  int
	height int

	center           core.Vec3 // Ray origin without defocus
	firstPixel       core.Vec3 // Center of the top-left pixel
	pixelDeltaU      core.Vec3 // Offset to the pixel to the right
	pixelDeltaV      core.Vec3 // Offset to the pixel below
	u, v, w          core.Vec3 // Camera frame basis vectors
	defocusDiskU     core.Vec3 // Defocus disk horizontal radius
	defocusDiskV     core.Vec3 // Defocus disk vertical radius
	pixelSampleScale float64
}

// NewCamera validates the configuration and computes the viewing frustum
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Camera{
		config:           config,
		width:            config.ImageWidth,
		height:           config.ImageHeight(),
		center:           config.LookFrom,
		pixelSampleScale: 1.0 / float64(config.SamplesPerPixel),
	}

	// Viewport dimensions at the focus plane
	theta := degreesToRadians(config.VerticalFOV)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(c.width) / float64(c.height))

	// Orthonormal camera basis
	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(c.width))
	c.pixelDeltaV = viewportV.Divide(float64(c.height))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.firstPixel = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c, nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the derived image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Center returns the camera position
func (c *Camera) Center() core.Vec3 {
	return c.center
}

// Basis returns the camera frame: right, up and backward
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// GetRay returns a ray through a random point of pixel (i, j), counted from
// the top-left corner. With defocus enabled the origin is sampled from the lens disk.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offset := sampleSquare(random)
	pixelSample := c.firstPixel.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(random)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// defocusDiskSample returns a random point on the camera lens
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// sampleSquare returns a random offset in the [-0.5, 0.5] unit square
func sampleSquare(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, 0)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
