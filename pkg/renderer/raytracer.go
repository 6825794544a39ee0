package renderer

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

// shadowAcneEpsilon is the lower bound of the intersection window. It keeps
// scattered rays from re-hitting the surface they start on.
const shadowAcneEpsilon = 0.001

// primaryRayDepth is the depth camera rays start at. A budget of MaxBounces
// therefore allows MaxBounces-1 surface interactions.
const primaryRayDepth = 1

var logger = log.New("renderer")

var (
	black    = core.NewVec3(0, 0, 0)
	white    = core.NewVec3(1, 1, 1)
	skyColor = core.NewVec3(0.5, 0.7, 1.0)
)

// Options controls how a render is scheduled
type Options struct {
	NumWorkers int   // Number of parallel row workers (0 = use CPU count)
	Seed       int64 // Base random seed; 0 picks one from the clock
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		NumWorkers: 0,
		Seed:       0,
	}
}

// Raytracer evaluates radiance along camera rays for a fixed world and camera
type Raytracer struct {
	world  core.Shape
	camera *Camera
	opts   Options
}

// NewRaytracer creates a new raytracer. The world must not be modified while a render is running.
func NewRaytracer(world core.Shape, camera *Camera, opts Options) (*Raytracer, error) {
	if opts.NumWorkers < 0 {
		return nil, ErrInvalidWorkers
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	return &Raytracer{
		world:  world,
		camera: camera,
		opts:   opts,
	}, nil
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Seed returns the base seed used for per-row random generators
func (rt *Raytracer) Seed() int64 {
	return rt.opts.Seed
}

// RayColor returns the radiance carried back along r. depth is the ray's
// generation, starting at primaryRayDepth for camera rays; once it reaches the
// camera's bounce budget no more light is gathered.
func (rt *Raytracer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth >= rt.camera.config.MaxBounces {
		return black
	}

	hit, isHit := rt.world.Hit(r, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return backgroundGradient(r)
	}

	if hit.Material == nil {
		return black
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		return black
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth+1, random))
}

// backgroundGradient blends white to sky blue by the ray's normalized Y direction
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return white.Multiply(1.0 - a).Add(skyColor.Multiply(a))
}

// renderRow samples every pixel of row j into dst, which must hold one row
func (rt *Raytracer) renderRow(j int, dst []core.Vec3, random *rand.Rand) int {
	samples := rt.camera.config.SamplesPerPixel
	for i := range dst {
		colorAccum := black
		for sample := 0; sample < samples; sample++ {
			ray := rt.camera.GetRay(i, j, random)
			colorAccum = colorAccum.Add(rt.RayColor(ray, primaryRayDepth, random))
		}
		dst[i] = colorAccum.Multiply(rt.camera.pixelSampleScale)
	}
	return len(dst) * samples
}

// rowRandom returns the generator for row j. Seeding per row keeps the output
// independent of how rows are distributed across workers.
func (rt *Raytracer) rowRandom(j int) *rand.Rand {
	seed := int64(uint64(rt.opts.Seed) + uint64(j+1)*0x9E3779B97F4A7C15)
	return rand.New(rand.NewSource(seed))
}

// Render computes the whole frame in parallel. Workers check ctx before each
// row; a cancelled render returns no frame and the context's error.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	width, height := rt.camera.Width(), rt.camera.Height()
	frame := NewFrame(width, height)

	pool := NewWorkerPool(rt, frame, rt.opts.NumWorkers)
	logger.Infof("rendering %dx%d at %d spp, %d bounces, %d workers, seed %d",
		width, height, rt.camera.config.SamplesPerPixel, rt.camera.config.MaxBounces,
		pool.NumWorkers(), rt.opts.Seed)

	startTime := time.Now()
	pool.Start(ctx)

	submitted := 0
	for j := 0; j < height; j++ {
		if ctx.Err() != nil {
			break
		}
		pool.SubmitTask(RowTask{Row: j})
		submitted++
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.camera.config.SamplesPerPixel,
		Workers:         pool.NumWorkers(),
		Seed:            rt.opts.Seed,
	}
	progress := log.NewProgress(logger, "rows", height)
	for n := 0; n < submitted; n++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Skipped {
			continue
		}
		stats.Rows++
		stats.TotalSamples += result.Samples
		progress.Advance()
		logger.Debugf("row %d done by worker %d", result.Row, result.WorkerID)
	}
	pool.Stop()
	stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		logger.Warningf("render interrupted after %d of %d rows", stats.Rows, height)
		return nil, stats, err
	}

	logger.Infof("rendered %d rows in %s", stats.Rows, stats.Duration)
	return frame, stats, nil
}
