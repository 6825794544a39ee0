package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render sphere scenes with a Monte Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render one of the built-in scenes and write it as a plain-text PPM (P3) image,
or as PNG when the output file ends in .png. Camera flags override the scene's
recommended camera only when given.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "basic",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Usage: "image width / height ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces",
					Usage: "maximum ray bounces",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees",
				},
				cli.Float64Flag{
					Name:  "defocus-angle",
					Usage: "aperture angle in degrees, 0 disables depth of field",
				},
				cli.Float64Flag{
					Name:  "focus-dist",
					Usage: "distance to the plane of perfect focus",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers, 0 uses every CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "random seed, 0 picks one from the clock",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "image.ppm",
					Usage: "output image file",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: listScenes,
		},
	}

	return app
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// Render a single frame and save it.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	seed := ctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sc, err := scene.Lookup(ctx.String("scene"), seed)
	if err != nil {
		return err
	}

	cameraConfig := sc.Camera
	applyCameraFlags(ctx, &cameraConfig)

	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return fmt.Errorf("invalid camera for scene %q: %w", sc.Name, err)
	}

	opts := renderer.DefaultOptions()
	opts.Seed = seed
	if ctx.IsSet("workers") {
		opts.NumWorkers = ctx.Int("workers")
	}

	rt, err := renderer.NewRaytracer(sc.World, camera, opts)
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q (%d spheres)", sc.Name, sc.World.Len())

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := rt.Render(renderCtx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("render interrupted, no image written")
		}
		return err
	}

	out := ctx.String("out")
	if err := renderer.SaveImage(out, frame); err != nil {
		return err
	}

	displayFrameStats(sc.World, stats)
	logger.Noticef("wrote %s", out)
	return nil
}

// applyCameraFlags overrides the scene's camera with every flag the user set.
func applyCameraFlags(ctx *cli.Context, config *renderer.CameraConfig) {
	if ctx.IsSet("width") {
		config.ImageWidth = ctx.Int("width")
	}
	if ctx.IsSet("aspect") {
		config.AspectRatio = ctx.Float64("aspect")
	}
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("bounces") {
		config.MaxBounces = ctx.Int("bounces")
	}
	if ctx.IsSet("vfov") {
		config.VerticalFOV = ctx.Float64("vfov")
	}
	if ctx.IsSet("defocus-angle") {
		config.DefocusAngle = ctx.Float64("defocus-angle")
	}
	if ctx.IsSet("focus-dist") {
		config.FocusDistance = ctx.Float64("focus-dist")
	}
}

func displayFrameStats(world *geometry.HittableList, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Spheres", "Samples/pixel", "Workers", "Seed", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", world.Len()),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.Seed),
		stats.Duration.Round(time.Millisecond).String(),
	})
	table.SetFooter([]string{"", "", "", "", "SAMPLES/SEC", fmt.Sprintf("%.0f", stats.SamplesPerSecond())})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

func listScenes(ctx *cli.Context) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, name := range scene.Names() {
		table.Append([]string{name, scene.Describe(name)})
	}
	table.Render()

	_, err := fmt.Fprint(ctx.App.Writer, buf.String())
	return err
}
