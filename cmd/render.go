package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
	"github.com/df07/weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedOutput is returned for output files with an unknown extension
var ErrUnsupportedOutput = errors.New("unsupported output format")

// sceneOptions collects the scene flags shared by render and bench
func sceneOptions(ctx *cli.Context) (scene.Options, error) {
	opts := scene.Options{
		Seed:      ctx.Uint64("seed"),
		ImagePath: ctx.String("image"),
		GLTFPath:  ctx.String("gltf"),
		Camera: renderer.CameraConfig{
			ImageWidth:      ctx.Int("width"),
			SamplesPerPixel: ctx.Int("spp"),
			MaxDepth:        ctx.Int("depth"),
		},
	}

	switch hex := ctx.String("background"); hex {
	case "":
	case "sky":
		opts.Camera.Reset |= renderer.ResetBackground
	default:
		background, err := material.ParseHexColor(hex)
		if err != nil {
			return opts, err
		}
		opts.Camera.Background = &background
	}

	if ctx.Bool("pinhole") {
		opts.Camera.Reset |= renderer.ResetDefocus
	}
	if ctx.Bool("no-motion-blur") {
		opts.Camera.Reset |= renderer.ResetShutter
	}
	return opts, nil
}

// prepareScene creates the scene named by the flags with its world and camera
func prepareScene(ctx *cli.Context) (*scene.Scene, geometry.Hittable, *renderer.Camera, error) {
	opts, err := sceneOptions(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	s, err := scene.Create(ctx.String("scene"), opts)
	if err != nil {
		return nil, nil, nil, err
	}

	start := time.Now()
	world, err := s.Build()
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Infof("built scene %s with %d primitives in %v", s.Name, s.PrimitiveCount(), time.Since(start))

	camera, err := s.NewCamera()
	if err != nil {
		return nil, nil, nil, err
	}
	return s, world, camera, nil
}

// RenderScene renders a single frame and writes it to the output file.
func RenderScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	s, world, camera, err := prepareScene(ctx)
	if err != nil {
		return err
	}

	options := renderer.DefaultOptions()
	options.Seed = ctx.Uint64("seed")
	if workers := ctx.Int("workers"); workers > 0 {
		options.NumWorkers = workers
	}
	if rr := ctx.Int("rr"); rr > 0 {
		var background integrator.Background
		if bg := camera.Config().Background; bg != nil {
			background = integrator.SolidBackground(*bg)
		}
		options.Integrator = integrator.NewPathTracingIntegrator(background, integrator.Config{RussianRouletteMinBounces: rr})
	}
	options.Progress = progressLogger(10)

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	buffer, stats, renderErr := renderer.NewRaytracer(world, camera, options).RenderContext(renderCtx)

	// An interrupted render still writes the rows that finished
	out := ctx.String("out")
	if err := writeImage(out, buffer.ToImage()); err != nil {
		return err
	}
	if renderErr != nil {
		logger.Warningf("wrote partial render to %s", out)
		return fmt.Errorf("render interrupted: %w", renderErr)
	}
	logger.Noticef("wrote %s", out)

	displayRenderStats(s, world, camera, stats)
	return nil
}

// progressLogger reports render progress at debug level every step percent
func progressLogger(step int) func(rowsDone, rows int) {
	next := step
	return func(rowsDone, rows int) {
		percent := rowsDone * 100 / rows
		if percent >= next {
			logger.Debugf("rendered %d/%d rows (%d%%)", rowsDone, rows, percent)
			for next <= percent {
				next += step
			}
		}
	}
}

// writeImage encodes img in the format chosen by the file extension
func writeImage(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch ext {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	case ".bmp":
		err = bmp.Encode(f, img)
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func displayRenderStats(s *scene.Scene, world geometry.Hittable, camera *renderer.Camera, stats renderer.RenderStats) {
	config := camera.Config()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "SPP", "Depth", "Primitives", "BVH nodes", "BVH depth", "Workers", "Samples/sec", "Sanitized", "Faulted"})

	var bvh geometry.BVHStats
	if node, ok := world.(*geometry.BVHNode); ok {
		bvh = node.Stats()
	}

	table.Append([]string{
		s.Name,
		fmt.Sprintf("%dx%d", camera.Width(), camera.Height()),
		fmt.Sprintf("%d", config.SamplesPerPixel),
		fmt.Sprintf("%d", config.MaxDepth),
		fmt.Sprintf("%d", s.PrimitiveCount()),
		fmt.Sprintf("%d", bvh.Nodes),
		fmt.Sprintf("%d", bvh.MaxDepth),
		fmt.Sprintf("%d", stats.NumWorkers),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		fmt.Sprintf("%d", stats.SanitizedSamples),
		fmt.Sprintf("%d", len(stats.FaultedPixels)),
	})
	table.SetFooter([]string{"", "", "", "", "", "", "", "", "", "TOTAL", stats.Duration.Round(time.Millisecond).String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
