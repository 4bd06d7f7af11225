package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/log"
)

// Options controls how a render is executed. None of them change the image
// except Seed and Integrator.
type Options struct {
	NumWorkers int                   // Worker goroutines; 0 means one per CPU
	Seed       uint64                // Base seed for every pixel's random stream
	Logger     core.Logger           // Defaults to the "renderer" module logger
	Integrator integrator.Integrator // Defaults to a path tracer using the camera background

	// Progress, if set, is called from the rendering goroutine after each row completes
	Progress func(rowsDone, rows int)
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		NumWorkers: runtime.NumCPU(),
		Seed:       42,
	}
}

// Raytracer renders one world through one camera
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	options    Options
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. World and camera are shared read-only
// by every worker.
func NewRaytracer(world geometry.Hittable, camera *Camera, options Options) *Raytracer {
	rt := &Raytracer{
		world:      world,
		camera:     camera,
		options:    options,
		integrator: options.Integrator,
		logger:     options.Logger,
	}

	if rt.logger == nil {
		rt.logger = log.New(log.ModuleRenderer)
	}
	if rt.integrator == nil {
		var background integrator.Background
		if bg := camera.Config().Background; bg != nil {
			background = integrator.SolidBackground(*bg)
		}
		rt.integrator = integrator.NewPathTracingIntegrator(background, integrator.Config{})
	}

	return rt
}

// Render renders world through camera with default options
func Render(world geometry.Hittable, camera *Camera) *PixelBuffer {
	buffer, _ := NewRaytracer(world, camera, DefaultOptions()).Render()
	return buffer
}

// Render traces every pixel and returns the linear image with statistics.
// The output depends only on the world, camera and seed.
func (rt *Raytracer) Render() (*PixelBuffer, RenderStats) {
	buffer, stats, _ := rt.RenderContext(context.Background())
	return buffer, stats
}

// RenderContext is Render with cancellation. When ctx ends first, rows not yet
// started stay black and ctx's error is returned with the partial statistics.
func (rt *Raytracer) RenderContext(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	buffer := NewPixelBuffer(width, height)

	pool := NewWorkerPool(ctx, rt, height, rt.options.NumWorkers)
	stats := RenderStats{NumWorkers: pool.GetNumWorkers()}

	rt.logger.Infof("rendering %dx%d at %d spp with %d workers",
		width, height, rt.camera.Config().SamplesPerPixel, pool.GetNumWorkers())

	pool.Start()
	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{Row: row, Buffer: buffer})
	}
	pool.Stop()

	done := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		done++
		stats.merge(result.Stats)
		if rt.options.Progress != nil {
			rt.options.Progress(done, height)
		}
	}

	stats.sortFaults()
	stats.Duration = time.Since(start)

	if err := pool.Err(); err != nil {
		rt.logger.Warningf("render stopped after %d of %d rows: %v", done, height, err)
		return buffer, stats, err
	}

	if len(stats.FaultedPixels) > 0 {
		rt.logger.Warningf("%d pixels faulted and were written black", len(stats.FaultedPixels))
	}
	if stats.SanitizedSamples > 0 {
		rt.logger.Infof("%d samples had NaN or infinite components", stats.SanitizedSamples)
	}
	rt.logger.Infof("rendered %d samples in %v", stats.TotalSamples, stats.Duration)

	return buffer, stats, nil
}

// renderRow renders every pixel of row j into buffer
func (rt *Raytracer) renderRow(j int, buffer *PixelBuffer) RenderStats {
	var stats RenderStats
	width := rt.camera.Width()

	for i := 0; i < width; i++ {
		color, sanitized, err := rt.renderPixel(i, j)
		if err != nil {
			rt.logger.Warningf("pixel (%d, %d): %v", i, j, err)
			stats.FaultedPixels = append(stats.FaultedPixels, PixelCoord{X: i, Y: j})
			color = core.Vec3{}
		}
		buffer.Set(i, j, color)

		stats.TotalPixels++
		stats.TotalSamples += rt.camera.Config().SamplesPerPixel
		stats.SanitizedSamples += sanitized
	}

	return stats
}

// renderPixel averages all samples of pixel (i, j). A panic anywhere below
// is turned into an error so one bad pixel cannot take down the render.
func (rt *Raytracer) renderPixel(i, j int) (color core.Vec3, sanitized int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	config := rt.camera.Config()
	sampler := core.NewPixelSampler(rt.options.Seed, j*rt.camera.Width()+i)

	var pixel PixelStats
	for s := 0; s < config.SamplesPerPixel; s++ {
		ray := rt.camera.GetRay(i, j, sampler)
		sample := rt.integrator.RayColor(ray, rt.world, config.MaxDepth, sampler)
		if !sample.IsFinite() {
			sanitized++
			sample = sample.Sanitize()
		}
		pixel.AddSample(sample)
	}

	return pixel.GetColor(), sanitized, nil
}
