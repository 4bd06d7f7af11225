package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/renderer"
	"github.com/df07/weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Bench defaults keep a flat-list render of the larger scenes short
const (
	benchWidth   = 200
	benchSamples = 4
)

// benchResult is the outcome of rendering one acceleration structure
type benchResult struct {
	Structure string
	Stats     renderer.RenderStats
	Luminance float64
}

// BenchScene renders the selected scene once through its BVH and once
// through a flat object list, then prints the timings side by side.
func BenchScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := sceneOptions(ctx)
	if err != nil {
		return err
	}
	if opts.Camera.ImageWidth == 0 {
		opts.Camera.ImageWidth = benchWidth
	}
	if opts.Camera.SamplesPerPixel == 0 {
		opts.Camera.SamplesPerPixel = benchSamples
	}

	s, err := scene.Create(ctx.String("scene"), opts)
	if err != nil {
		return err
	}

	options := renderer.DefaultOptions()
	options.Seed = ctx.Uint64("seed")
	if workers := ctx.Int("workers"); workers > 0 {
		options.NumWorkers = workers
	}

	results, err := runBench(s, options)
	if err != nil {
		return err
	}
	logger.Noticef("acceleration structure comparison for %s\n%s", s.Name, benchTable(results))
	return nil
}

// runBench renders s with the BVH and with a flat list using the same options
func runBench(s *scene.Scene, options renderer.Options) ([]benchResult, error) {
	bvh, err := s.Build()
	if err != nil {
		return nil, err
	}
	camera, err := s.NewCamera()
	if err != nil {
		return nil, err
	}

	worlds := []struct {
		name  string
		world geometry.Hittable
	}{
		{"bvh", bvh},
		{"list", geometry.NewHittableList(s.Objects...)},
	}

	results := make([]benchResult, 0, len(worlds))
	for _, w := range worlds {
		logger.Infof("rendering %s with %s", s.Name, w.name)
		buffer, stats := renderer.NewRaytracer(w.world, camera, options).Render()
		results = append(results, benchResult{
			Structure: w.name,
			Stats:     stats,
			Luminance: buffer.AverageLuminance(),
		})
	}
	return results, nil
}

func benchTable(results []benchResult) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Structure", "Render time", "Samples/sec", "Mean luminance", "Speedup"})

	var baseline time.Duration
	for _, r := range results {
		if r.Structure == "list" {
			baseline = r.Stats.Duration
		}
	}

	for _, r := range results {
		speedup := "-"
		if baseline > 0 && r.Stats.Duration > 0 {
			speedup = fmt.Sprintf("%.2fx", float64(baseline)/float64(r.Stats.Duration))
		}
		table.Append([]string{
			r.Structure,
			r.Stats.Duration.Round(time.Millisecond).String(),
			fmt.Sprintf("%.0f", r.Stats.SamplesPerSecond()),
			fmt.Sprintf("%.4f", r.Luminance),
			speedup,
		})
	}

	table.Render()
	return buf.String()
}
