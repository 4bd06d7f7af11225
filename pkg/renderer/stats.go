package renderer

import (
	"sort"
	"time"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// PixelCoord identifies one pixel, with Y=0 at the top row
type PixelCoord struct {
	X, Y int
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	SanitizedSamples int           // Samples with NaN or infinite components replaced by zero
	FaultedPixels    []PixelCoord  // Pixels whose computation panicked, in row-major order
	NumWorkers       int           // Size of the worker pool
	Duration         time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the sampling throughput of the render
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Duration.Seconds()
}

// merge adds the counters from one row into the running totals
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.SanitizedSamples += other.SanitizedSamples
	rs.FaultedPixels = append(rs.FaultedPixels, other.FaultedPixels...)
}

// sortFaults puts faulted pixels in row-major order so stats do not depend on worker scheduling
func (rs *RenderStats) sortFaults() {
	sort.Slice(rs.FaultedPixels, func(i, j int) bool {
		a, b := rs.FaultedPixels[i], rs.FaultedPixels[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
