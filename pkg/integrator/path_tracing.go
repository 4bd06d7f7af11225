package integrator

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// ShadowAcneEpsilon is the minimum hit distance for every traced ray.
// It keeps a scattered ray from re-hitting the surface it left.
const ShadowAcneEpsilon = 0.001

// Config holds optional path tracing settings
type Config struct {
	// RussianRouletteMinBounces enables Russian roulette termination after
	// this many bounces. Zero disables it, so every path runs to full depth.
	RussianRouletteMinBounces int
}

// PathTracingIntegrator implements unidirectional path tracing with material sampling
type PathTracingIntegrator struct {
	background Background
	config     Config
}

// NewPathTracingIntegrator creates a path tracer. A nil background uses the sky gradient.
func NewPathTracingIntegrator(background Background, config Config) *PathTracingIntegrator {
	if background == nil {
		background = SkyBackground()
	}
	return &PathTracingIntegrator{
		background: background,
		config:     config,
	}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, depth, 0, core.NewVec3(1, 1, 1), sampler)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Hittable, depth, bounce int, throughput core.Vec3, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	shouldTerminate, rrCompensation := pt.applyRussianRoulette(bounce, throughput, sampler)
	if shouldTerminate {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return pt.background(ray).Multiply(rrCompensation)
	}

	colorEmitted := material.EmittedLight(hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted.Multiply(rrCompensation)
	}

	newThroughput := throughput.MultiplyVec(scatter.Attenuation)
	incoming := pt.rayColor(scatter.Scattered, world, depth-1, bounce+1, newThroughput, sampler)
	colorScattered := scatter.Attenuation.MultiplyVec(incoming)

	return colorEmitted.Add(colorScattered).Multiply(rrCompensation)
}

// applyRussianRoulette determines if a path should be terminated and returns the compensation factor
func (pt *PathTracingIntegrator) applyRussianRoulette(bounce int, throughput core.Vec3, sampler core.Sampler) (bool, float64) {
	if pt.config.RussianRouletteMinBounces <= 0 || bounce < pt.config.RussianRouletteMinBounces {
		return false, 1.0
	}

	// Survival probability between 0.5 and 0.95 limits compensation to [1.05x, 2x]
	survivalProb := math.Min(0.95, math.Max(0.5, throughput.Luminance()))

	if sampler.Get1D() > survivalProb {
		return true, 0.0
	}
	return false, 1.0 / survivalProb
}
