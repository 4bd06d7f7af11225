package integrator

import (
	"math"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// createTestWorld creates a single diffuse sphere in front of the origin
func createTestWorld(t *testing.T) geometry.Hittable {
	t.Helper()
	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	world, err := geometry.BuildAccelerationStructure([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian),
	})
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}
	return world
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld(t)
	integrator := NewPathTracingIntegrator(nil, Config{})
	sampler := core.NewPixelSampler(42, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if color := integrator.RayColor(ray, world, 0, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0, got %v", color)
	}

	if color := integrator.RayColor(ray, world, 3, sampler); color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}

	// A single bounce can only hit the sphere and stop
	if color := integrator.RayColor(ray, world, 1, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black color when the only bounce hits a diffuse surface, got %v", color)
	}
}

func TestPathTracingMissReturnsBackground(t *testing.T) {
	world := createTestWorld(t)
	sampler := core.NewPixelSampler(1, 0)
	up := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))

	solid := NewPathTracingIntegrator(SolidBackground(core.NewVec3(0.2, 0.4, 0.6)), Config{})
	if color := solid.RayColor(up, world, 5, sampler); !color.Equals(core.NewVec3(0.2, 0.4, 0.6)) {
		t.Errorf("Expected solid background, got %v", color)
	}

	sky := NewPathTracingIntegrator(nil, Config{})
	if color := sky.RayColor(up, world, 5, sampler); !color.Equals(core.NewVec3(0.5, 0.7, 1.0)) {
		t.Errorf("Expected sky zenith color straight up, got %v", color)
	}
	down := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	if color := sky.RayColor(down, world, 5, sampler); !color.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected white straight down, got %v", color)
	}
}

func TestPathTracingBlackBackgroundWithoutLightsIsBlack(t *testing.T) {
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.1)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewDielectric(1.5)),
	}
	world, err := geometry.BuildAccelerationStructure(objects)
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}

	integrator := NewPathTracingIntegrator(SolidBackground(core.Vec3{}), Config{})
	sampler := core.NewPixelSampler(7, 0)

	for i := 0; i < 500; i++ {
		direction := core.RandomUnitVector(sampler)
		color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 1), direction), world, 10, sampler)
		if color != (core.Vec3{}) {
			t.Fatalf("Expected black without emitters, got %v", color)
		}
	}
}

func TestPathTracingEmission(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	quad := geometry.NewQuad(core.NewVec3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light)
	world, err := geometry.BuildAccelerationStructure([]geometry.Hittable{quad})
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}

	integrator := NewPathTracingIntegrator(SolidBackground(core.Vec3{}), Config{})
	sampler := core.NewPixelSampler(3, 0)

	front := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, 1, sampler)
	if !front.Equals(core.NewVec3(4, 4, 4)) {
		t.Errorf("Expected emitted radiance from the front face, got %v", front)
	}

	back := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 1)), world, 1, sampler)
	if back != (core.Vec3{}) {
		t.Errorf("Expected no emission from the back face, got %v", back)
	}
}

func TestPathTracingAttenuationMultiplies(t *testing.T) {
	// A perfect mirror facing the camera reflects the background back
	mirror := material.NewMetal(core.NewVec3(0.5, 0.25, 1.0), 0)
	quad := geometry.NewQuad(core.NewVec3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mirror)
	world, err := geometry.BuildAccelerationStructure([]geometry.Hittable{quad})
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}

	integrator := NewPathTracingIntegrator(SolidBackground(core.NewVec3(1, 1, 1)), Config{})
	color := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, 5, core.NewPixelSampler(0, 0))
	if !color.Equals(core.NewVec3(0.5, 0.25, 1.0)) {
		t.Errorf("Expected mirror albedo times background, got %v", color)
	}
}

// TestPathTracingRussianRoulette tests that low throughput paths get cut short
func TestPathTracingRussianRoulette(t *testing.T) {
	integrator := NewPathTracingIntegrator(nil, Config{RussianRouletteMinBounces: 1})
	sampler := core.NewPixelSampler(42, 0)

	lowThroughput := core.NewVec3(0.01, 0.01, 0.01)
	terminated := 0
	for i := 0; i < 1000; i++ {
		if stop, _ := integrator.applyRussianRoulette(5, lowThroughput, sampler); stop {
			terminated++
		}
	}
	// Survival probability floors at 0.5
	if terminated < 400 || terminated > 600 {
		t.Errorf("Expected about half of low-throughput paths to terminate, got %d/1000", terminated)
	}

	stop, compensation := integrator.applyRussianRoulette(0, lowThroughput, sampler)
	if stop || compensation != 1.0 {
		t.Errorf("Expected no roulette before the minimum bounce, got stop=%v compensation=%f", stop, compensation)
	}

	disabled := NewPathTracingIntegrator(nil, Config{})
	if stop, compensation := disabled.applyRussianRoulette(100, lowThroughput, sampler); stop || compensation != 1.0 {
		t.Error("Expected roulette to be disabled with zero minimum bounces")
	}
}

func TestGradientBackground(t *testing.T) {
	background := GradientBackground(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0))
	horizon := background(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)))
	if math.Abs(horizon.X-0.5) > 1e-9 || math.Abs(horizon.Z-0.5) > 1e-9 {
		t.Errorf("Expected even blend at the horizon, got %v", horizon)
	}
}
