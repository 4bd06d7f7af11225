package integrator

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray, following at most
	// depth bounces through world
	RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3
}

// Background returns the radiance for a ray that escapes the scene
type Background func(ray core.Ray) core.Vec3

var (
	skyHorizon = core.NewVec3(1.0, 1.0, 1.0)
	skyZenith  = core.NewVec3(0.5, 0.7, 1.0)
)

// SolidBackground returns the same color in every direction
func SolidBackground(color core.Vec3) Background {
	return func(core.Ray) core.Vec3 {
		return color
	}
}

// SkyBackground blends from white below to light blue above
func SkyBackground() Background {
	return GradientBackground(skyZenith, skyHorizon)
}

// GradientBackground blends between bottomColor and topColor by the
// vertical component of the ray direction
func GradientBackground(topColor, bottomColor core.Vec3) Background {
	return func(r core.Ray) core.Vec3 {
		unitDirection := r.Direction.Normalize()

		// Map y from [-1,1] to [0,1]
		t := 0.5 * (unitDirection.Y + 1.0)
		return bottomColor.Lerp(topColor, t)
	}
}
