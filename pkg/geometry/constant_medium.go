package geometry

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// ConstantMedium is a volume of uniform density bounded by a closed surface,
// such as smoke or fog. Rays scatter at a random distance inside it.
type ConstantMedium struct {
	Boundary      Hittable
	Density       float64
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium with an isotropic phase function of the given color
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a medium whose phase function color comes from a texture
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// Hit finds where the ray enters and leaves the boundary and decides whether
// it scatters in between.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	enter, ok := m.Boundary.Hit(ray, core.UniverseInterval)
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, core.NewInterval(enter.T+0.0001, math.Inf(1)))
	if !ok {
		return nil, false
	}

	t0 := math.Max(enter.T, rayT.Min)
	t1 := math.Min(exit.T, rayT.Max)
	if t0 >= t1 {
		return nil, false
	}
	t0 = math.Max(t0, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t1 - t0) * rayLength
	hitDistance := m.negInvDensity * math.Log(rayUniform(ray))

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	if m.Boundary == nil {
		return core.EmptyAABB
	}
	return m.Boundary.BoundingBox()
}

// Validate requires positive density, a boundary and a valid phase function
func (m *ConstantMedium) Validate() error {
	if !(m.Density > 0) || math.IsInf(m.Density, 0) {
		return fmt.Errorf("%w: medium density must be positive, got %v", ErrInvalidGeometry, m.Density)
	}
	if m.Boundary == nil {
		return fmt.Errorf("%w: medium has no boundary", ErrInvalidGeometry)
	}
	if err := Validate(m.Boundary); err != nil {
		return err
	}
	return validateMaterial(m.PhaseFunction, "constant medium")
}

// rayUniform maps a ray to a number in (0, 1]. Hit must not depend on which
// worker calls it, so the free-flight sample is derived from the ray itself.
// Primary rays are already jittered per sample, which decorrelates the values.
func rayUniform(ray core.Ray) float64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, f := range [...]float64{
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z,
		ray.Direction.X, ray.Direction.Y, ray.Direction.Z,
		ray.Time,
	} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	// Top 53 bits, shifted off zero
	return (float64(h.Sum64()>>11) + 1) / (1 << 53)
}
