package geometry

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// Sphere represents a sphere shape. A moving sphere travels linearly from
// its center at time 0 to Center+Motion at time 1.
type Sphere struct {
	Center   core.Vec3
	Motion   core.Vec3 // Zero for a static sphere
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new static sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return NewMovingSphere(center, center, radius, material)
}

// NewMovingSphere creates a sphere centered at center0 at time 0 and center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, material material.Material) *Sphere {
	s := &Sphere{
		Center:   center0,
		Motion:   center1.Subtract(center0),
		Radius:   radius,
		Material: material,
	}

	rvec := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABBFromPoints(center0.Subtract(rvec), center0.Add(rvec))
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	s.bbox = box0.Union(box1)

	return s
}

// centerAt returns the sphere center at the given shutter time
func (s *Sphere) centerAt(time float64) core.Vec3 {
	return s.Center.Add(s.Motion.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := center.Subtract(ray.Origin)

	// Quadratic equation with b = -2h: at² - 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root that lies in the acceptable range
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting from -X, v runs from -Y to +Y.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// Validate requires a positive finite radius and a valid material
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: sphere radius must be positive, got %v", ErrInvalidGeometry, s.Radius)
	}
	if !s.Center.IsFinite() || !s.Motion.IsFinite() {
		return fmt.Errorf("%w: sphere center is not finite", ErrInvalidGeometry)
	}
	return validateMaterial(s.Material, "sphere")
}
