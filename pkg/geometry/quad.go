package geometry

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Material material.Material // Material of the quad
	normal   core.Vec3         // Unit normal (U × V)
	d        float64           // Plane equation constant: normal · p = d
	w        core.Vec3         // n / (n · n), used to find planar coordinates
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	q := &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: material,
		normal:   normal,
		d:        normal.Dot(corner),
	}
	if nn := n.LengthSquared(); nn > 0 {
		q.w = n.Multiply(1.0 / nn)
	}

	// Box over both diagonals
	diagonal1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))
	q.bbox = diagonal1.Union(diagonal2)

	return q
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Express the hit point in the (U, V) frame of the quad
	planarHit := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(planarHit.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planarHit))

	if !core.UnitInterval.Contains(alpha) || !core.UnitInterval.Contains(beta) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// Normal returns the unit normal of the quad's plane
func (q *Quad) Normal() core.Vec3 {
	return q.normal
}

// Validate rejects quads whose edges are parallel or zero
func (q *Quad) Validate() error {
	if q.U.Cross(q.V).NearZero() {
		return fmt.Errorf("%w: quad edges %v and %v are degenerate", ErrInvalidGeometry, q.U, q.V)
	}
	return validateMaterial(q.Material, "quad")
}
