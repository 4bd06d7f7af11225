package geometry

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// Translate moves an object by a fixed offset without copying it
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so that it appears moved by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	t := &Translate{Object: object, Offset: offset, bbox: core.EmptyAABB}
	if object != nil {
		t.bbox = object.BoundingBox().Translate(offset)
	}
	return t
}

// Hit moves the ray into object space, intersects, and moves the hit back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	objectRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(objectRay, rayT)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the translated box
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// Validate checks the wrapped object
func (t *Translate) Validate() error {
	if t.Object == nil {
		return fmt.Errorf("%w: translate has no object", ErrInvalidGeometry)
	}
	return Validate(t.Object)
}

// Rotate rotates an object about an axis through the origin
type Rotate struct {
	Object   Hittable
	Axis     core.Vec3
	Angle    float64 // Degrees, counter-clockwise looking down the axis
	toWorld  mgl64.Quat
	toObject mgl64.Quat
	bbox     core.AABB
}

// NewRotate wraps object rotated by angle degrees about axis (right-handed)
func NewRotate(object Hittable, axis core.Vec3, angle float64) *Rotate {
	unit := axis.Normalize()
	toWorld := mgl64.QuatRotate(mgl64.DegToRad(angle), mgl64.Vec3{unit.X, unit.Y, unit.Z})

	r := &Rotate{
		Object:   object,
		Axis:     axis,
		Angle:    angle,
		toWorld:  toWorld,
		toObject: toWorld.Conjugate(),
		bbox:     core.EmptyAABB,
	}
	if object == nil {
		return r
	}

	// Bound every rotated corner of the object's box
	corners := object.BoundingBox().Corners()
	for i := range corners {
		corners[i] = rotateBy(r.toWorld, corners[i])
	}
	r.bbox = core.NewAABBFromPoints(corners[:]...)

	return r
}

// NewRotateX rotates object by angle degrees about the X axis
func NewRotateX(object Hittable, angle float64) *Rotate {
	return NewRotate(object, core.NewVec3(1, 0, 0), angle)
}

// NewRotateY rotates object by angle degrees about the Y axis
func NewRotateY(object Hittable, angle float64) *Rotate {
	return NewRotate(object, core.NewVec3(0, 1, 0), angle)
}

// NewRotateZ rotates object by angle degrees about the Z axis
func NewRotateZ(object Hittable, angle float64) *Rotate {
	return NewRotate(object, core.NewVec3(0, 0, 1), angle)
}

func rotateBy(q mgl64.Quat, v core.Vec3) core.Vec3 {
	out := q.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *Rotate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	objectRay := core.NewRayAtTime(
		rotateBy(r.toObject, ray.Origin),
		rotateBy(r.toObject, ray.Direction),
		ray.Time,
	)

	hit, ok := r.Object.Hit(objectRay, rayT)
	if !ok {
		return nil, false
	}

	// Rotation preserves the ray/normal angle, so FrontFace stays valid
	hit.Point = rotateBy(r.toWorld, hit.Point)
	hit.Normal = rotateBy(r.toWorld, hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the rotated object
func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}

// Validate checks the wrapped object and the rotation
func (r *Rotate) Validate() error {
	if r.Object == nil {
		return fmt.Errorf("%w: rotate has no object", ErrInvalidGeometry)
	}
	if r.Axis.NearZero() || !r.Axis.IsFinite() || math.IsNaN(r.Angle) || math.IsInf(r.Angle, 0) {
		return fmt.Errorf("%w: rotation about %v by %v degrees is degenerate", ErrInvalidGeometry, r.Axis, r.Angle)
	}
	return Validate(r.Object)
}
