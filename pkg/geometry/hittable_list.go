package geometry

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// HittableList is a flat collection of objects tested one after another
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the bounding box
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	if object != nil {
		l.bbox = l.bbox.Union(object.BoundingBox())
	}
}

// Hit returns the closest hit across all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of every object's box
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// Validate checks every object in the list
func (l *HittableList) Validate() error {
	for _, object := range l.Objects {
		if err := Validate(object); err != nil {
			return err
		}
	}
	return nil
}
