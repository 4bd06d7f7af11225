package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// ErrInvalidGeometry is wrapped by every geometry configuration error
var ErrInvalidGeometry = errors.New("geometry: invalid configuration")

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the closest intersection with t inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the object over the whole shutter interval
	BoundingBox() core.AABB
}

// Validate checks a hittable and everything it references.
// Objects that do not implement material.Validator are assumed valid.
func Validate(h Hittable) error {
	if h == nil {
		return fmt.Errorf("%w: nil object", ErrInvalidGeometry)
	}
	if v, ok := h.(material.Validator); ok {
		return v.Validate()
	}
	return nil
}

func validateMaterial(m material.Material, owner string) error {
	if m == nil {
		return fmt.Errorf("%w: %s has no material", ErrInvalidGeometry, owner)
	}
	if v, ok := m.(material.Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", owner, err)
		}
	}
	return nil
}
