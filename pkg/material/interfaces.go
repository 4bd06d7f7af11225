package material

import (
	"errors"
	"fmt"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// ErrInvalidMaterial is wrapped by every material configuration error
var ErrInvalidMaterial = errors.New("material: invalid configuration")

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter generates a scattered ray, or reports false when the ray is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light.
// Materials that do not implement it emit nothing.
type Emitter interface {
	Emitted(hit *HitRecord) core.Vec3
}

// Validator is implemented by anything that can check its own configuration
type Validator interface {
	Validate() error
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface coordinates for texturing
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// EmittedLight returns what the hit material emits, or black
func EmittedLight(hit *HitRecord) core.Vec3 {
	if emitter, ok := hit.Material.(Emitter); ok {
		return emitter.Emitted(hit)
	}
	return core.Vec3{}
}

// validateTexture checks a texture that can validate itself
func validateTexture(texture ColorSource, owner string) error {
	if texture == nil {
		return fmt.Errorf("%w: %s has no texture", ErrInvalidMaterial, owner)
	}
	if v, ok := texture.(Validator); ok {
		return v.Validate()
	}
	return nil
}
