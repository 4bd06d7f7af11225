package material

import (
	"github.com/df07/weekend-raytracer/pkg/core"
)

// DiffuseLight is a light-emitting material. It never scatters.
type DiffuseLight struct {
	Emit     ColorSource
	TwoSided bool // Emit from the back face as well
}

// NewDiffuseLight creates a front-facing light with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a front-facing light whose emission comes from a texture
func NewTexturedDiffuseLight(emit ColorSource) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emission at the hit, black on the back face unless TwoSided
func (d *DiffuseLight) Emitted(hit *HitRecord) core.Vec3 {
	if !hit.FrontFace && !d.TwoSided {
		return core.Vec3{}
	}
	return d.Emit.Evaluate(hit.UV, hit.Point)
}

// Validate checks that the light has an emission texture
func (d *DiffuseLight) Validate() error {
	return validateTexture(d.Emit, "diffuse light")
}
