package material

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

const turbulenceDepth = 7

// NoiseTexture is a grey marble pattern driven by Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture with its own noise tables
func NewNoiseTexture(scale float64, seed uint64) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(seed), Scale: scale}
}

// NewNoiseTextureFromPerlin creates a marble texture sharing existing noise tables
func NewNoiseTextureFromPerlin(scale float64, noise *Perlin) *NoiseTexture {
	return &NoiseTexture{noise: noise, Scale: scale}
}

// Evaluate returns 0.5 * (1 + sin(scale*z + 10*turbulence)) as a grey level
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	grey := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.noise.Turbulence(point, turbulenceDepth)))
	return core.NewVec3(grey, grey, grey)
}
