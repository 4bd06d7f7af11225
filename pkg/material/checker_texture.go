package material

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// CheckerTexture alternates between two textures on a 3D grid of cubes
type CheckerTexture struct {
	invScale float64
	Even     ColorSource
	Odd      ColorSource
}

// NewCheckerTexture creates a checker with cubes of edge length scale
func NewCheckerTexture(scale float64, even, odd ColorSource) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerTextureFromColors creates a checker from two solid colors
func NewCheckerTextureFromColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the even or odd texture from the parity of the cell the point falls in
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	// Go's % keeps the sign of the dividend
	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

// Validate requires a finite scale and both child textures
func (c *CheckerTexture) Validate() error {
	if math.IsInf(c.invScale, 0) || math.IsNaN(c.invScale) {
		return fmt.Errorf("%w: checker scale must be non-zero", ErrInvalidMaterial)
	}
	if c.Even == nil || c.Odd == nil {
		return fmt.Errorf("%w: checker needs two textures", ErrInvalidMaterial)
	}
	return nil
}
