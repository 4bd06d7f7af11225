package material

import (
	"fmt"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorSource provides spatially-varying colors for materials.
// Implementations are immutable and safe to share across goroutines.
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// ParseHexColor parses an sRGB hex color such as "#ffcc00" into linear RGB
func ParseHexColor(hex string) (core.Vec3, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.LinearRgb()
	return core.NewVec3(r, g, b), nil
}

// SRGBToLinear converts an sRGB color with components in [0, 1] to linear RGB
func SRGBToLinear(srgb core.Vec3) core.Vec3 {
	r, g, b := colorful.Color{R: srgb.X, G: srgb.Y, B: srgb.Z}.LinearRgb()
	return core.NewVec3(r, g, b)
}
