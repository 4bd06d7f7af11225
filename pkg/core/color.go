package core

import (
	"image/color"
	"math"
)

// intensity is the displayable range of a color component before quantization
var intensity = Interval{Min: 0.000, Max: 0.999}

// LinearToGamma converts a linear component to gamma 2 space
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// GammaCorrect applies gamma 2 to every component
func (v Vec3) GammaCorrect() Vec3 {
	return Vec3{LinearToGamma(v.X), LinearToGamma(v.Y), LinearToGamma(v.Z)}
}

// ToRGBA converts a linear color to an 8-bit sRGB-ish pixel using gamma 2
func (v Vec3) ToRGBA() color.RGBA {
	g := v.Sanitize().GammaCorrect()
	return color.RGBA{
		R: uint8(255.999 * intensity.Clamp(g.X)),
		G: uint8(255.999 * intensity.Clamp(g.Y)),
		B: uint8(255.999 * intensity.Clamp(g.Z)),
		A: 255,
	}
}
