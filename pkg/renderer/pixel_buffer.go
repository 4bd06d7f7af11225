package renderer

import (
	"image"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// PixelBuffer holds linear RGB pixel colors in row-major order, top row first
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear color of pixel (x, y)
func (b *PixelBuffer) At(x, y int) core.Vec3 {
	return b.Pixels[y*b.Width+x]
}

// Set stores the linear color of pixel (x, y)
func (b *PixelBuffer) Set(x, y int, color core.Vec3) {
	b.Pixels[y*b.Width+x] = color
}

// ToImage gamma-corrects and quantizes the buffer into an 8-bit image
func (b *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetRGBA(x, y, b.At(x, y).ToRGBA())
		}
	}
	return img
}

// AverageLuminance returns the mean linear luminance over all pixels
func (b *PixelBuffer) AverageLuminance() float64 {
	if len(b.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, pixel := range b.Pixels {
		total += pixel.Luminance()
	}
	return total / float64(len(b.Pixels))
}
