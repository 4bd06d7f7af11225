package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
	_ "golang.org/x/image/bmp"  // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// ErrUnsupportedFormat is returned for assets the loaders cannot read
var ErrUnsupportedFormat = errors.New("loaders: unsupported format")

// ImageData contains a decoded image as linear RGB
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major from the top-left corner
}

// Texture wraps the pixels in an image texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}

// LoadImage loads a PNG, JPEG, BMP, TIFF or WebP image at full resolution
func LoadImage(filename string) (*ImageData, error) {
	return LoadImageScaled(filename, 0)
}

// LoadImageScaled loads an image and shrinks it so neither side exceeds
// maxSize. A maxSize of zero keeps the original size.
func LoadImageScaled(filename string, maxSize int) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, filename, err)
		}
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return ImageFromImage(img, maxSize), nil
}

// ImageFromImage converts a decoded sRGB image to linear RGB pixels,
// downsampling first when a side is larger than maxSize (0 means no limit)
func ImageFromImage(img image.Image, maxSize int) *ImageData {
	img = downsample(img, maxSize)

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			srgb := core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
			pixels[y*width+x] = material.SRGBToLinear(srgb)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

func downsample(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		return img
	}

	scale := float64(maxSize) / float64(max(width, height))
	dst := image.NewRGBA(image.Rect(0, 0,
		max(1, int(float64(width)*scale)),
		max(1, int(float64(height)*scale)),
	))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
