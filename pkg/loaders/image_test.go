package loaders

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
	"golang.org/x/image/bmp"
)

func quadrantImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // blue
	return img
}

func checkColor(t *testing.T, name string, got, expected core.Vec3) {
	t.Helper()
	const tolerance = 0.01
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("%s: expected %v, got %v", name, expected, got)
	}
}

// TestLoadImage writes the same image as PNG and BMP and verifies loading
func TestLoadImage(t *testing.T) {
	encoders := map[string]func(f *os.File, img image.Image) error{
		"test.png": func(f *os.File, img image.Image) error { return png.Encode(f, img) },
		"test.bmp": func(f *os.File, img image.Image) error { return bmp.Encode(f, img) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			testFile := filepath.Join(t.TempDir(), name)
			f, err := os.Create(testFile)
			if err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}
			if err := encode(f, quadrantImage()); err != nil {
				f.Close()
				t.Fatalf("Failed to encode image: %v", err)
			}
			f.Close()

			imageData, err := LoadImage(testFile)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if imageData.Width != 2 || imageData.Height != 2 {
				t.Fatalf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
			}

			checkColor(t, "Top-left (white)", imageData.Pixels[0], core.NewVec3(1, 1, 1))
			checkColor(t, "Top-right (red)", imageData.Pixels[1], core.NewVec3(1, 0, 0))
			checkColor(t, "Bottom-left (green)", imageData.Pixels[2], core.NewVec3(0, 1, 0))
			checkColor(t, "Bottom-right (blue)", imageData.Pixels[3], core.NewVec3(0, 0, 1))
		})
	}
}

func TestImageFromImage_ConvertsToLinear(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.Gray{Y: 188}) // ~0.5 linear in sRGB

	data := ImageFromImage(img, 0)
	if got := data.Pixels[0].X; math.Abs(got-0.5) > 0.01 {
		t.Errorf("Expected linear value near 0.5, got %f", got)
	}
}

func TestImageFromImage_Downsamples(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	data := ImageFromImage(img, 16)
	if data.Width != 16 || data.Height != 8 {
		t.Fatalf("Expected 16x8, got %dx%d", data.Width, data.Height)
	}
	checkColor(t, "center", data.Pixels[4*16+8], core.NewVec3(1, 1, 1))

	full := ImageFromImage(img, 0)
	if full.Width != 64 || full.Height != 32 {
		t.Errorf("Expected original 64x32 with no limit, got %dx%d", full.Width, full.Height)
	}
}

func TestImageData_Texture(t *testing.T) {
	data := ImageFromImage(quadrantImage(), 0)
	texture := data.Texture()

	// v=1 is the top row
	checkColor(t, "top-right", texture.Evaluate(core.NewVec2(0.9, 0.9), core.Vec3{}), core.NewVec3(1, 0, 0))
	checkColor(t, "bottom-left", texture.Evaluate(core.NewVec2(0.1, 0.1), core.Vec3{}), core.NewVec3(0, 1, 0))
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestLoadImageUnknownFormat(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(testFile, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := LoadImage(testFile)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
