package scene

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/loaders"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// textureCamera is the plain view used by the texture showcase scenes
func textureCamera() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.ImageWidth = 400
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.VFov = 20
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	return config
}

func newCheckeredSpheresScene(opts Options) (*Scene, error) {
	checker := material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	mat := material.NewTexturedLambertian(checker)

	return &Scene{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, -10, 0), 10, mat),
			geometry.NewSphere(core.NewVec3(0, 10, 0), 10, mat),
		},
		Camera: textureCamera(),
	}, nil
}

func newPerlinSpheresScene(opts Options) (*Scene, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.Seed))

	return &Scene{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
			geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		},
		Camera: textureCamera(),
	}, nil
}

func newEarthScene(opts Options) (*Scene, error) {
	texture, err := earthTexture(opts)
	if err != nil {
		return nil, err
	}

	config := textureCamera()
	config.LookFrom = core.NewVec3(0, 0, 12)

	return &Scene{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
		},
		Camera: config,
	}, nil
}

// maxTextureSize bounds the resolution of loaded texture maps
const maxTextureSize = 2048

// earthTexture loads the map from opts.ImagePath, or generates one
func earthTexture(opts Options) (*material.ImageTexture, error) {
	if opts.ImagePath != "" {
		data, err := loaders.LoadImageScaled(opts.ImagePath, maxTextureSize)
		if err != nil {
			return nil, fmt.Errorf("earth texture: %w", err)
		}
		return data.Texture(), nil
	}
	return loaders.ImageFromImage(generatedWorldMap(256, 128, opts.Seed), 0).Texture(), nil
}

// generatedWorldMap paints an equirectangular map with noise continents,
// blue oceans and white polar caps
func generatedWorldMap(width, height int, seed uint64) *image.RGBA {
	noise := material.NewPerlin(seed)
	ocean := color.RGBA{R: 28, G: 72, B: 140, A: 255}
	land := color.RGBA{R: 70, G: 120, B: 50, A: 255}
	desert := color.RGBA{R: 190, G: 160, B: 100, A: 255}
	ice := color.RGBA{R: 240, G: 240, B: 245, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		lat := (0.5 - (float64(y)+0.5)/float64(height)) * math.Pi
		for x := 0; x < width; x++ {
			lon := (float64(x)+0.5)/float64(width)*2*math.Pi - math.Pi
			p := core.NewVec3(math.Cos(lat)*math.Cos(lon), math.Sin(lat), math.Cos(lat)*math.Sin(lon))

			elevation := noise.Turbulence(p.Multiply(2.5), 6)
			c := ocean
			switch {
			case math.Abs(lat) > 1.3:
				c = ice
			case elevation > 0.55:
				c = desert
			case elevation > 0.35:
				c = land
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
