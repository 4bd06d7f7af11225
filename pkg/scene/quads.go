package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

func newQuadsScene(opts Options) (*Scene, error) {
	leftRed := lambertian(1.0, 0.2, 0.2)
	backGreen := lambertian(0.2, 1.0, 0.2)
	rightBlue := lambertian(0.2, 0.2, 1.0)
	upperOrange := lambertian(1.0, 0.5, 0.0)
	lowerTeal := lambertian(0.2, 0.8, 0.8)

	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 1.0
	config.ImageWidth = 400
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.VFov = 80
	config.LookFrom = core.NewVec3(0, 0, 9)
	config.LookAt = core.NewVec3(0, 0, 0)

	return &Scene{
		Objects: []geometry.Hittable{
			geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
			geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
			geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
			geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
			geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
		},
		Camera: config,
	}, nil
}

func newSimpleLightScene(opts Options) (*Scene, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.Seed))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	config := renderer.DefaultCameraConfig()
	config.ImageWidth = 400
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.VFov = 20
	config.LookFrom = core.NewVec3(26, 3, 6)
	config.LookAt = core.NewVec3(0, 2, 0)
	config.Background = black()

	return &Scene{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
			geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
			geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
			geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
		},
		Camera: config,
	}, nil
}
