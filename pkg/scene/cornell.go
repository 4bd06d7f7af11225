package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 1.0 // Square aspect ratio for Cornell box
	config.ImageWidth = 400
	config.SamplesPerPixel = 200
	config.MaxDepth = 50
	config.VFov = 40
	config.LookFrom = core.NewVec3(278, 278, -800) // Outside the box looking in
	config.LookAt = core.NewVec3(278, 278, 0)
	config.Background = black()
	return config
}

// cornellWalls returns the five walls of the open box
func cornellWalls(white material.Material) []geometry.Hittable {
	red := lambertian(0.65, 0.05, 0.05)
	green := lambertian(0.12, 0.45, 0.15)

	return []geometry.Hittable{
		// Right wall (green) - YZ plane at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	}
}

// cornellBlocks returns the tall and short blocks, rotated and placed
func cornellBlocks(white material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))
	return tall, short
}

func newCornellBoxScene(opts Options) (*Scene, error) {
	white := lambertian(0.73, 0.73, 0.73)
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	objects := cornellWalls(white)
	// Ceiling light, facing down into the box
	objects = append(objects, geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	tall, short := cornellBlocks(white)
	objects = append(objects, tall, short)

	return &Scene{Objects: objects, Camera: cornellCamera()}, nil
}

func newCornellSmokeScene(opts Options) (*Scene, error) {
	white := lambertian(0.73, 0.73, 0.73)
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	objects := cornellWalls(white)
	objects = append(objects, geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	tall, short := cornellBlocks(white)
	objects = append(objects,
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return &Scene{Objects: objects, Camera: cornellCamera()}, nil
}
