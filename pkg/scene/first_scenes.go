package scene

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// The small scenes of the first book. Each one is a ground sphere and a
// row of three spheres seen by the default camera under the sky.

func groundSphere(mat material.Material) geometry.Hittable {
	return geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, mat)
}

// threeSpheres places a center, left and right sphere above a yellow ground.
// extra objects are appended after them.
func threeSpheres(left, right material.Material, extra ...geometry.Hittable) []geometry.Hittable {
	objects := []geometry.Hittable{
		groundSphere(lambertian(0.8, 0.8, 0)),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, lambertian(0.1, 0.2, 0.5)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
	}
	return append(objects, extra...)
}

func newGroundSphereScene(opts Options) (*Scene, error) {
	return &Scene{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian(0.5, 0.5, 0.5)),
			groundSphere(lambertian(0.5, 0.5, 0.5)),
		},
		Camera: renderer.DefaultCameraConfig(),
	}, nil
}

func newMetalScene(opts Options) (*Scene, error) {
	return &Scene{
		Objects: threeSpheres(
			material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0),
			material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0),
		),
		Camera: renderer.DefaultCameraConfig(),
	}, nil
}

func newFuzzScene(opts Options) (*Scene, error) {
	return &Scene{
		Objects: threeSpheres(
			material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3),
			material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0),
		),
		Camera: renderer.DefaultCameraConfig(),
	}, nil
}

// newHollowGlassScene nests an air bubble (index 1/1.5) inside a glass sphere
func newHollowGlassScene(opts Options) (*Scene, error) {
	bubble := geometry.NewSphere(core.NewVec3(1, 0, -1), 0.4, material.NewDielectric(1.0/1.5))

	return &Scene{
		Objects: threeSpheres(
			material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0),
			material.NewDielectric(1.5),
			bubble,
		),
		Camera: renderer.DefaultCameraConfig(),
	}, nil
}

func newDefocusScene(opts Options) (*Scene, error) {
	config := renderer.DefaultCameraConfig()
	config.LookFrom = core.NewVec3(-2, 2, 1)
	config.LookAt = core.NewVec3(0, 0, -1)
	config.VFov = 20
	config.DefocusAngle = 5
	config.FocusDistance = 4

	return &Scene{
		Objects: threeSpheres(
			material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0),
			material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0),
		),
		Camera: config,
	}, nil
}

// newFovScene shows two touching spheres through a 100 degree field of view
func newFovScene(opts Options) (*Scene, error) {
	r := math.Cos(math.Pi / 4)
	config := renderer.DefaultCameraConfig()
	config.VFov = 100

	return &Scene{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(-r, 0, -1), r, lambertian(0, 0, 1)),
			geometry.NewSphere(core.NewVec3(r, 0, -1), r, lambertian(1, 0, 0)),
		},
		Camera: config,
	}, nil
}

// newVupScene rolls the camera a quarter turn with an up vector along -x
func newVupScene(opts Options) (*Scene, error) {
	config := renderer.DefaultCameraConfig()
	config.LookFrom = core.NewVec3(0, 0, 1)
	config.LookAt = core.NewVec3(0, 0, -1)
	config.Up = core.NewVec3(-1, 0, 0)

	return &Scene{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian(1, 0.02, 0.02)),
			groundSphere(lambertian(0.02, 1, 0.02)),
		},
		Camera: config,
	}, nil
}
