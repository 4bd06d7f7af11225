package scene

import (
	"math/rand/v2"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// Stream ids keep the random sequences of different scenes independent
const (
	streamSpheres uint64 = iota + 1
	streamFinal
	streamFinalCluster
)

func newRandom(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

func randomRange(random *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*random.Float64()
}

func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		randomRange(random, lo, hi),
		randomRange(random, lo, hi),
		randomRange(random, lo, hi),
	)
}

// sphereFieldCamera is the low, narrow view over the sphere field with a
// shallow depth of field
func sphereFieldCamera() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.SamplesPerPixel = 50
	config.MaxDepth = 50
	config.VFov = 20
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.DefocusAngle = 0.6
	config.FocusDistance = 10
	return config
}

// sphereField creates the ground, a 22x22 grid of jittered small spheres
// and the three large feature spheres. When moving is set the diffuse
// spheres bounce upwards during the shutter interval.
func sphereField(random *rand.Rand, ground material.Material, moving bool) []geometry.Hittable {
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	}

	clearing := core.NewVec3(4, 0.2, 0)
	glass := material.NewDielectric(1.5)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				mat := material.NewLambertian(albedo)
				if moving {
					target := center.Add(core.NewVec3(0, randomRange(random, 0, 0.5), 0))
					objects = append(objects, geometry.NewMovingSphere(center, target, 0.2, mat))
				} else {
					objects = append(objects, geometry.NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				albedo := randomColor(random, 0.5, 1)
				fuzz := randomRange(random, 0, 0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, lambertian(0.4, 0.2, 0.1)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return objects
}

func newSpheresScene(opts Options) (*Scene, error) {
	return &Scene{
		Objects: sphereField(newRandom(opts.Seed, streamSpheres), lambertian(0.5, 0.5, 0.5), false),
		Camera:  sphereFieldCamera(),
	}, nil
}

func newBouncingSpheresScene(opts Options) (*Scene, error) {
	config := sphereFieldCamera()
	config.ImageWidth = 400
	config.SamplesPerPixel = 100

	return &Scene{
		Objects: sphereField(newRandom(opts.Seed, streamSpheres), lambertian(0.5, 0.5, 0.5), true),
		Camera:  config,
	}, nil
}

// newFinalCheckeredScene is the sphere field standing on a checkered ground
func newFinalCheckeredScene(opts Options) (*Scene, error) {
	checker := material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	return &Scene{
		Objects: sphereField(newRandom(opts.Seed, streamSpheres), material.NewTexturedLambertian(checker), false),
		Camera:  sphereFieldCamera(),
	}, nil
}
