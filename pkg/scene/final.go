package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// newFinalScene builds the closing scene of the second book. The ground and
// the sphere cluster are each wrapped in their own BVH, which then sits
// inside the scene BVH.
func newFinalScene(opts Options) (*Scene, error) {
	random := newRandom(opts.Seed, streamFinal)

	// Terrain of boxes with random heights
	ground := lambertian(0.48, 0.83, 0.53)
	const boxesPerSide = 20
	const boxWidth = 100.0
	var boxes []geometry.Hittable
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*boxWidth
			z0 := -1000.0 + float64(j)*boxWidth
			y1 := randomRange(random, 1, 101)
			boxes = append(boxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+boxWidth, y1, z0+boxWidth),
				ground,
			))
		}
	}

	objects := []geometry.Hittable{geometry.NewBVHNode(boxes)}

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	objects = append(objects, geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	objects = append(objects, geometry.NewMovingSphere(center1, center2, 50, lambertian(0.7, 0.3, 0.1)))

	glass := material.NewDielectric(1.5)
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, glass),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass ball filled with blue subsurface fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, glass)
	objects = append(objects, boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, glass)
	objects = append(objects, geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth, err := earthTexture(opts)
	if err != nil {
		return nil, err
	}
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)),
		geometry.NewSphere(core.NewVec3(220, 200, 300), 80, material.NewTexturedLambertian(material.NewNoiseTexture(0.2, opts.Seed))),
	)

	// Cluster of small white spheres
	clusterRandom := newRandom(opts.Seed, streamFinalCluster)
	white := lambertian(0.73, 0.73, 0.73)
	const clusterSize = 1000
	cluster := make([]geometry.Hittable, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		cluster = append(cluster, geometry.NewSphere(randomColor(clusterRandom, 0, 165), 10, white))
	}
	objects = append(objects, geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVHNode(cluster), 15),
		core.NewVec3(-100, 270, 395),
	))

	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 1.0
	config.ImageWidth = 800
	config.SamplesPerPixel = 1000
	config.MaxDepth = 40
	config.VFov = 40
	config.LookFrom = core.NewVec3(478, 278, -600)
	config.LookAt = core.NewVec3(278, 278, 0)
	config.Background = black()

	return &Scene{Objects: objects, Camera: config}, nil
}
