package scene

import (
	"fmt"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/loaders"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
	"github.com/qmuntal/gltf"
)

// newGLTFScene places the meshes from opts.GLTFPath (or a generated
// octahedron) on a checkered floor, resting on y=0 and centered on the origin.
// The camera is framed from the mesh bounds.
func newGLTFScene(opts Options) (*Scene, error) {
	meshMaterial := lambertian(0.8, 0.6, 0.2)

	var meshes []geometry.Hittable
	var err error
	if opts.GLTFPath != "" {
		meshes, err = loaders.LoadGLTF(opts.GLTFPath, meshMaterial)
	} else {
		meshes, err = loaders.MeshFromDocument(octahedronDocument(), meshMaterial)
	}
	if err != nil {
		return nil, fmt.Errorf("gltf mesh: %w", err)
	}

	model := geometry.NewHittableList(meshes...)
	bounds := model.BoundingBox()
	offset := core.NewVec3(-bounds.Center().X, -bounds.Y.Min, -bounds.Center().Z)
	size := bounds.Size()
	extent := max(size.X, size.Y, size.Z)

	floor := material.NewTexturedLambertian(material.NewCheckerTextureFromColors(
		extent/4,
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	floorSize := extent * 20

	config := renderer.DefaultCameraConfig()
	config.ImageWidth = 400
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.VFov = 30
	config.LookAt = core.NewVec3(0, size.Y/2, 0)
	config.LookFrom = config.LookAt.Add(core.NewVec3(0.6, 0.4, 2).Multiply(extent * 1.2))
	config.FocusDistance = config.LookFrom.Subtract(config.LookAt).Length()

	return &Scene{
		Objects: []geometry.Hittable{
			geometry.NewTranslate(model, offset),
			geometry.NewQuad(
				core.NewVec3(-floorSize/2, 0, -floorSize/2),
				core.NewVec3(0, 0, floorSize),
				core.NewVec3(floorSize, 0, 0),
				floor,
			),
		},
		Camera: config,
	}, nil
}

// octahedronDocument builds a unit octahedron as an in-memory glTF document
func octahedronDocument() *gltf.Document {
	positions := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}
	indices := []int{
		0, 2, 4, 4, 2, 1, 1, 2, 5, 5, 2, 0,
		4, 3, 0, 1, 3, 4, 5, 3, 1, 0, 3, 5,
	}
	return loaders.NewMeshDocument("octahedron", positions, indices)
}
