package scene

import (
	"fmt"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Description string
	Objects     []geometry.Hittable    // Objects in the scene
	Camera      renderer.CameraConfig // View and image settings the scene was composed for
}

// Options tune how a scene is built
type Options struct {
	Seed      uint64                // Seed for randomly placed objects and noise textures
	ImagePath string                // Texture for the earth scenes; a generated map is used when empty
	GLTFPath  string                // Mesh for the gltf scene; a generated mesh is used when empty
	Camera    renderer.CameraConfig // Non-zero fields override the scene camera
}

// DefaultOptions returns the options used when nothing is specified
func DefaultOptions() Options {
	return Options{Seed: 42}
}

// Build validates every object and returns the world to render, wrapped in a BVH
func (s *Scene) Build() (geometry.Hittable, error) {
	world, err := geometry.BuildAccelerationStructure(s.Objects)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return world, nil
}

// NewCamera creates the camera for this scene
func (s *Scene) NewCamera() (*renderer.Camera, error) {
	return renderer.NewCamera(s.Camera)
}

// PrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, object := range s.Objects {
		count += countPrimitives(object)
	}
	return count
}

// countPrimitives counts primitives in a single object, looking through
// containers and transforms
func countPrimitives(object geometry.Hittable) int {
	switch obj := object.(type) {
	case nil:
		return 0
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Objects {
			count += countPrimitives(child)
		}
		return count
	case *geometry.BVHNode:
		return countPrimitives(obj.Left) + countPrimitives(obj.Right)
	case *geometry.Translate:
		return countPrimitives(obj.Object)
	case *geometry.Rotate:
		return countPrimitives(obj.Object)
	case *geometry.ConstantMedium:
		return countPrimitives(obj.Boundary)
	case *geometry.TriangleMesh:
		return obj.TriangleCount()
	default:
		return 1
	}
}

// black returns a pointer to a black background color
func black() *core.Vec3 {
	c := core.NewVec3(0, 0, 0)
	return &c
}

// lambertian is shorthand for a solid-colored diffuse material
func lambertian(r, g, b float64) *material.Lambertian {
	return material.NewLambertian(core.NewVec3(r, g, b))
}
