package geometry

import (
	"fmt"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// TriangleMesh is an indexed set of triangles sharing one material.
// It keeps its own BVH, so a whole mesh acts as one primitive in the scene BVH.
type TriangleMesh struct {
	triangles []Hittable
	bvh       *BVHNode
	skipped   int
}

// NewTriangleMesh creates a mesh from vertices and face indices, where each
// group of three indices forms a triangle. Degenerate triangles are dropped.
func NewTriangleMesh(vertices []core.Vec3, faces []int, material material.Material) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: %d face indices is not a multiple of 3", ErrInvalidGeometry, len(faces))
	}

	mesh := &TriangleMesh{}
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, index := range [...]int{i0, i1, i2} {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("%w: face index %d out of range [0, %d)", ErrInvalidGeometry, index, len(vertices))
			}
		}

		triangle := NewTriangle(vertices[i0], vertices[i1], vertices[i2], material)
		if triangle.V1.Subtract(triangle.V0).Cross(triangle.V2.Subtract(triangle.V0)).NearZero() {
			mesh.skipped++
			continue
		}
		mesh.triangles = append(mesh.triangles, triangle)
	}

	mesh.bvh = NewBVHNode(mesh.triangles)
	return mesh, nil
}

// Hit tests the mesh through its BVH
func (tm *TriangleMesh) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return tm.bvh.Hit(ray, rayT)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bvh.BoundingBox()
}

// TriangleCount returns the number of triangles kept in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// SkippedCount returns how many degenerate triangles were dropped
func (tm *TriangleMesh) SkippedCount() int {
	return tm.skipped
}

// Validate checks every triangle and rejects empty meshes
func (tm *TriangleMesh) Validate() error {
	if len(tm.triangles) == 0 {
		return fmt.Errorf("%w: mesh has no triangles", ErrInvalidGeometry)
	}
	return tm.bvh.Validate()
}
