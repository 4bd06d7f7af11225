package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// BVHNode is one node of a bounding volume hierarchy. Children are either
// further nodes or primitives. Right is nil for a single-primitive leaf.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVHNode builds a hierarchy over objects. The input slice is not modified.
func NewBVHNode(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	// Copy so sorting never reorders the caller's slice
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy)
}

// buildBVH splits objects at the median along the longest axis of their
// combined box, after sorting by box minimum on that axis
func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects {
		bbox = bbox.Union(object.BoundingBox())
	}

	if len(objects) == 1 {
		return &BVHNode{Left: objects[0], bbox: bbox}
	}

	axis := bbox.LongestAxis()
	sortByBoxMin(objects, axis)

	if len(objects) == 2 {
		return &BVHNode{Left: objects[0], Right: objects[1], bbox: bbox}
	}

	mid := len(objects) / 2
	return &BVHNode{
		Left:  buildBVH(objects[:mid]),
		Right: buildBVH(objects[mid:]),
		bbox:  bbox,
	}
}

// sortByBoxMin orders objects by the minimum of their bounding box along axis.
// The sort is stable so equal keys keep their input order.
func sortByBoxMin(objects []Hittable, axis int) {
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
	})
}

// Hit tests the node's box, then both children, narrowing the interval
// after the left child so the right child only reports closer hits
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	hitLeft, okLeft := n.Left.Hit(ray, rayT)
	if n.Right == nil {
		return hitLeft, okLeft
	}

	upper := rayT.Max
	if okLeft {
		upper = hitLeft.T
	}
	hitRight, okRight := n.Right.Hit(ray, core.NewInterval(rayT.Min, upper))
	if okRight {
		return hitRight, true
	}
	return hitLeft, okLeft
}

// BoundingBox returns the box around everything below this node
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Validate checks both subtrees
func (n *BVHNode) Validate() error {
	for _, child := range []Hittable{n.Left, n.Right} {
		if child == nil {
			continue
		}
		if err := Validate(child); err != nil {
			return err
		}
	}
	return nil
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes      int // Interior nodes
	Primitives int // Objects referenced by leaves
	MaxDepth   int // Longest path from the root to a primitive
}

// String formats the stats on one line
func (s BVHStats) String() string {
	return fmt.Sprintf("%d nodes, %d primitives, depth %d", s.Nodes, s.Primitives, s.MaxDepth)
}

// Stats walks the hierarchy and reports its size
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(&stats, 1)
	return stats
}

func (n *BVHNode) collectStats(stats *BVHStats, depth int) {
	stats.Nodes++
	for _, child := range []Hittable{n.Left, n.Right} {
		if child == nil {
			continue
		}
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(stats, depth+1)
			continue
		}
		stats.Primitives++
		stats.MaxDepth = max(stats.MaxDepth, depth)
	}
}

// BuildAccelerationStructure validates objects and compiles them into a BVH.
// Nested HittableLists are flattened first so their members are split
// individually. An empty input yields an empty list that every ray misses.
func BuildAccelerationStructure(objects []Hittable) (Hittable, error) {
	flat := flatten(objects, nil)

	for i, object := range flat {
		if err := Validate(object); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}

	if len(flat) == 0 {
		return NewHittableList(), nil
	}
	return NewBVHNode(flat), nil
}

func flatten(objects []Hittable, out []Hittable) []Hittable {
	for _, object := range objects {
		if list, ok := object.(*HittableList); ok {
			out = flatten(list.Objects, out)
			continue
		}
		out = append(out, object)
	}
	return out
}
