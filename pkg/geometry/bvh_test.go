package geometry

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// randomSpheres scatters count small spheres in a 20-unit cube, each with its own material
func randomSpheres(random *rand.Rand, count int) []Hittable {
	objects := make([]Hittable, count)
	for i := range objects {
		center := core.NewVec3(
			random.Float64()*20-10,
			random.Float64()*20-10,
			random.Float64()*20-10,
		)
		albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
		objects[i] = NewSphere(center, 0.2+random.Float64()*0.8, material.NewLambertian(albedo))
	}
	return objects
}

func TestBVH_MatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewPCG(42, 7))

	for _, count := range []int{1, 2, 3, 17, 200} {
		objects := randomSpheres(random, count)
		list := NewHittableList(objects...)
		bvh := NewBVHNode(objects)

		interval := core.NewInterval(0.001, math.Inf(1))
		for i := 0; i < 2000; i++ {
			origin := core.NewVec3(random.Float64()*30-15, random.Float64()*30-15, random.Float64()*30-15)
			direction := core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5)
			ray := core.NewRay(origin, direction)

			listHit, listOk := list.Hit(ray, interval)
			bvhHit, bvhOk := bvh.Hit(ray, interval)

			if listOk != bvhOk {
				t.Fatalf("count=%d ray %d: brute force hit=%v, BVH hit=%v", count, i, listOk, bvhOk)
			}
			if !listOk {
				continue
			}
			if math.Abs(listHit.T-bvhHit.T) > 1e-9 {
				t.Fatalf("count=%d ray %d: expected t=%f, got t=%f", count, i, listHit.T, bvhHit.T)
			}
			if listHit.Material != bvhHit.Material {
				t.Fatalf("count=%d ray %d: BVH returned a different object", count, i)
			}
		}
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	objects := []Hittable{
		NewSphere(core.NewVec3(5, 0, 0), 1, testMaterial),
		NewSphere(core.NewVec3(-5, 0, 0), 1, testMaterial),
		NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial),
	}
	first := objects[0]

	NewBVHNode(objects)

	if objects[0] != first {
		t.Error("Expected input slice to keep its order")
	}
}

func TestBVH_Structure(t *testing.T) {
	a := NewSphere(core.NewVec3(3, 0, 0), 1, testMaterial)
	b := NewSphere(core.NewVec3(-3, 0, 0), 1, testMaterial)

	leaf := NewBVHNode([]Hittable{a})
	if leaf.Left != a || leaf.Right != nil {
		t.Error("Expected single object to become a leaf with only a left child")
	}

	pair := NewBVHNode([]Hittable{a, b})
	if pair.Left != b || pair.Right != a {
		t.Error("Expected two objects to be ordered by box minimum")
	}

	empty := NewBVHNode(nil)
	if _, ok := empty.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), core.UniverseInterval); ok {
		t.Error("Expected empty BVH to never be hit")
	}
}

func TestBVH_BoundingBoxIsUnionOfChildren(t *testing.T) {
	random := rand.New(rand.NewPCG(3, 4))
	objects := randomSpheres(random, 50)

	expected := core.EmptyAABB
	for _, object := range objects {
		expected = expected.Union(object.BoundingBox())
	}

	box := NewBVHNode(objects).BoundingBox()
	if !box.Min().Equals(expected.Min()) || !box.Max().Equals(expected.Max()) {
		t.Errorf("Expected box %v, got %v", expected, box)
	}
}

func TestBVH_Stats(t *testing.T) {
	random := rand.New(rand.NewPCG(9, 9))
	objects := randomSpheres(random, 8)

	stats := NewBVHNode(objects).Stats()
	if stats.Primitives != 8 {
		t.Errorf("Expected 8 primitives, got %d", stats.Primitives)
	}
	// 8 objects split into 4 pairs under a balanced tree of 3 interior levels
	if stats.Nodes != 7 {
		t.Errorf("Expected 7 nodes, got %d", stats.Nodes)
	}
	if stats.MaxDepth != 3 {
		t.Errorf("Expected depth 3, got %d", stats.MaxDepth)
	}
}

func TestBuildAccelerationStructure(t *testing.T) {
	t.Run("empty scene misses everything", func(t *testing.T) {
		world, err := BuildAccelerationStructure(nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if _, ok := world.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), core.UniverseInterval); ok {
			t.Error("Expected miss on empty world")
		}
	})

	t.Run("flattens nested lists", func(t *testing.T) {
		box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial)
		sphere := NewSphere(core.NewVec3(5, 0, 0), 1, testMaterial)

		world, err := BuildAccelerationStructure([]Hittable{box, sphere})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		bvh, ok := world.(*BVHNode)
		if !ok {
			t.Fatalf("Expected *BVHNode, got %T", world)
		}
		if stats := bvh.Stats(); stats.Primitives != 7 {
			t.Errorf("Expected 7 primitives after flattening, got %d", stats.Primitives)
		}
	})

	t.Run("rejects invalid objects", func(t *testing.T) {
		objects := []Hittable{
			NewSphere(core.Vec3{}, 1, testMaterial),
			NewSphere(core.Vec3{}, -1, testMaterial),
		}
		_, err := BuildAccelerationStructure(objects)
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("Expected ErrInvalidGeometry, got %v", err)
		}
	})

	t.Run("rejects invalid materials", func(t *testing.T) {
		objects := []Hittable{NewSphere(core.Vec3{}, 1, material.NewDielectric(math.NaN()))}
		_, err := BuildAccelerationStructure(objects)
		if !errors.Is(err, material.ErrInvalidMaterial) {
			t.Errorf("Expected ErrInvalidMaterial, got %v", err)
		}
	})

	t.Run("rejects nil objects", func(t *testing.T) {
		_, err := BuildAccelerationStructure([]Hittable{nil})
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("Expected ErrInvalidGeometry, got %v", err)
		}
	})
}

func BenchmarkBVHHit(b *testing.B) {
	random := rand.New(rand.NewPCG(1, 1))
	bvh := NewBVHNode(randomSpheres(random, 1000))
	ray := core.NewRay(core.NewVec3(0, 0, -20), core.NewVec3(0.01, 0.02, 1))
	interval := core.NewInterval(0.001, math.Inf(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bvh.Hit(ray, interval)
	}
}

func BenchmarkListHit(b *testing.B) {
	random := rand.New(rand.NewPCG(1, 1))
	list := NewHittableList(randomSpheres(random, 1000)...)
	ray := core.NewRay(core.NewVec3(0, 0, -20), core.NewVec3(0.01, 0.02, 1))
	interval := core.NewInterval(0.001, math.Inf(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Hit(ray, interval)
	}
}
