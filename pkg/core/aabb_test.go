package core

import (
	"math/rand/v2"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"miss to the side", NewRay(NewVec3(3, 0, 5), NewVec3(0, 0, -1)), false},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 0)), true},
		{"parallel inside slab", NewRay(NewVec3(0.5, -5, 0.5), NewVec3(0, 1, 0)), true},
		{"parallel outside slab", NewRay(NewVec3(2, -5, 0.5), NewVec3(0, 1, 0)), false},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, NewInterval(0.001, 1000)); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}

	// Box beyond the interval
	if box.Hit(NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), NewInterval(0.001, 3)) {
		t.Error("Expected miss when box lies beyond tMax")
	}
}

func TestAABB_PadsDegenerateAxes(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 0, 1))
	if flat.Y.Size() < minAABBExtent {
		t.Errorf("Expected Y axis padded to at least %g, got %g", minAABBExtent, flat.Y.Size())
	}
	if flat.X.Size() != 1 {
		t.Errorf("Expected X axis unchanged, got %g", flat.X.Size())
	}

	// A ray hitting the flat box head-on must still register
	ray := NewRay(NewVec3(0.5, 1, 0.5), NewVec3(0, -1, 0))
	if !flat.Hit(ray, NewInterval(0.001, 10)) {
		t.Error("Expected padded flat box to be hit")
	}
}

func TestAABB_UnionIsMinimal(t *testing.T) {
	random := rand.New(rand.NewPCG(1, 2))
	randomBox := func() AABB {
		a := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		b := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		return NewAABBFromPoints(a, b)
	}

	for i := 0; i < 100; i++ {
		a, b := randomBox(), randomBox()
		u := a.Union(b)

		for axis := 0; axis < 3; axis++ {
			ua, aa, ba := u.Axis(axis), a.Axis(axis), b.Axis(axis)
			if ua.Min > aa.Min || ua.Min > ba.Min || ua.Max < aa.Max || ua.Max < ba.Max {
				t.Fatalf("Union %v does not contain %v and %v on axis %d", u, a, b, axis)
			}
			if ua.Min != min(aa.Min, ba.Min) || ua.Max != max(aa.Max, ba.Max) {
				t.Fatalf("Union %v is not minimal on axis %d", u, axis)
			}
		}
	}
}

func TestAABB_LongestAxisAndCorners(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 5, 2))
	if axis := box.LongestAxis(); axis != 1 {
		t.Errorf("Expected longest axis 1, got %d", axis)
	}

	corners := box.Corners()
	rebuilt := NewAABBFromPoints(corners[:]...)
	if rebuilt != box {
		t.Errorf("Expected corners to rebuild the same box, got %v", rebuilt)
	}

	moved := box.Translate(NewVec3(1, 1, 1))
	if moved.Min() != NewVec3(1, 1, 1) || moved.Max() != NewVec3(2, 6, 3) {
		t.Errorf("Unexpected translated box %v", moved)
	}
}
