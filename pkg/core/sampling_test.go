package core

import (
	"math"
	"testing"
)

func TestNewPixelSampler_Deterministic(t *testing.T) {
	a := NewPixelSampler(42, 7)
	b := NewPixelSampler(42, 7)
	c := NewPixelSampler(42, 8)

	same := true
	differs := false
	for i := 0; i < 16; i++ {
		va, vb, vc := a.Get1D(), b.Get1D(), c.Get1D()
		if va != vb {
			same = false
		}
		if va != vc {
			differs = true
		}
	}

	if !same {
		t.Error("Expected identical streams for identical seed and pixel index")
	}
	if !differs {
		t.Error("Expected different pixel indices to produce different streams")
	}
}

func TestSampleOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewPixelSampler(1, 0)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewPixelSampler(3, 0)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Expected z=0, got %f", p.Z)
		}
		if p.LengthSquared() > 1+1e-9 {
			t.Fatalf("Expected point inside unit disk, got %v", p)
		}
	}

	if p := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); p != (Vec3{}) {
		t.Errorf("Expected center sample to map to origin, got %v", p)
	}
}
