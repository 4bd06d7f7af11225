package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
)

func TestReflectance_Schlick(t *testing.T) {
	// Normal incidence from air into glass: ((1-1.5)/(1+1.5))^2 = 0.04
	if r := Reflectance(1.0, 1.5); math.Abs(r-0.04) > 1e-12 {
		t.Errorf("Expected 0.04, got %f", r)
	}
	// Grazing incidence always reflects fully
	if r := Reflectance(0.0, 1.5); math.Abs(r-1.0) > 1e-12 {
		t.Errorf("Expected 1.0, got %f", r)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewPixelSampler(1, 0)

	// Leaving glass at a steep angle: ratio 1.5 * sin(60deg) > 1
	normal := core.NewVec3(0, 1, 0)
	hit := &HitRecord{Normal: normal, FrontFace: false}
	dir := core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), dir)

	for i := 0; i < 100; i++ {
		scatter, ok := glass.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Dielectric should never absorb")
		}
		if scatter.Scattered.Direction.Dot(normal) <= 0 {
			t.Fatalf("Expected reflection back to the normal side, got %v", scatter.Scattered.Direction)
		}
		if !scatter.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
			t.Fatalf("Expected white attenuation, got %v", scatter.Attenuation)
		}
	}
}

func TestDielectric_NormalIncidenceMostlyRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewPixelSampler(2, 0)
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	refracted := 0
	const n = 2000
	for i := 0; i < n; i++ {
		scatter, _ := glass.Scatter(ray, hit, sampler)
		if scatter.Scattered.Direction.Y < 0 {
			refracted++
		}
	}

	// Expect ~96% refraction
	ratio := float64(refracted) / n
	if ratio < 0.93 || ratio > 0.99 {
		t.Errorf("Expected about 96%% refraction, got %.3f", ratio)
	}
}

func TestDielectric_Validate(t *testing.T) {
	tests := []struct {
		ior   float64
		valid bool
	}{
		{1.5, true},
		{1.0 / 1.33, true},
		{0, false},
		{-1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}

	for _, tt := range tests {
		err := NewDielectric(tt.ior).Validate()
		if tt.valid && err != nil {
			t.Errorf("IOR %v: unexpected error %v", tt.ior, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidMaterial) {
			t.Errorf("IOR %v: expected ErrInvalidMaterial, got %v", tt.ior, err)
		}
	}
}
