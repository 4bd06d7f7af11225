package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func TestSphere_HitFromOutside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	if !hit.Point.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected point (0,0,1), got %v", hit.Point)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
	if hit.Material != testMaterial {
		t.Error("Expected sphere material on hit record")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 1000.0))

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_HitRespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	// Near root excluded, far root at t=4 accepted
	hit, ok := sphere.Hit(ray, core.NewInterval(2.5, 10))
	if !ok || math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected far root t=4, got ok=%v hit=%v", ok, hit)
	}

	// Both roots outside
	if _, ok := sphere.Hit(ray, core.NewInterval(0.001, 1.5)); ok {
		t.Error("Expected miss when both roots lie outside the interval")
	}

	// Miss entirely
	if _, ok := sphere.Hit(core.NewRay(core.NewVec3(2, 0, 3), core.NewVec3(0, 0, -1)), core.UniverseInterval); ok {
		t.Error("Expected miss for ray passing beside the sphere")
	}
}

func TestSphere_HitPointsLieOnSurface(t *testing.T) {
	center := core.NewVec3(1, -2, 3)
	radius := 1.5
	sphere := NewSphere(center, radius, testMaterial)
	sampler := core.NewPixelSampler(5, 0)
	interval := core.NewInterval(0.001, math.Inf(1))

	for i := 0; i < 500; i++ {
		origin := center.Add(core.RandomUnitVector(sampler).Multiply(5))
		target := center.Add(core.RandomUnitVector(sampler).Multiply(radius * 0.9))
		ray := core.NewRay(origin, target.Subtract(origin))

		hit, ok := sphere.Hit(ray, interval)
		if !ok {
			t.Fatalf("Expected ray toward interior point to hit")
		}
		if d := hit.Point.Subtract(center).Length(); math.Abs(d-radius) > 1e-9 {
			t.Fatalf("Hit point %v is %f from center, expected %f", hit.Point, d, radius)
		}
		if !interval.Surrounds(hit.T) {
			t.Fatalf("Hit t=%f outside interval", hit.T)
		}
		if hit.Normal.Dot(ray.Direction) > 0 {
			t.Fatalf("Normal %v does not oppose ray %v", hit.Normal, ray.Direction)
		}
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec2
	}{
		{"+X", core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{"+Y", core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1.0)},
		{"-Y", core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0.0)},
		{"-X", core.NewVec3(-1, 0, 0), core.NewVec2(0.0, 0.5)},
		{"+Z", core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
		{"-Z", core.NewVec3(0, 0, -1), core.NewVec2(0.75, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphereUV(tt.point)
			if math.Abs(uv.X-tt.expected.X) > 1e-9 || math.Abs(uv.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, uv)
			}
		})
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0.5, testMaterial)

	// At time 1 the sphere is centered at y=2
	ray := core.NewRayAtTime(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1), 1.0)
	hit, ok := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok || math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected hit at t=4.5 at time 1, got ok=%v", ok)
	}

	// The same ray at time 0 misses
	ray.Time = 0
	if _, ok := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1))); ok {
		t.Error("Expected miss at time 0")
	}

	box := sphere.BoundingBox()
	if box.Y.Min > -0.5 || box.Y.Max < 2.5 {
		t.Errorf("Expected box to span both end positions, got %v", box.Y)
	}
}

func TestSphere_Validate(t *testing.T) {
	tests := []struct {
		name   string
		sphere *Sphere
		valid  bool
	}{
		{"valid", NewSphere(core.Vec3{}, 1, testMaterial), true},
		{"zero radius", NewSphere(core.Vec3{}, 0, testMaterial), false},
		{"NaN radius", NewSphere(core.Vec3{}, math.NaN(), testMaterial), false},
		{"nil material", NewSphere(core.Vec3{}, 1, nil), false},
		{"invalid material", NewSphere(core.Vec3{}, 1, material.NewDielectric(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sphere.Validate()
			if tt.valid && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Expected validation error")
			}
		})
	}

	if err := NewSphere(core.Vec3{}, 0, testMaterial).Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry, got %v", err)
	}
	if err := NewSphere(core.Vec3{}, 1, material.NewDielectric(0)).Validate(); !errors.Is(err, material.ErrInvalidMaterial) {
		t.Errorf("Expected ErrInvalidMaterial, got %v", err)
	}
}
