package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

func TestTriangle_Hit(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, gray())

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle center",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Hit beyond tMax",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      0.5,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit material.HitRecord
			isHit := triangle.Hit(tt.ray, tt.tMin, tt.tMax, &hit)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestTriangle_NormalAndFace(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), gray())

	if !vecNear(triangle.Normal(), core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected counter-clockwise normal (0,0,1), got %v", triangle.Normal())
	}

	var hit material.HitRecord
	triangle.Hit(core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)), 0.001, 10, &hit)
	if !hit.FrontFace {
		t.Error("Expected front face when hit from +Z")
	}
	triangle.Hit(core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)), 0.001, 10, &hit)
	if hit.FrontFace {
		t.Error("Expected back face when hit from -Z")
	}
}

func TestTriangle_BoundingBoxIsNeverFlat(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), gray())
	box, ok := triangle.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	if box.Max.Z-box.Min.Z <= 0 {
		t.Errorf("Expected padded Z extent, got %v-%v", box.Min, box.Max)
	}
}

func TestTriangle_PDF(t *testing.T) {
	// Right triangle of area 2 directly above the origin at distance 10
	triangle := NewTriangle(core.NewVec3(-1, 10, -1), core.NewVec3(1, 10, -1), core.NewVec3(-1, 10, 1), gray())
	origin := core.NewVec3(0, 0, 0)

	direction := core.NewVec3(-0.05, 1, -0.05).Normalize()
	got := triangle.PDFValue(origin, direction)
	distanceSquared := core.NewVec3(-0.5, 10, -0.5).LengthSquared()
	want := distanceSquared / (direction.Y * 2)
	if math.Abs(got-want)/want > 1e-9 {
		t.Errorf("Expected pdf %f, got %f", want, got)
	}

	sampler := core.NewSeededSampler(5)
	for i := 0; i < 1000; i++ {
		d := triangle.Random(origin, sampler)
		if triangle.PDFValue(origin, d) <= 0 {
			t.Fatalf("Sampled direction %v has zero density", d)
		}
	}
}
