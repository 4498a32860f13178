package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

func TestAARect_Orientation(t *testing.T) {
	tests := []struct {
		name   string
		rect   *AARect
		origin core.Vec3
		dir    core.Vec3
		point  core.Vec3
	}{
		{"xy", NewXYRect(0, 2, 0, 2, 5, gray()), core.NewVec3(1, 1, 0), core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 5)},
		{"xz", NewXZRect(0, 2, 0, 2, 5, gray()), core.NewVec3(1, 0, 1), core.NewVec3(0, 1, 0), core.NewVec3(1, 5, 1)},
		{"yz", NewYZRect(0, 2, 0, 2, 5, gray()), core.NewVec3(0, 1, 1), core.NewVec3(1, 0, 0), core.NewVec3(5, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit material.HitRecord
			if !tt.rect.Hit(core.NewRay(tt.origin, tt.dir), 0.001, 100, &hit) {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-5) > 1e-12 {
				t.Errorf("Expected t=5, got %f", hit.T)
			}
			if !vecNear(hit.Point, tt.point, 1e-12) {
				t.Errorf("Expected point %v, got %v", tt.point, hit.Point)
			}
			// The outward normal points along the positive axis, so a ray
			// travelling in that direction hits the back face
			if hit.FrontFace {
				t.Error("Expected back face")
			}
			if math.Abs(hit.UV.X-0.5) > 1e-12 || math.Abs(hit.UV.Y-0.5) > 1e-12 {
				t.Errorf("Expected uv (0.5,0.5), got %v", hit.UV)
			}
		})
	}
}

func TestAARect_MissOutsideBounds(t *testing.T) {
	rect := NewXZRect(0, 1, 0, 1, 2, gray())
	var hit material.HitRecord
	if rect.Hit(core.NewRay(core.NewVec3(1.5, 0, 0.5), core.NewVec3(0, 1, 0)), 0.001, 100, &hit) {
		t.Error("Expected miss outside the rectangle")
	}
	if rect.Hit(core.NewRay(core.NewVec3(0.5, 0, 0.5), core.NewVec3(1, 0, 0)), 0.001, 100, &hit) {
		t.Error("Expected miss for a ray parallel to the rectangle")
	}
}

func TestAARect_PDF(t *testing.T) {
	rect := NewXZRect(-0.5, 0.5, -0.5, 0.5, 10, gray())
	origin := core.NewVec3(0, 0, 0)

	if got := rect.PDFValue(origin, core.NewVec3(0, 1, 0)); math.Abs(got-100) > 1e-9 {
		t.Errorf("Expected pdf 100 straight at a unit rect 10 away, got %f", got)
	}
	if got := rect.PDFValue(origin, core.NewVec3(1, 0, 0)); got != 0 {
		t.Errorf("Expected pdf 0 for a direction missing the rect, got %f", got)
	}
}

func TestAARect_PDFIntegratesToOne(t *testing.T) {
	rect := NewXZRect(-1, 1, -1, 1, 1, gray())
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewSeededSampler(13)

	const n = 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += rect.PDFValue(origin, core.SampleOnUnitSphere(sampler.Get2D()))
	}
	integral := 4 * math.Pi * sum / n
	if math.Abs(integral-1) > 0.1 {
		t.Errorf("Expected PDF to integrate to 1, got %f", integral)
	}
}
