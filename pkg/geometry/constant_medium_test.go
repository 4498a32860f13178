package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

func TestConstantMedium(t *testing.T) {
	phase := material.NewIsotropic(core.NewVec3(1, 1, 1))
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, gray())

	t.Run("dense medium scatters at the boundary", func(t *testing.T) {
		medium := NewConstantMedium(boundary, 1e6, phase)
		var hit material.HitRecord
		if !medium.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0.001, 100, &hit) {
			t.Fatal("Expected a dense medium to scatter")
		}
		if math.Abs(hit.T-4) > 1e-3 {
			t.Errorf("Expected scattering just inside the boundary, got t=%f", hit.T)
		}
		if hit.Material != phase {
			t.Error("Expected the phase function as the hit material")
		}
	})

	t.Run("thin medium lets rays through", func(t *testing.T) {
		medium := NewConstantMedium(boundary, 1e-9, phase)
		var hit material.HitRecord
		if medium.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0.001, 100, &hit) {
			t.Errorf("Expected no scattering, got t=%f", hit.T)
		}
	})

	t.Run("ray starting inside", func(t *testing.T) {
		medium := NewConstantMedium(boundary, 1e6, phase)
		var hit material.HitRecord
		if !medium.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0.001, 100, &hit) {
			t.Fatal("Expected a dense medium to scatter")
		}
		if hit.T < 0.001 || hit.T > 0.01 {
			t.Errorf("Expected scattering near the origin, got t=%f", hit.T)
		}
	})

	t.Run("miss", func(t *testing.T) {
		medium := NewConstantMedium(boundary, 1e6, phase)
		var hit material.HitRecord
		if medium.Hit(core.NewRay(core.NewVec3(0, 5, -5), core.NewVec3(0, 0, 1)), 0.001, 100, &hit) {
			t.Error("Expected a ray missing the boundary to pass")
		}
	})

	t.Run("deterministic per ray", func(t *testing.T) {
		medium := NewConstantMedium(boundary, 0.5, phase)
		ray := core.NewRay(core.NewVec3(0.1, 0.2, -5), core.NewVec3(0, 0, 1))
		var a, b material.HitRecord
		hitA := medium.Hit(ray, 0.001, 100, &a)
		hitB := medium.Hit(ray, 0.001, 100, &b)
		if hitA != hitB || a.T != b.T {
			t.Error("Expected the same ray to scatter at the same distance")
		}
	})
}

// Two unit-density unit cubes in a row transmit exp(-2) of the rays that
// cross both, so each medium must draw its own free-flight distance
func TestConstantMedium_IndependentMedia(t *testing.T) {
	phase := material.NewIsotropic(core.NewVec3(1, 1, 1))
	first := NewConstantMedium(NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), gray()), 1, phase)
	second := NewConstantMedium(NewBox(core.NewVec3(2, 0, 0), core.NewVec3(3, 1, 1), gray()), 1, phase)
	world := NewHittableList(first, second)

	sampler := core.NewSeededSampler(21)
	const n = 20000
	passed := 0
	for i := 0; i < n; i++ {
		origin := core.NewVec3(-1, 0.1+0.8*sampler.Get1D(), 0.1+0.8*sampler.Get1D())
		var hit material.HitRecord
		if !world.Hit(core.NewRay(origin, core.NewVec3(1, 0, 0)), 0.001, math.Inf(1), &hit) {
			passed++
		}
	}

	want := math.Exp(-2)
	if got := float64(passed) / n; math.Abs(got-want) > 0.015 {
		t.Errorf("transmittance %f, want %f", got, want)
	}
}
