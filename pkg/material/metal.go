package material

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// Metal represents a reflective material with optional fuzziness
type Metal struct {
	Albedo core.Vec3 // Color of the metal
	Fuzz   float64   // Fuzziness factor in [0, 1]; 0 is a perfect mirror
}

// NewMetal creates a new metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: clampFuzz(fuzz)}
}

// Scatter reflects the ray about the normal, perturbed by the fuzz.
// A perturbed ray that ends up below the surface is absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	scattered, ok := fuzzyReflect(rayIn, hit, m.Fuzz, sampler)
	if !ok {
		return ScatterRecord{}, false
	}
	return ScatterRecord{Specular: true, SpecularRay: scattered, Attenuation: m.Albedo}, true
}

// ScatteringPDF is zero: metal reflection is a delta distribution
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// fuzzyReflect offsets the mirror direction by a point drawn uniformly from
// a ball of radius fuzz
func fuzzyReflect(rayIn core.Ray, hit HitRecord, fuzz float64, sampler core.Sampler) (core.Ray, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if fuzz > 0 {
		reflected = reflected.Add(core.SampleOnUnitSphere(sampler.Get2D()).Multiply(fuzz * math.Cbrt(sampler.Get1D())))
	}
	if reflected.Dot(hit.Normal) <= 0 {
		return core.Ray{}, false
	}
	return core.NewRayAt(hit.Point, reflected, rayIn.Time), true
}

func clampFuzz(fuzz float64) float64 {
	return max(0, min(1, fuzz))
}
