package geometry

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium filling a convex
// boundary, such as smoke or fog. Rays scatter inside it at an
// exponentially distributed distance.
type ConstantMedium struct {
	noLightSampling
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
	salt          uint64
}

// NewConstantMedium fills boundary with a medium of the given density.
// phase is usually an Isotropic material. The free-flight draw is salted
// with the boundary's box, so media occupying different regions scatter
// independently along a shared ray.
func NewConstantMedium(boundary Hittable, density float64, phase material.Material) *ConstantMedium {
	var salt uint64
	if box, ok := boundary.BoundingBox(0, 1); ok {
		salt = core.HashSalt(density,
			box.Min.X, box.Min.Y, box.Min.Z,
			box.Max.X, box.Max.Y, box.Max.Z)
	} else {
		salt = core.HashSalt(density)
	}
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phase,
		negInvDensity: -1 / density,
		salt:          salt,
	}
}

// Hit finds where the ray enters and leaves the boundary and scatters
// somewhere in between with probability given by the density
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	var rec1, rec2 material.HitRecord
	if !m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), &rec1) {
		return false
	}
	if !m.Boundary.Hit(ray, rec1.T+0.0001, math.Inf(1), &rec2) {
		return false
	}

	t1 := max(rec1.T, tMin)
	t2 := min(rec2.T, tMax)
	if t1 >= t2 {
		return false
	}
	t1 = max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(1-core.HashFloat64(ray, m.salt))
	if hitDistance > distanceInside {
		return false
	}

	hit.T = t1 + hitDistance/rayLength
	hit.Point = ray.At(hit.T)
	hit.Normal = core.NewVec3(1, 0, 0) // arbitrary
	hit.FrontFace = true
	hit.UV = core.Vec2{}
	hit.Material = m.PhaseFunction
	return true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
