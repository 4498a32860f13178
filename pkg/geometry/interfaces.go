// Package geometry provides the primitives a scene is built from, the
// transforms that place them and the BVH that accelerates ray queries.
package geometry

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// Hittable is anything a ray can intersect. Shapes that can be sampled as
// lights implement PDFValue and Random; the rest embed noLightSampling.
type Hittable interface {
	// Hit fills hit and returns true if the ray intersects within [tMin, tMax].
	// hit is left untouched on a miss.
	Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool
	// BoundingBox returns the box enclosing the object over [time0, time1].
	// ok is false for objects without a finite bound.
	BoundingBox(time0, time1 float64) (box core.AABB, ok bool)
	// PDFValue returns the solid-angle density of sampling direction from origin
	PDFValue(origin, direction core.Vec3) float64
	// Random returns a direction from origin toward a random point on the object
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// noLightSampling is embedded by objects that are never used as lights
type noLightSampling struct{}

func (noLightSampling) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

func (noLightSampling) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// shadowEpsilon offsets secondary ray origins off the surface they leave
const shadowEpsilon = 0.001

// areaPDF converts sampling uniformly over a surface of the given area
// into solid-angle density for a ray that hit that surface
func areaPDF(direction core.Vec3, hit material.HitRecord, area float64) float64 {
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine == 0 || area == 0 {
		return 0
	}
	return distanceSquared / (cosine * area)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
