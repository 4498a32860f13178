package geometry

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// Box is an axis-aligned box made of six rectangles. Place it with
// Translate and RotateY.
type Box struct {
	Min, Max core.Vec3
	faces    [6]*AARect
	sides    *HittableList
	area     float64
}

// NewBox creates a box spanning min to max with the same material on every face
func NewBox(min, max core.Vec3, mat material.Material) *Box {
	b := &Box{Min: min, Max: max}

	b.faces = [6]*AARect{
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat),
	}

	// The faces at the minimum of each axis point inward; flip them outward
	b.sides = NewHittableList()
	for i, face := range b.faces {
		if i%2 == 1 {
			b.sides.Add(NewFlipFace(face))
		} else {
			b.sides.Add(face)
		}
		b.area += face.Area()
	}
	return b
}

// Hit returns the closest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	return b.sides.Hit(ray, tMin, tMax, hit)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

// PDFValue returns the density of sampling a face with probability
// proportional to its area and a point uniformly on it. A direction that
// crosses two faces can be produced by sampling either, so both count.
func (b *Box) PDFValue(origin, direction core.Vec3) float64 {
	if b.area == 0 {
		return 0
	}
	sum := 0.0
	for _, face := range b.faces {
		sum += face.Area() / b.area * face.PDFValue(origin, direction)
	}
	return sum
}

// Random picks a face proportionally to its area and a point uniformly on it
func (b *Box) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	target := sampler.Get1D() * b.area
	for _, face := range b.faces {
		target -= face.Area()
		if target < 0 {
			return face.Random(origin, sampler)
		}
	}
	return b.faces[len(b.faces)-1].Random(origin, sampler)
}
