package geometry

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
	area       float64           // Cached area
}

// NewTriangle creates a new triangle from three vertices. The front face
// is the side from which the vertices appear counter-clockwise.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		normal:   cross.Normalize(),
		area:     0.5 * cross.Length(),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return false
	}

	hit.T = tHit
	hit.Point = ray.At(tHit)
	hit.UV = core.NewVec2(u, v)
	hit.SetFaceNormal(ray, t.normal)
	hit.Material = t.Material
	return true
}

// BoundingBox returns the triangle's bounds, padded so axis-aligned triangles are not flat
func (t *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2).Expand(rectPadding), true
}

// Normal returns the triangle's front-face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// PDFValue returns the solid-angle density of uniform area sampling
func (t *Triangle) PDFValue(origin, direction core.Vec3) float64 {
	var rec material.HitRecord
	if !t.Hit(core.NewRay(origin, direction), shadowEpsilon, math.Inf(1), &rec) {
		return 0
	}
	return areaPDF(direction, rec, t.area)
}

// Random returns the direction from origin to a uniformly chosen point on the triangle
func (t *Triangle) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	su := math.Sqrt(s.X)
	b0 := 1 - su
	b1 := s.Y * su
	p := t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(1 - b0 - b1))
	return p.Subtract(origin)
}
