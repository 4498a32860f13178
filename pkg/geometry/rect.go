package geometry

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// AARect is an axis-aligned rectangle in the plane where its normal axis
// equals K, spanning [A0, A1] on its first in-plane axis and [B0, B1] on
// the second. Its outward normal points along the positive normal axis.
type AARect struct {
	A0, A1, B0, B1, K float64
	Material          material.Material

	aAxis, bAxis, normalAxis int
}

// rects are padded this much along their normal so bounding boxes are never flat
const rectPadding = 0.0001

// NewXYRect creates a rectangle in the plane z = k facing +Z
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *AARect {
	return &AARect{A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat, aAxis: 0, bAxis: 1, normalAxis: 2}
}

// NewXZRect creates a rectangle in the plane y = k facing +Y
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *AARect {
	return &AARect{A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat, aAxis: 0, bAxis: 2, normalAxis: 1}
}

// NewYZRect creates a rectangle in the plane x = k facing +X
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *AARect {
	return &AARect{A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat, aAxis: 1, bAxis: 2, normalAxis: 0}
}

// Hit intersects the ray with the rectangle's plane and checks the bounds
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	dn := ray.Direction.Axis(r.normalAxis)
	if dn == 0 {
		return false
	}
	t := (r.K - ray.Origin.Axis(r.normalAxis)) / dn
	if t < tMin || t > tMax {
		return false
	}

	a := ray.Origin.Axis(r.aAxis) + t*ray.Direction.Axis(r.aAxis)
	b := ray.Origin.Axis(r.bAxis) + t*ray.Direction.Axis(r.bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return false
	}

	hit.T = t
	hit.Point = ray.At(t)
	hit.UV = core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0))
	hit.SetFaceNormal(ray, r.outwardNormal())
	hit.Material = r.Material
	return true
}

func (r *AARect) outwardNormal() core.Vec3 {
	return r.point(0, 0, 1)
}

// point assembles a vector from rectangle coordinates
func (r *AARect) point(a, b, n float64) core.Vec3 {
	var v [3]float64
	v[r.aAxis] = a
	v[r.bAxis] = b
	v[r.normalAxis] = n
	return core.NewVec3(v[0], v[1], v[2])
}

// BoundingBox returns the rectangle padded slightly along its normal
func (r *AARect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		r.point(r.A0, r.B0, r.K-rectPadding),
		r.point(r.A1, r.B1, r.K+rectPadding),
	), true
}

// Area returns the rectangle's area
func (r *AARect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue returns the solid-angle density of uniform area sampling
func (r *AARect) PDFValue(origin, direction core.Vec3) float64 {
	var rec material.HitRecord
	if !r.Hit(core.NewRay(origin, direction), shadowEpsilon, math.Inf(1), &rec) {
		return 0
	}
	return areaPDF(direction, rec, r.Area())
}

// Random returns the direction from origin to a uniformly chosen point on the rectangle
func (r *AARect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	p := r.point(r.A0+s.X*(r.A1-r.A0), r.B0+s.Y*(r.B1-r.B0), r.K)
	return p.Subtract(origin)
}
