package geometry

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// Translate moves an object by Offset. Light sampling is forwarded to the
// object in its own space, so translated shapes can still be lights.
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object with a translation
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space and the hit back out
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	if !t.Object.Hit(moved, tMin, tMax, hit) {
		return false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return true
}

// BoundingBox returns the object's box shifted by Offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// PDFValue evaluates the object's density from the origin in object space
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return t.Object.PDFValue(origin.Subtract(t.Offset), direction)
}

// Random samples the object from the origin in object space
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return t.Object.Random(origin.Subtract(t.Offset), sampler)
}

// RotateY rotates an object about the Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps object with a rotation of angle degrees about +Y
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	return &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toObject rotates a world-space vector into object space
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X-r.sinTheta*v.Z, v.Y, r.sinTheta*v.X+r.cosTheta*v.Z)
}

// toWorld rotates an object-space vector into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X+r.sinTheta*v.Z, v.Y, -r.sinTheta*v.X+r.cosTheta*v.Z)
}

// Hit rotates the ray into object space and the hit back out
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	rotated := core.NewRayAt(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)
	if !r.Object.Hit(rotated, tMin, tMax, hit) {
		return false
	}
	hit.Point = r.toWorld(hit.Point)
	// The rotation preserves which side the ray is on, so FrontFace stays valid
	hit.Normal = r.toWorld(hit.Normal)
	return true
}

// BoundingBox returns the box enclosing all eight rotated corners of the object's box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(i, box.Min.X, box.Max.X),
					pick(j, box.Min.Y, box.Max.Y),
					pick(k, box.Min.Z, box.Max.Z),
				)
				corners = append(corners, r.toWorld(corner))
			}
		}
	}
	return core.NewAABBFromPoints(corners...), true
}

func pick(i int, a, b float64) float64 {
	if i == 0 {
		return a
	}
	return b
}

// PDFValue evaluates the object's density in object space
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return r.Object.PDFValue(r.toObject(origin), r.toObject(direction))
}

// Random samples the object in object space and rotates the direction out
func (r *RotateY) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.toWorld(r.Object.Random(r.toObject(origin), sampler))
}

// FlipFace reverses which side of an object counts as its front face,
// e.g. to make a ceiling light emit downward
type FlipFace struct {
	Object Hittable
}

// NewFlipFace wraps object, flipping its front face
func NewFlipFace(object Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit inverts the front-face flag of the object's hit
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if !f.Object.Hit(ray, tMin, tMax, hit) {
		return false
	}
	hit.FrontFace = !hit.FrontFace
	return true
}

// BoundingBox returns the object's box
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}

// PDFValue forwards to the object
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	return f.Object.PDFValue(origin, direction)
}

// Random forwards to the object
func (f *FlipFace) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return f.Object.Random(origin, sampler)
}
