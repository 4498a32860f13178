package geometry

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// HittableList is an unordered group of objects. Objects are shared, not
// copied, so the same shape can sit in the world and in a light list.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list of the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.Objects {
		if object.Hit(ray, tMin, closestSoFar, hit) {
			hitAnything = true
			closestSoFar = hit.T
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all object boxes; ok is false if the
// list is empty or any object is unbounded
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, object := range l.Objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = result.Union(box)
		}
	}
	return result, true
}

// PDFValue returns the unweighted average of the objects' densities
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// Random samples a direction toward an object chosen uniformly
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	return l.Objects[pickIndex(sampler, len(l.Objects))].Random(origin, sampler)
}

// pickIndex draws a uniform index in [0, n)
func pickIndex(sampler core.Sampler, n int) int {
	i := int(sampler.Get1D() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
