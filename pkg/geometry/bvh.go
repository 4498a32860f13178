package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// BVHNode is a node of a bounding volume hierarchy. Children are either
// other nodes or the primitives themselves; a node built from a single
// primitive holds it on both sides.
type BVHNode struct {
	noLightSampling
	Box   core.AABB
	Left  Hittable
	Right Hittable
}

// NewBVH builds a hierarchy over objects for rays in [time0, time1].
// Each level splits at the median along an axis drawn from sampler.
// Building panics if objects is empty or any object has no bounding box:
// such a scene cannot be rendered.
func NewBVH(objects []Hittable, time0, time1 float64, sampler core.Sampler) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: BVH built from an empty object list")
	}

	// Work on a copy; the caller's slice is shared with the light list
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	b := &bvhBuilder{time0: time0, time1: time1, sampler: sampler}
	return b.build(objectsCopy)
}

type bvhBuilder struct {
	time0, time1 float64
	sampler      core.Sampler
}

func (b *bvhBuilder) box(object Hittable) core.AABB {
	box, ok := object.BoundingBox(b.time0, b.time1)
	if !ok {
		panic(fmt.Sprintf("geometry: %T has no bounding box", object))
	}
	return box
}

func (b *bvhBuilder) build(objects []Hittable) *BVHNode {
	node := &BVHNode{}
	axis := pickIndex(b.sampler, 3)
	less := func(x, y Hittable) bool {
		return b.box(x).Min.Axis(axis) < b.box(y).Min.Axis(axis)
	}

	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
	case 2:
		if less(objects[0], objects[1]) {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sort.SliceStable(objects, func(i, j int) bool { return less(objects[i], objects[j]) })
		mid := len(objects) / 2
		node.Left = b.build(objects[:mid])
		node.Right = b.build(objects[mid:])
	}

	node.Box = b.box(node.Left).Union(b.box(node.Right))
	return node
}

// Hit tests the left subtree, then the right subtree up to the left hit,
// so the closer of the two wins
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if !n.Box.Hit(ray, tMin, tMax) {
		return false
	}

	hitLeft := n.Left.Hit(ray, tMin, tMax, hit)
	if hitLeft {
		tMax = hit.T
	}
	hitRight := n.Right.Hit(ray, tMin, tMax, hit)

	return hitLeft || hitRight
}

// BoundingBox returns the box computed at build time
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}
