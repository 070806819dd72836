package core

import (
	"fmt"
	"math/rand"
	"sort"
)

// BVHNode is a binary bounding-volume-hierarchy node: an internal node owns
// exactly two children (which may alias the same primitive in the degenerate
// single-element case) plus the precomputed box bounding both. Built once,
// read-only afterward, so it is shared freely across worker threads.
type BVHNode struct {
	left  Hittable
	right Hittable
	box   AABB
}

// NewBVH builds a BVH over the given primitives for the [time0, time1]
// interval using recursive median splits along a per-node random axis.
// Every primitive must have a bounding box; handing the builder an unbounded
// primitive is a programmer error and panics.
func NewBVH(objects []Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	if len(objects) == 0 {
		panic("bvh: cannot build over an empty primitive list")
	}

	// Copy so the recursive sorts don't reorder the caller's slice
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, time0, time1, random)
}

func buildBVH(objects []Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)

	var left, right Hittable
	switch len(objects) {
	case 1:
		// Degenerate leaf pair: both children alias the single element,
		// which still yields the correct nearest hit on query
		left, right = objects[0], objects[0]
	case 2:
		left, right = objects[0], objects[1]
		if compareBoxMin(right, left, axis, time0, time1) {
			left, right = right, left
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return compareBoxMin(objects[i], objects[j], axis, time0, time1)
		})
		mid := len(objects) / 2
		left = buildBVH(objects[:mid], time0, time1, random)
		right = buildBVH(objects[mid:], time0, time1, random)
	}

	leftBox, leftOk := left.BoundingBox(time0, time1)
	rightBox, rightOk := right.BoundingBox(time0, time1)
	if !leftOk || !rightOk {
		panic("bvh: primitive without a bounding box handed to the builder")
	}

	return &BVHNode{
		left:  left,
		right: right,
		box:   leftBox.Union(rightBox),
	}
}

// compareBoxMin orders two primitives by their bounding-box minimum on the
// given axis
func compareBoxMin(a, b Hittable, axis int, time0, time1 float64) bool {
	boxA, okA := a.BoundingBox(time0, time1)
	boxB, okB := b.BoundingBox(time0, time1)
	if !okA || !okB {
		panic(fmt.Sprintf("bvh: primitive without a bounding box in axis-%d comparator", axis))
	}
	return boxA.Min.Axis(axis) < boxB.Min.Axis(axis)
}

// Hit queries the tree for the nearest intersection. A miss against this
// node's box prunes the whole subtree; otherwise the left child is queried
// first and the right child's tMax is tightened to the left hit so the right
// subtree is never searched beyond an intersection already found.
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	hitLeft, okLeft := n.left.Hit(ray, tMin, tMax)
	if okLeft {
		tMax = hitLeft.T
	}

	hitRight, okRight := n.right.Hit(ray, tMin, tMax)
	if okRight {
		return hitRight, true
	}
	return hitLeft, okLeft
}

// BoundingBox returns the precomputed box bounding both children
func (n *BVHNode) BoundingBox(time0, time1 float64) (AABB, bool) {
	return n.box, true
}
