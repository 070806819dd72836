package core

import "math/rand"

// HittableList is a flat collection of primitives queried linearly. It serves
// as the reference structure the BVH must agree with, and as the container
// for composite primitives built from a handful of parts.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates an empty list
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends a primitive to the list
func (hl *HittableList) Add(object Hittable) {
	hl.Objects = append(hl.Objects, object)
}

// Hit returns the nearest intersection across all primitives
func (hl *HittableList) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closest *HitRecord
	closestSoFar := tMax

	for _, object := range hl.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes, or false if the list is
// empty or any member is unbounded
func (hl *HittableList) BoundingBox(time0, time1 float64) (AABB, bool) {
	if len(hl.Objects) == 0 {
		return AABB{}, false
	}

	box := EmptyAABB()
	for _, object := range hl.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return AABB{}, false
		}
		box = box.Union(objectBox)
	}
	return box, true
}

// LightList aggregates the scene's light primitives for direct-light
// importance sampling: directions are drawn from a uniformly chosen member
// and the density is averaged over all members.
type LightList struct {
	Lights []Light
}

// NewLightList creates a light list from the given lights
func NewLightList(lights ...Light) *LightList {
	return &LightList{Lights: lights}
}

// Empty returns true if the list holds no lights
func (ll *LightList) Empty() bool {
	return len(ll.Lights) == 0
}

// Hit returns the nearest intersection across all lights
func (ll *LightList) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closest *HitRecord
	closestSoFar := tMax

	for _, light := range ll.Lights {
		if hit, isHit := light.Hit(ray, tMin, closestSoFar); isHit {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes
func (ll *LightList) BoundingBox(time0, time1 float64) (AABB, bool) {
	if len(ll.Lights) == 0 {
		return AABB{}, false
	}

	box := EmptyAABB()
	for _, light := range ll.Lights {
		lightBox, ok := light.BoundingBox(time0, time1)
		if !ok {
			return AABB{}, false
		}
		box = box.Union(lightBox)
	}
	return box, true
}

// PdfValue averages the member densities for the given direction
func (ll *LightList) PdfValue(origin, direction Vec3) float64 {
	if len(ll.Lights) == 0 {
		return 0
	}

	sum := 0.0
	for _, light := range ll.Lights {
		sum += light.PdfValue(origin, direction)
	}
	return sum / float64(len(ll.Lights))
}

// RandomDirection draws a direction toward a uniformly chosen member
func (ll *LightList) RandomDirection(origin Vec3, random *rand.Rand) Vec3 {
	light := ll.Lights[random.Intn(len(ll.Lights))]
	return light.RandomDirection(origin, random)
}
