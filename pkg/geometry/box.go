package geometry

import (
	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Box is an axis-aligned box assembled from six axis-aligned rectangles
type Box struct {
	boxMin, boxMax core.Vec3
	sides          *core.HittableList
}

// NewBox creates a box spanning the two opposite corners p0 and p1
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	sides := core.NewHittableList()

	sides.Add(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material))
	sides.Add(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material))
	sides.Add(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material))
	sides.Add(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material))
	sides.Add(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material))
	sides.Add(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material))

	return &Box{boxMin: p0, boxMax: p1, sides: sides}
}

// Hit tests the ray against all six faces and returns the nearest hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the exact box extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.boxMin, b.boxMax), true
}
