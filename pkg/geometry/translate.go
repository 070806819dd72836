package geometry

import (
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Translate shifts an inner hittable by a fixed offset. The ray is moved into
// the inner object's frame for the query and the hit point moved back out.
type Translate struct {
	Inner  core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps a hittable with a translation
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit tests if a ray intersects the translated object
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, isHit := tr.Inner.Hit(moved, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(tr.Offset), box.Max.Add(tr.Offset)), true
}

// PdfValue forwards to the inner object when it can be light-sampled
func (tr *Translate) PdfValue(origin, direction core.Vec3) float64 {
	if light, ok := tr.Inner.(core.Light); ok {
		return light.PdfValue(origin.Subtract(tr.Offset), direction)
	}
	return 0
}

// RandomDirection forwards to the inner object when it can be light-sampled
func (tr *Translate) RandomDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if light, ok := tr.Inner.(core.Light); ok {
		return light.RandomDirection(origin.Subtract(tr.Offset), random)
	}
	return core.NewVec3(1, 0, 0)
}
