package geometry

import (
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// FlipFace inverts the front_face flag of every hit on the inner object
// without touching the geometry. A one-sided emitter wrapped in FlipFace
// illuminates the scene from its opposite side.
type FlipFace struct {
	Inner core.Hittable
}

// NewFlipFace wraps a hittable with inverted face orientation
func NewFlipFace(inner core.Hittable) *FlipFace {
	return &FlipFace{Inner: inner}
}

// Hit forwards the query and flips the face orientation of the result
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	hit, isHit := f.Inner.Hit(ray, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox forwards to the inner object
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(time0, time1)
}

// PdfValue forwards to the inner object when it can be light-sampled
func (f *FlipFace) PdfValue(origin, direction core.Vec3) float64 {
	if light, ok := f.Inner.(core.Light); ok {
		return light.PdfValue(origin, direction)
	}
	return 0
}

// RandomDirection forwards to the inner object when it can be light-sampled
func (f *FlipFace) RandomDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if light, ok := f.Inner.(core.Light); ok {
		return light.RandomDirection(origin, random)
	}
	return core.NewVec3(1, 0, 0)
}
