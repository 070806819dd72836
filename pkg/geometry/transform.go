package geometry

import (
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Transform places an inner hittable in the world through a general affine
// matrix. Rays are transformed fully into object space for the query; the
// hit point is mapped back with the forward matrix and the normal with the
// transposed adjoint of the forward matrix, which stays correct under
// non-uniform scale and shear.
type Transform struct {
	Inner         core.Hittable
	objectToWorld core.Mat4
	worldToObject core.Mat4
	normalToWorld core.Mat4
}

// NewTransform wraps a hittable with an object-to-world matrix
func NewTransform(objectToWorld core.Mat4, inner core.Hittable) *Transform {
	worldToObject := objectToWorld.Inverse()

	return &Transform{
		Inner:         inner,
		objectToWorld: objectToWorld,
		worldToObject: worldToObject,
		normalToWorld: objectToWorld.Adjoint().Transpose(),
	}
}

// Hit tests if a ray intersects the transformed object
func (t *Transform) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	objectRay := t.worldToObject.TransformRay(ray)

	hit, isHit := t.Inner.Hit(objectRay, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hit.Point = t.objectToWorld.TransformPoint(hit.Point)
	hit.Normal = t.normalToWorld.TransformVector(hit.Normal).Normalize()
	return hit, true
}

// BoundingBox returns a conservative world-space bound of the inner box
func (t *Transform) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.TransformAABB(t.objectToWorld, box), true
}

// PdfValue forwards to the inner object when it can be light-sampled
func (t *Transform) PdfValue(origin, direction core.Vec3) float64 {
	if light, ok := t.Inner.(core.Light); ok {
		return light.PdfValue(
			t.worldToObject.TransformPoint(origin),
			t.worldToObject.TransformVector(direction),
		)
	}
	return 0
}

// RandomDirection forwards to the inner object when it can be light-sampled
func (t *Transform) RandomDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if light, ok := t.Inner.(core.Light); ok {
		objectDir := light.RandomDirection(t.worldToObject.TransformPoint(origin), random)
		return t.objectToWorld.TransformVector(objectDir)
	}
	return core.NewVec3(1, 0, 0)
}
