package geometry

import (
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// ConstantMedium fills the boundary of an inner hittable with a uniform
// participating medium of the given density. A ray entering the boundary
// scatters after an exponentially distributed free-flight distance; if that
// distance exceeds the span inside the boundary the ray passes through.
// The phase function is typically an isotropic material.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium wraps a boundary with a medium of the given density and
// phase function material
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phaseFunction,
		negInvDensity: -1 / density,
	}
}

// Hit samples a scattering event inside the boundary. The free-flight
// distance is scaled by the ray direction's magnitude so unnormalized
// directions still yield the correct density.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	hit1, isHit := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !isHit {
		return nil, false
	}

	hit2, isHit := m.Boundary.Hit(ray, hit1.T+0.0001, math.Inf(1))
	if !isHit {
		return nil, false
	}

	t1 := math.Max(hit1.T, tMin)
	t2 := math.Min(hit2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(rand.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		T:         t,
		U:         hit1.U,
		V:         hit1.V,
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox forwards to the boundary
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
