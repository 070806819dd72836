package geometry

import (
	"math"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Hyperboloid is the quadric surface of revolution swept by rotating the line
// segment between P1 and P2 around the Z axis, clipped to [0, PhiMax]
type Hyperboloid struct {
	P1, P2   core.Vec3
	ZMin     float64
	ZMax     float64
	PhiMax   float64
	RMax     float64
	Material core.Material

	ah, ch float64
}

// NewHyperboloid creates a hyperboloid sweeping the segment p1-p2 around the
// Z axis
func NewHyperboloid(p1, p2 core.Vec3, phiMax float64, material core.Material) *Hyperboloid {
	radius1 := math.Sqrt(p1.X*p1.X + p1.Y*p1.Y)
	radius2 := math.Sqrt(p2.X*p2.X + p2.Y*p2.Y)
	rMax := math.Max(radius1, radius2)
	zMin := math.Min(p1.Z, p2.Z)
	zMax := math.Max(p1.Z, p2.Z)

	if p2.Z == 0 {
		p1, p2 = p2, p1
	}

	// Walk along the segment until the implicit coefficients become finite
	pp := p1
	var ah, ch float64
	for {
		pp = pp.Add(p2.Subtract(p1).Multiply(2))
		xy1 := pp.X*pp.X + pp.Y*pp.Y
		xy2 := p2.X*p2.X + p2.Y*p2.Y

		ah = (1/xy1 - (pp.Z*pp.Z)/(xy1*p2.Z*p2.Z)) /
			(1 - (xy2*pp.Z*pp.Z)/(xy1*p2.Z*p2.Z))
		ch = (ah*xy2 - 1) / (p2.Z * p2.Z)

		if !math.IsInf(ah, 0) && !math.IsNaN(ah) {
			break
		}
	}

	return &Hyperboloid{
		P1:       p1,
		P2:       p2,
		ZMin:     zMin,
		ZMax:     zMax,
		PhiMax:   phiMax,
		RMax:     rMax,
		Material: material,
		ah:       ah,
		ch:       ch,
	}
}

// Hit tests if a ray intersects the hyperboloid surface
func (h *Hyperboloid) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	ox, oy, oz := ray.Origin.X, ray.Origin.Y, ray.Origin.Z
	dx, dy, dz := ray.Direction.X, ray.Direction.Y, ray.Direction.Z

	a := h.ah*dx*dx + h.ah*dy*dy - h.ch*dz*dz
	b := 2 * (h.ah*dx*ox + h.ah*dy*oy - h.ch*dz*oz)
	c := h.ah*ox*ox + h.ah*oy*oy - h.ch*oz*oz - 1

	var roots [2]float64
	if core.SolveQuadratic(a, b, c, &roots) == 0 {
		return nil, false
	}

	t0, t1 := roots[0], roots[1]
	if t0 > tMax || t1 <= tMin {
		return nil, false
	}

	tHit := t0
	if tHit <= tMin {
		tHit = t1
	}
	if tHit > tMax {
		return nil, false
	}

	point := ray.At(tHit)
	v, phi := h.inverseMapping(point)

	// Reject hits outside the z/phi clip window, retrying the far root once
	if point.Z < h.ZMin || point.Z > h.ZMax || phi > h.PhiMax {
		if tHit == t1 {
			return nil, false
		}

		tHit = t1
		if tHit > tMax {
			return nil, false
		}

		point = ray.At(tHit)
		v, phi = h.inverseMapping(point)
		if point.Z < h.ZMin || point.Z > h.ZMax || phi > h.PhiMax {
			return nil, false
		}
	}

	u := phi / h.PhiMax

	sinPhi, cosPhi := math.Sincos(phi)
	dpdu := core.NewVec3(-h.PhiMax*point.Y, h.PhiMax*point.X, 0)
	dpdv := core.NewVec3(
		(h.P2.X-h.P1.X)*cosPhi-(h.P2.Y-h.P1.Y)*sinPhi,
		(h.P2.X-h.P1.X)*sinPhi+(h.P2.Y-h.P1.Y)*cosPhi,
		h.P2.Z-h.P1.Z,
	)

	hit := &core.HitRecord{
		Point:    point,
		T:        tHit,
		U:        u,
		V:        v,
		Material: h.Material,
	}
	hit.SetFaceNormal(ray, dpdu.Cross(dpdv).Normalize())
	return hit, true
}

// BoundingBox returns the box enclosing the full hyperboloid sweep
func (h *Hyperboloid) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(-h.RMax, -h.RMax, h.ZMin),
		core.NewVec3(h.RMax, h.RMax, h.ZMax),
	), true
}

// inverseMapping recovers the (v, phi) parameters of a surface point
func (h *Hyperboloid) inverseMapping(point core.Vec3) (float64, float64) {
	v := (point.Z - h.P1.Z) / (h.P2.Z - h.P1.Z)
	pr := h.P1.Multiply(1 - v).Add(h.P2.Multiply(v))
	phi := math.Atan2(pr.X*point.Y-point.X*pr.Y, point.X*pr.X+point.Y*pr.Y)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return v, phi
}
