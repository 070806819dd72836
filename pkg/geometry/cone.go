package geometry

import (
	"math"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Cone is a cone with its apex at (0,0,Height) and a circular base of the
// given radius in the z = 0 plane, optionally clipped to a partial sweep by
// PhiMax. Position it in a scene with a Transform decorator.
type Cone struct {
	Radius   float64
	Height   float64
	PhiMax   float64
	Material core.Material
}

// NewCone creates a cone clipped to the angular sweep [0, phiMax]
func NewCone(radius, height, phiMax float64, material core.Material) *Cone {
	return &Cone{Radius: radius, Height: height, PhiMax: phiMax, Material: material}
}

// NewUnitCone creates a full-sweep cone with radius 1 and height 1
func NewUnitCone(material core.Material) *Cone {
	return NewCone(1, 1, 2*math.Pi, material)
}

// Hit tests if a ray intersects the cone surface
func (cn *Cone) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	k := cn.Radius / cn.Height
	k = k * k

	ox, oy, oz := ray.Origin.X, ray.Origin.Y, ray.Origin.Z
	dx, dy, dz := ray.Direction.X, ray.Direction.Y, ray.Direction.Z

	a := dx*dx + dy*dy - k*dz*dz
	b := 2 * (dx*ox + dy*oy - k*dz*(oz-cn.Height))
	c := ox*ox + oy*oy - k*(oz-cn.Height)*(oz-cn.Height)

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
	phi := conePhi(point)

	// Reject hits outside the z/phi clip window, retrying the far root once
	if point.Z < 0 || point.Z > cn.Height || phi > cn.PhiMax {
		if tHit == t1 {
			return nil, false
		}

		tHit = t1
		if tHit > tMax {
			return nil, false
		}

		point = ray.At(tHit)
		phi = conePhi(point)
		if point.Z < 0 || point.Z > cn.Height || phi > cn.PhiMax {
			return nil, false
		}
	}

	u := phi / cn.PhiMax
	v := point.Z / cn.Height

	dpdu := core.NewVec3(-cn.PhiMax*point.Y, cn.PhiMax*point.X, 0)
	dpdv := core.NewVec3(-point.X/(1-v), -point.Y/(1-v), cn.Height)

	hit := &core.HitRecord{
		Point:    point,
		T:        tHit,
		U:        u,
		V:        v,
		Material: cn.Material,
	}
	hit.SetFaceNormal(ray, dpdu.Cross(dpdv).Normalize())
	return hit, true
}

// BoundingBox returns the box enclosing the full cone sweep
func (cn *Cone) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(-cn.Radius, -cn.Radius, 0),
		core.NewVec3(cn.Radius, cn.Radius, cn.Height),
	), true
}

// conePhi returns the azimuthal angle of a surface point in [0, 2π)
func conePhi(p core.Vec3) float64 {
	phi := math.Atan2(p.Y, p.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi
}
