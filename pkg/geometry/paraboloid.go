package geometry

import (
	"math"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Paraboloid is a paraboloid of revolution around the Z axis opening toward
// +Z, reaching the given radius at z = ZMax and clipped to [ZMin, ZMax] and
// the angular sweep [0, PhiMax]
type Paraboloid struct {
	Radius   float64
	ZMin     float64
	ZMax     float64
	PhiMax   float64
	Material core.Material
}

// NewParaboloid creates a paraboloid clipped to [zMin,zMax] and [0, phiMax]
func NewParaboloid(radius, zMin, zMax, phiMax float64, material core.Material) *Paraboloid {
	return &Paraboloid{
		Radius:   radius,
		ZMin:     math.Min(zMin, zMax),
		ZMax:     math.Max(zMin, zMax),
		PhiMax:   phiMax,
		Material: material,
	}
}

// NewUnitParaboloid creates a full-sweep paraboloid with radius 1 spanning
// z in [-0.5, 0.5]
func NewUnitParaboloid(material core.Material) *Paraboloid {
	return NewParaboloid(1, -0.5, 0.5, 2*math.Pi, material)
}

// Hit tests if a ray intersects the paraboloid surface
func (pb *Paraboloid) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	ox, oy, oz := ray.Origin.X, ray.Origin.Y, ray.Origin.Z
	dx, dy, dz := ray.Direction.X, ray.Direction.Y, ray.Direction.Z

	k := pb.ZMax / (pb.Radius * pb.Radius)

	a := k * (dx*dx + dy*dy)
	b := 2*k*(dx*ox+dy*oy) - dz
	c := k*(ox*ox+oy*oy) - oz

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
	if point.Z < pb.ZMin || point.Z > pb.ZMax || phi > pb.PhiMax {
		if tHit == t1 {
			return nil, false
		}

		tHit = t1
		if tHit > tMax {
			return nil, false
		}

		point = ray.At(tHit)
		phi = conePhi(point)
		if point.Z < pb.ZMin || point.Z > pb.ZMax || phi > pb.PhiMax {
			return nil, false
		}
	}

	u := phi / pb.PhiMax
	v := (point.Z - pb.ZMin) / (pb.ZMax - pb.ZMin)

	dpdu := core.NewVec3(-pb.PhiMax*point.Y, pb.PhiMax*point.X, 0)
	dpdv := core.NewVec3(
		point.X/(2*point.Z),
		point.Y/(2*point.Z),
		1,
	).Multiply(pb.ZMax - pb.ZMin)

	hit := &core.HitRecord{
		Point:    point,
		T:        tHit,
		U:        u,
		V:        v,
		Material: pb.Material,
	}
	hit.SetFaceNormal(ray, dpdu.Cross(dpdv).Normalize())
	return hit, true
}

// BoundingBox returns the box enclosing the full paraboloid sweep
func (pb *Paraboloid) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(-pb.Radius, -pb.Radius, pb.ZMin),
		core.NewVec3(pb.Radius, pb.Radius, pb.ZMax),
	), true
}
