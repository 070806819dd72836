package geometry

import (
	"math"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Plane is an unbounded plane through Origin with unit normal Normal. It has
// no bounding box and therefore must not be placed in a BVH; use it only in
// linear hittable lists.
type Plane struct {
	Origin   core.Vec3
	Normal   core.Vec3
	Material core.Material
}

// NewPlane creates an unbounded plane
func NewPlane(origin, normal core.Vec3, material core.Material) *Plane {
	return &Plane{Origin: origin, Normal: normal.Normalize(), Material: material}
}

// Hit tests if a ray intersects the plane; rays parallel to the plane miss
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t <= tMin || t > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		Point:    ray.At(t),
		T:        t,
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)
	return hit, true
}

// BoundingBox returns false: the plane is unbounded
func (p *Plane) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

// Disc is a flat circular disc centered at Center with the given unit normal
type Disc struct {
	Center   core.Vec3
	Normal   core.Vec3
	Radius   float64
	Material core.Material
}

// NewDisc creates a disc
func NewDisc(center, normal core.Vec3, radius float64, material core.Material) *Disc {
	return &Disc{Center: center, Normal: normal.Normalize(), Radius: radius, Material: material}
}

// Hit tests if a ray intersects the disc
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denom := ray.Direction.Dot(d.Normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := d.Center.Subtract(ray.Origin).Dot(d.Normal) / denom
	if t <= tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	if point.Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	hit := &core.HitRecord{
		Point:    point,
		T:        t,
		Material: d.Material,
	}
	hit.SetFaceNormal(ray, d.Normal)
	return hit, true
}

// BoundingBox returns a box containing the disc in any orientation
func (d *Disc) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(d.Radius, d.Radius, d.Radius)
	return core.NewAABB(d.Center.Subtract(radius), d.Center.Add(radius)), true
}
