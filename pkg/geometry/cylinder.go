package geometry

import (
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Cylinder is an open cylinder around the Z axis between ZMin and ZMax,
// optionally clipped to a partial sweep by PhiMax. It implements core.Light
// so an emissive cylinder can be importance-sampled.
type Cylinder struct {
	Radius   float64
	ZMin     float64
	ZMax     float64
	PhiMax   float64
	Material core.Material

	box core.AABB
}

// NewCylinder creates a cylinder spanning [z0,z1] clipped to [0, phiMax]
func NewCylinder(radius, z0, z1, phiMax float64, material core.Material) *Cylinder {
	zMin := math.Min(z0, z1)
	zMax := math.Max(z0, z1)

	return &Cylinder{
		Radius:   radius,
		ZMin:     zMin,
		ZMax:     zMax,
		PhiMax:   phiMax,
		Material: material,
		box: core.NewAABB(
			core.NewVec3(-radius, -radius, zMin),
			core.NewVec3(radius, radius, zMax),
		),
	}
}

// NewUnitCylinder creates a full-sweep cylinder with radius 1 spanning
// z in [-0.5, 0.5]
func NewUnitCylinder(material core.Material) *Cylinder {
	return NewCylinder(1, -0.5, 0.5, 2*math.Pi, material)
}

// Area returns the lateral surface area of the clipped cylinder
func (cy *Cylinder) Area() float64 {
	return (cy.ZMax - cy.ZMin) * cy.Radius * cy.PhiMax
}

// Hit tests if a ray intersects the cylinder surface
func (cy *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	ox, oy := ray.Origin.X, ray.Origin.Y
	dx, dy := ray.Direction.X, ray.Direction.Y

	a := dx*dx + dy*dy
	b := 2 * (dx*ox + dy*oy)
	c := ox*ox + oy*oy - cy.Radius*cy.Radius

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
	if point.Z < cy.ZMin || point.Z > cy.ZMax || phi > cy.PhiMax {
		if tHit == t1 {
			return nil, false
		}

		tHit = t1
		if tHit > tMax {
			return nil, false
		}

		point = ray.At(tHit)
		phi = conePhi(point)
		if point.Z < cy.ZMin || point.Z > cy.ZMax || phi > cy.PhiMax {
			return nil, false
		}
	}

	u := phi / cy.PhiMax
	v := (point.Z - cy.ZMin) / (cy.ZMax - cy.ZMin)

	dpdu := core.NewVec3(-cy.PhiMax*point.Y, cy.PhiMax*point.X, 0)
	dpdv := core.NewVec3(0, 0, cy.ZMax-cy.ZMin)

	hit := &core.HitRecord{
		Point:    point,
		T:        tHit,
		U:        u,
		V:        v,
		Material: cy.Material,
	}
	hit.SetFaceNormal(ray, dpdu.Cross(dpdv).Normalize())
	return hit, true
}

// BoundingBox returns the box enclosing the full cylinder sweep
func (cy *Cylinder) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return cy.box, true
}

// PdfValue returns the area-to-solid-angle density of sampling direction
// from origin toward the cylinder surface
func (cy *Cylinder) PdfValue(origin, direction core.Vec3) float64 {
	hit, isHit := cy.Hit(core.NewRay(origin, direction), 0.0001, math.Inf(1))
	if !isHit {
		return 0
	}

	cosine := math.Abs(hit.Normal.Dot(direction.Negate()))
	if cosine == 0 {
		return 0
	}

	pdf := (1 / cy.Area()) / (cosine / origin.Subtract(hit.Point).LengthSquared())
	if math.IsInf(pdf, 0) {
		return 0
	}
	return pdf
}

// RandomDirection draws a direction from origin toward the cylinder's
// bounding sphere
func (cy *Cylinder) RandomDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	direction := cy.box.Center().Subtract(origin)
	uvw := core.NewOnb(direction)
	return uvw.Local(core.RandomToSphere(cy.Radius, direction.LengthSquared(), random))
}
