package geometry

import (
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Sphere is a static sphere. It implements core.Light so it can be placed in
// a scene's lights list and importance-sampled by solid angle.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// sphereUV maps a point on the unit sphere to (u,v):
// u is the angle around the Y axis from X=-1, v the angle from Y=-1 to Y=+1.
func sphereUV(p core.Vec3) (float64, float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// Hit tests if a ray intersects the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearest root in range, falling back to the farther one
	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	hit := &core.HitRecord{
		Point:    point,
		T:        root,
		U:        u,
		V:        v,
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}

// PdfValue returns the inverse solid angle subtended by the sphere as seen
// from origin, or 0 if the direction misses the sphere
func (s *Sphere) PdfValue(origin, direction core.Vec3) float64 {
	_, isHit := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !isHit {
		return 0
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/s.Center.Subtract(origin).LengthSquared())
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// RandomDirection draws a direction from origin uniform over the solid-angle
// cone subtended by the sphere
func (s *Sphere) RandomDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	direction := s.Center.Subtract(origin)
	uvw := core.NewOnb(direction)
	return uvw.Local(core.RandomToSphere(s.Radius, direction.LengthSquared(), random))
}
