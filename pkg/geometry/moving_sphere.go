package geometry

import (
	"math"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1, intersected at the querying ray's time for motion blur
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere sweeping between two centers over a time
// interval
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the interpolated center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests if a ray intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)
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

// BoundingBox returns a box containing the sphere at both ends of the time
// interval, conservative for the whole sweep
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	center0 := s.CenterAt(time0)
	center1 := s.CenterAt(time1)

	box0 := core.NewAABB(center0.Subtract(radius), center0.Add(radius))
	box1 := core.NewAABB(center1.Subtract(radius), center1.Add(radius))
	return box0.Union(box1), true
}
