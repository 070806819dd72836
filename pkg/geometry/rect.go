package geometry

import (
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Axis-aligned rectangles. Each lies in a plane at offset K along its missing
// axis; the bounding boxes are padded by a small epsilon along that axis so
// they are never degenerate. All three implement core.Light via the standard
// solid-angle-to-area Jacobian: pdf = distance² / (|cosθ| · area).

const rectPad = 1e-4

// XYRect is a rectangle in the z = K plane
type XYRect struct {
	X0, X1   float64
	Y0, Y1   float64
	K        float64
	Material core.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests if a ray intersects the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t <= tMin || t > tMax || math.IsNaN(t) {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	hit := &core.HitRecord{
		Point:    ray.At(t),
		T:        t,
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (y - r.Y0) / (r.Y1 - r.Y0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return hit, true
}

// BoundingBox returns the epsilon-padded box of the rectangle
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectPad),
		core.NewVec3(r.X1, r.Y1, r.K+rectPad),
	), true
}

// PdfValue returns the area-to-solid-angle density of sampling direction
// from origin toward the rectangle
func (r *XYRect) PdfValue(origin, direction core.Vec3) float64 {
	return rectPdfValue(r, origin, direction, (r.X1-r.X0)*(r.Y1-r.Y0))
}

// RandomDirection draws a direction toward a uniform point on the rectangle
func (r *XYRect) RandomDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	point := core.NewVec3(
		r.X0+random.Float64()*(r.X1-r.X0),
		r.Y0+random.Float64()*(r.Y1-r.Y0),
		r.K,
	)
	return point.Subtract(origin)
}

// XZRect is a rectangle in the y = K plane
type XZRect struct {
	X0, X1   float64
	Z0, Z1   float64
	K        float64
	Material core.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t <= tMin || t > tMax || math.IsNaN(t) {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hit := &core.HitRecord{
		Point:    ray.At(t),
		T:        t,
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return hit, true
}

// BoundingBox returns the epsilon-padded box of the rectangle
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectPad, r.Z0),
		core.NewVec3(r.X1, r.K+rectPad, r.Z1),
	), true
}

// PdfValue returns the area-to-solid-angle density of sampling direction
// from origin toward the rectangle
func (r *XZRect) PdfValue(origin, direction core.Vec3) float64 {
	return rectPdfValue(r, origin, direction, (r.X1-r.X0)*(r.Z1-r.Z0))
}

// RandomDirection draws a direction toward a uniform point on the rectangle
func (r *XZRect) RandomDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	point := core.NewVec3(
		r.X0+random.Float64()*(r.X1-r.X0),
		r.K,
		r.Z0+random.Float64()*(r.Z1-r.Z0),
	)
	return point.Subtract(origin)
}

// YZRect is a rectangle in the x = K plane
type YZRect struct {
	Y0, Y1   float64
	Z0, Z1   float64
	K        float64
	Material core.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t <= tMin || t > tMax || math.IsNaN(t) {
		return nil, false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hit := &core.HitRecord{
		Point:    ray.At(t),
		T:        t,
		U:        (y - r.Y0) / (r.Y1 - r.Y0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return hit, true
}

// BoundingBox returns the epsilon-padded box of the rectangle
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectPad, r.Y0, r.Z0),
		core.NewVec3(r.K+rectPad, r.Y1, r.Z1),
	), true
}

// PdfValue returns the area-to-solid-angle density of sampling direction
// from origin toward the rectangle
func (r *YZRect) PdfValue(origin, direction core.Vec3) float64 {
	return rectPdfValue(r, origin, direction, (r.Y1-r.Y0)*(r.Z1-r.Z0))
}

// RandomDirection draws a direction toward a uniform point on the rectangle
func (r *YZRect) RandomDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	point := core.NewVec3(
		r.K,
		r.Y0+random.Float64()*(r.Y1-r.Y0),
		r.Z0+random.Float64()*(r.Z1-r.Z0),
	)
	return point.Subtract(origin)
}

// rectPdfValue converts the rectangle's area density to a solid-angle
// density along the given sampling direction
func rectPdfValue(rect core.Hittable, origin, direction core.Vec3, area float64) float64 {
	hit, isHit := rect.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !isHit {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal) / direction.Length())
	if cosine == 0 {
		return 0
	}
	return distanceSquared / (cosine * area)
}
