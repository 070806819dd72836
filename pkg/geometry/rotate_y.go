package geometry

import (
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// RotateY rotates an inner hittable around the Y axis. The bounding box is
// recomputed exactly from the eight rotated corners of the inner box at
// construction time.
type RotateY struct {
	Inner    core.Hittable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps a hittable with a rotation of angle degrees around Y
func NewRotateY(inner core.Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	sinTheta, cosTheta := math.Sincos(radians)

	innerBox, hasBox := inner.BoundingBox(0, 1)

	box := core.EmptyAABB()
	if hasBox {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				for k := 0; k < 2; k++ {
					x := float64(i)*innerBox.Max.X + float64(1-i)*innerBox.Min.X
					y := float64(j)*innerBox.Max.Y + float64(1-j)*innerBox.Min.Y
					z := float64(k)*innerBox.Max.Z + float64(1-k)*innerBox.Min.Z

					rotated := core.NewVec3(
						cosTheta*x+sinTheta*z,
						y,
						-sinTheta*x+cosTheta*z,
					)
					box = box.AddPoint(rotated)
				}
			}
		}
	}

	return &RotateY{
		Inner:    inner,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		box:      box,
		hasBox:   hasBox,
	}
}

// Hit tests if a ray intersects the rotated object
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	origin := ray.Origin
	direction := ray.Direction

	origin.X = r.cosTheta*ray.Origin.X - r.sinTheta*ray.Origin.Z
	origin.Z = r.sinTheta*ray.Origin.X + r.cosTheta*ray.Origin.Z

	direction.X = r.cosTheta*ray.Direction.X - r.sinTheta*ray.Direction.Z
	direction.Z = r.sinTheta*ray.Direction.X + r.cosTheta*ray.Direction.Z

	rotated := core.NewRayAt(origin, direction, ray.Time)

	hit, isHit := r.Inner.Hit(rotated, tMin, tMax)
	if !isHit {
		return nil, false
	}

	point := hit.Point
	normal := hit.Normal

	point.X = r.cosTheta*hit.Point.X + r.sinTheta*hit.Point.Z
	point.Z = -r.sinTheta*hit.Point.X + r.cosTheta*hit.Point.Z

	normal.X = r.cosTheta*hit.Normal.X + r.sinTheta*hit.Normal.Z
	normal.Z = -r.sinTheta*hit.Normal.X + r.cosTheta*hit.Normal.Z

	hit.Point = point
	hit.Normal = normal
	return hit, true
}

// BoundingBox returns the precomputed rotated box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

// PdfValue forwards to the inner object when it can be light-sampled
func (r *RotateY) PdfValue(origin, direction core.Vec3) float64 {
	if light, ok := r.Inner.(core.Light); ok {
		return light.PdfValue(origin, direction)
	}
	return 0
}

// RandomDirection forwards to the inner object when it can be light-sampled
func (r *RotateY) RandomDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if light, ok := r.Inner.(core.Light); ok {
		return light.RandomDirection(origin, random)
	}
	return core.NewVec3(1, 0, 0)
}
