package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the degenerate box with min = +Inf and max = -Inf per
// axis, so that Union with any real box yields that box unchanged.
func EmptyAABB() AABB {
	return AABB{
		Min: NewVec3(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// Hit tests if a ray intersects this AABB within [tMin, tMax] using the slab
// method. Zero direction components are not special-cased: the reciprocal is
// ±Inf and IEEE-754 min/max arithmetic resolves the slab interval correctly.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (aabb.Min.Axis(axis) - origin) * invD
		t1 := (aabb.Max.Axis(axis) - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(t0, tMin)
		tMax = math.Min(t1, tMax)

		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// AddPoint returns an AABB grown to contain the given point
func (aabb AABB) AddPoint(p Vec3) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, p.X),
			Y: math.Min(aabb.Min.Y, p.Y),
			Z: math.Min(aabb.Min.Z, p.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, p.X),
			Y: math.Max(aabb.Max.Y, p.Y),
			Z: math.Max(aabb.Max.Z, p.Z),
		},
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// IsValid returns true if min <= max on every axis
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// TransformAABB returns a conservative axis-aligned bound of the box under an
// affine matrix. The three axis-extent vectors are transformed by the linear
// part of the matrix and the per-axis min/max of the two extremes is taken,
// then the transformed translation is added. This avoids enumerating all 8
// corners at the cost of a generally looser box.
func TransformAABB(m Mat4, box AABB) AABB {
	translation := NewVec3(m[0][3], m[1][3], m[2][3])
	min := translation
	max := translation

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			a := m[row][col] * box.Min.Axis(col)
			b := m[row][col] * box.Max.Axis(col)
			lo, hi := math.Min(a, b), math.Max(a, b)
			switch row {
			case 0:
				min.X += lo
				max.X += hi
			case 1:
				min.Y += lo
				max.Y += hi
			case 2:
				min.Z += lo
				max.Z += hi
			}
		}
	}

	return AABB{Min: min, Max: max}
}
