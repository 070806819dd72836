package core

import (
	"math"
	"math/rand"
)

// RandomInUnitSphere generates a random point inside the unit sphere by
// rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit
// sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk on the XY plane
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomCosineDirection generates a cosine-weighted direction around the
// +Z axis, for use with an orthonormal basis
func RandomCosineDirection(random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)

	return Vec3{X: x, Y: y, Z: z}
}

// RandomToSphere generates a direction toward a sphere of the given radius
// at squared distance distanceSquared, uniform over the subtended solid
// angle cone, in +Z-axis local coordinates
func RandomToSphere(radius, distanceSquared float64, random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(1-z*z)
	y := math.Sin(phi) * math.Sqrt(1-z*z)

	return Vec3{X: x, Y: y, Z: z}
}
