package material

import (
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Metal is a specular reflector with an optional fuzz factor perturbing the
// mirror direction. Rays fuzzed below the surface are absorbed.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter produces the fuzzed mirror reflection as a specular ray
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}

	return core.ScatterRecord{
		Specular:    true,
		SpecularRay: core.NewRayAt(hit.Point, reflected, rayIn.Time),
		Attenuation: m.Albedo,
	}, true
}

// ScatteringPdf is zero: specular reflection is a delta distribution
func (m *Metal) ScatteringPdf(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
