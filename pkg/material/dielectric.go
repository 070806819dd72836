package material

import (
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Dielectric is a clear material that refracts when Snell's law permits and
// reflects otherwise, with Schlick's approximation deciding probabilistically
// near grazing angles
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given refractive index
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter produces a reflected or refracted specular ray with no attenuation
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	refractionRatio := d.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return core.ScatterRecord{
		Specular:    true,
		SpecularRay: core.NewRayAt(hit.Point, direction, rayIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// ScatteringPdf is zero: refraction and reflection are delta distributions
func (d *Dielectric) ScatteringPdf(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Reflectance is Schlick's polynomial approximation of the Fresnel factor
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
