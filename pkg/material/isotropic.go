package material

import (
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Isotropic is the phase function of a constant-density medium: scattering
// is uniform over the sphere regardless of the incoming direction
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter bounces the ray in a uniformly random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Specular:    true,
		SpecularRay: core.NewRayAt(hit.Point, core.RandomInUnitSphere(random), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

// ScatteringPdf is zero: the scatter is handled as a specular event
func (i *Isotropic) ScatteringPdf(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
