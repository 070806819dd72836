package material

import (
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Lambertian is a perfectly diffuse material. Scattering is importance
// sampled from a cosine-weighted hemisphere around the surface normal.
type Lambertian struct {
	Albedo Texture
}

// NewLambertian creates a diffuse material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a diffuse material with a texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns a cosine PDF around the normal and the albedo attenuation
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		Pdf:         core.NewCosinePdf(hit.Normal),
	}, true
}

// ScatteringPdf returns the cosine-weighted density of the scattered ray
func (l *Lambertian) ScatteringPdf(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}
