package integrator

import (
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// PathTracing estimates radiance by recursive Monte Carlo integration of the
// rendering equation. Diffuse bounces draw directions from a 50/50 mixture of
// the material's own PDF and a PDF aimed at the scene lights, which keeps
// variance low for small bright emitters.
type PathTracing struct {
	MaxDepth int
}

// NewPathTracing creates an integrator with the given maximum ray depth
func NewPathTracing(maxDepth int) *PathTracing {
	return &PathTracing{MaxDepth: maxDepth}
}

// RayColor returns the radiance carried along the ray
func (pt *PathTracing) RayColor(ray core.Ray, world core.Hittable, lights *core.LightList, background core.Background, random *rand.Rand) core.Vec3 {
	return pt.rayColor(ray, world, lights, background, pt.MaxDepth, random)
}

func (pt *PathTracing) rayColor(ray core.Ray, world core.Hittable, lights *core.LightList, background core.Background, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		return background.Sample(ray)
	}

	emitted := core.NewVec3(0, 0, 0)
	if emitter, ok := hit.Material.(core.Emitter); ok {
		emitted = emitter.Emitted(ray, hit)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular() {
		bounce := pt.rayColor(scatter.SpecularRay, world, lights, background, depth-1, random)
		return emitted.Add(scatter.Attenuation.MultiplyVec(bounce))
	}

	samplingPdf := scatter.Pdf
	if !lights.Empty() {
		lightPdf := core.NewHittablePdf(lights, hit.Point)
		samplingPdf = core.NewMixturePdf(lightPdf, scatter.Pdf)
	}

	direction := samplingPdf.Generate(random)
	scattered := core.NewRayAt(hit.Point, direction, ray.Time)

	pdfValue := samplingPdf.Value(direction)
	pdfValue = clampPdf(pdfValue)

	weight := hit.Material.ScatteringPdf(ray, hit, scattered) / pdfValue
	bounce := pt.rayColor(scattered, world, lights, background, depth-1, random)

	return emitted.Add(scatter.Attenuation.MultiplyVec(bounce).Multiply(weight))
}

// clampPdf substitutes a small epsilon of matching sign when the mixture PDF
// is too close to zero, avoiding division blow-up
func clampPdf(pdf float64) float64 {
	const epsilon = 1e-4
	if math.Abs(pdf) >= epsilon {
		return pdf
	}
	if pdf < 0 {
		return -epsilon
	}
	return epsilon
}
