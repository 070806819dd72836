package core

import (
	"math"
	"math/rand"
)

// CosinePdf is the cosine-weighted hemisphere density around a surface normal
type CosinePdf struct {
	uvw Onb
}

// NewCosinePdf creates a cosine-weighted PDF around the given normal
func NewCosinePdf(normal Vec3) *CosinePdf {
	return &CosinePdf{uvw: NewOnb(normal)}
}

// Value returns max(0, cosθ)/π relative to the basis normal
func (p *CosinePdf) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction in world space
func (p *CosinePdf) Generate(random *rand.Rand) Vec3 {
	return p.uvw.Local(RandomCosineDirection(random))
}

// HittablePdf importance-samples directions toward a light's surface
type HittablePdf struct {
	light  Light
	origin Vec3
}

// NewHittablePdf creates a PDF that samples the given light from origin
func NewHittablePdf(light Light, origin Vec3) *HittablePdf {
	return &HittablePdf{light: light, origin: origin}
}

// Value delegates to the light's solid-angle density
func (p *HittablePdf) Value(direction Vec3) float64 {
	return p.light.PdfValue(p.origin, direction)
}

// Generate draws a direction toward a random point on the light
func (p *HittablePdf) Generate(random *rand.Rand) Vec3 {
	return p.light.RandomDirection(p.origin, random)
}

// MixturePdf is the 50/50 single-sample mixture of two densities. This is the
// simple mixture heuristic, not per-technique-weighted multiple importance
// sampling, so variance reduction is partial.
type MixturePdf struct {
	p0, p1 Pdf
}

// NewMixturePdf creates an even mixture of two PDFs
func NewMixturePdf(p0, p1 Pdf) *MixturePdf {
	return &MixturePdf{p0: p0, p1: p1}
}

// Value averages the two component densities
func (p *MixturePdf) Value(direction Vec3) float64 {
	return 0.5*p.p0.Value(direction) + 0.5*p.p1.Value(direction)
}

// Generate draws from either component with equal probability
func (p *MixturePdf) Generate(random *rand.Rand) Vec3 {
	if random.Float64() < 0.5 {
		return p.p0.Generate(random)
	}
	return p.p1.Generate(random)
}
