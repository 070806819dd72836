package core

import "math/rand"

// Hittable is the intersection contract every primitive implements.
type Hittable interface {
	// Hit returns the nearest intersection with parameter inside
	// (tMin, tMax], or false. Degenerate input (parallel rays, zero-length
	// directions) is a miss, never a panic.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a conservative box valid over the whole
	// [time0, time1] interval. Unbounded primitives return false and must
	// not be placed in a BVH.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Light is a hittable that supports direct-light importance sampling.
// Primitives placed in a scene's lights list must implement it.
type Light interface {
	Hittable

	// PdfValue returns the solid-angle probability density of sampling the
	// given direction from origin toward this primitive's surface:
	// distance² / (|cosθ| · area).
	PdfValue(origin, direction Vec3) float64

	// RandomDirection returns a direction from origin toward a random point
	// on this primitive's surface
	RandomDirection(origin Vec3, random *rand.Rand) Vec3
}

// Material describes how a surface scatters light. Materials hold no per-ray
// state, so instances are shared freely across worker threads.
type Material interface {
	// Scatter returns how the incoming ray continues at the hit point, or
	// false if the ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterRecord, bool)

	// ScatteringPdf returns the density with which this material would have
	// scattered into the given outgoing ray; 0 for non-diffuse materials
	ScatteringPdf(rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// Emitter is implemented by materials that emit light. The integrator checks
// for it with a type assertion, so non-emissive materials don't carry a stub.
type Emitter interface {
	Emitted(rayIn Ray, hit *HitRecord) Vec3
}

// Pdf is a probability density over directions, constructed fresh per
// scattering event and discarded after one sample.
type Pdf interface {
	Value(direction Vec3) float64
	Generate(random *rand.Rand) Vec3
}

// Background supplies the environment radiance for rays that miss the scene
type Background interface {
	Sample(ray Ray) Vec3
}

// Logger interface for renderer progress output
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-primitive intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface parameterization for texture lookup
	FrontFace bool     // Whether the geometric outward normal faced the ray
	Material  Material // Material of the hit primitive (shared)
}

// SetFaceNormal orients the stored normal against the incoming ray and
// records whether the geometric outward normal agreed with it
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord is the result of a material scattering event. It is one of
// two variants with materially different handling downstream:
//
//   - specular: a single deterministic outgoing ray (SpecularRay) with a
//     fixed attenuation; the integrator follows it without any PDF mixing
//   - pdf: an attenuation plus a sampling Pdf that the integrator mixes with
//     direct-light sampling before drawing a direction
type ScatterRecord struct {
	Specular    bool
	SpecularRay Ray  // valid only for the specular variant
	Attenuation Vec3 // color attenuation, both variants
	Pdf         Pdf  // valid only for the pdf variant
}

// IsSpecular reports whether this is the specular variant
func (s ScatterRecord) IsSpecular() bool {
	return s.Specular
}
