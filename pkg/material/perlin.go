package material

import (
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

const perlinPointCount = 256

// Perlin is lattice gradient noise over a shuffled permutation table,
// interpolated trilinearly with Hermitian smoothing
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin creates a noise generator from the given random source
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = core.RandomUnitVector(random)
	}
	perlinGeneratePerm(&p.permX, random)
	perlinGeneratePerm(&p.permY, random)
	perlinGeneratePerm(&p.permZ, random)
	return p
}

func perlinGeneratePerm(perm *[perlinPointCount]int, random *rand.Rand) {
	for i := range perm {
		perm[i] = i
	}
	random.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
}

// Noise returns gradient noise in [-1, 1] at the given point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randVec[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(&c, u, v, w)
}

// Turbulence sums octaves of absolute noise at doubling frequencies
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

func perlinInterp(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weightV := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weightV)
			}
		}
	}
	return accum
}

// NoiseTexture is a marble-like procedural texture built from turbulence
// modulating a sine along Z
type NoiseTexture struct {
	Scale  float64
	perlin *Perlin
}

// NewNoiseTexture creates a marble texture at the given frequency scale
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{Scale: scale, perlin: NewPerlin(random)}
}

// Value returns the marble color at the hit point
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	phase := n.Scale*p.Z + 10*n.perlin.Turbulence(p, 7)
	return core.NewVec3(1, 1, 1).Multiply(0.5 * (1 + math.Sin(phase)))
}
