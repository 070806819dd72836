package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// SamplerKind selects the stratification strategy used for pixel samples
type SamplerKind int

const (
	// SamplerRandom draws uncorrelated uniform samples
	SamplerRandom SamplerKind = iota
	// SamplerRegular places samples at subcell centers, no jitter
	SamplerRegular
	// SamplerJittered jitters one sample per subcell of a √n × √n grid
	SamplerJittered
	// SamplerNRooks stratifies both axes on the grid diagonal
	SamplerNRooks
	// SamplerMultiJittered combines jittered and n-rooks stratification
	SamplerMultiJittered
)

// ParseSamplerKind maps a configuration string to a sampler kind
func ParseSamplerKind(name string) (SamplerKind, error) {
	switch name {
	case "random":
		return SamplerRandom, nil
	case "regular":
		return SamplerRegular, nil
	case "jittered":
		return SamplerJittered, nil
	case "nrooks":
		return SamplerNRooks, nil
	case "multijittered":
		return SamplerMultiJittered, nil
	default:
		return 0, fmt.Errorf("unknown sampler kind %q", name)
	}
}

const defaultSampleSets = 83

// PixelSampler hands out precomputed stratified unit-square samples. Sample
// positions are generated once into a number of sets; each pixel consumes one
// whole set, chosen at random, through a per-set shuffled index table so
// neighboring pixels do not reuse the same sample order.
//
// A PixelSampler is not safe for concurrent use: each worker must Clone its
// own instance.
type PixelSampler struct {
	samples         []core.Vec2
	shuffledIndices []int
	sets            int
	samplesPerSet   int
	count           int
	jump            int
	random          *rand.Rand
}

// NewPixelSampler creates a sampler with the given strategy, samples per
// pixel, and random source
func NewPixelSampler(kind SamplerKind, samplesPerSet int, random *rand.Rand) *PixelSampler {
	if samplesPerSet < 1 {
		samplesPerSet = 1
	}

	samples := make([]core.Vec2, 0, defaultSampleSets*samplesPerSet)
	for set := 0; set < defaultSampleSets; set++ {
		samples = append(samples, generateSampleSet(kind, samplesPerSet, random)...)
	}

	shuffled := make([]int, 0, defaultSampleSets*samplesPerSet)
	indices := make([]int, samplesPerSet)
	for set := 0; set < defaultSampleSets; set++ {
		for i := range indices {
			indices[i] = i
		}
		random.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		shuffled = append(shuffled, indices...)
	}

	return &PixelSampler{
		samples:         samples,
		shuffledIndices: shuffled,
		sets:            defaultSampleSets,
		samplesPerSet:   samplesPerSet,
		random:          random,
	}
}

// Clone returns an independent sampler sharing the precomputed sample data
// but with its own cursor and random source
func (s *PixelSampler) Clone(random *rand.Rand) *PixelSampler {
	return &PixelSampler{
		samples:         s.samples,
		shuffledIndices: s.shuffledIndices,
		sets:            s.sets,
		samplesPerSet:   s.samplesPerSet,
		random:          random,
	}
}

// SamplesPerPixel returns the number of samples in one set
func (s *PixelSampler) SamplesPerPixel() int {
	return s.samplesPerSet
}

// SampleUnitSquare returns the next sample in [0,1)². A new set is selected
// at random every samplesPerSet calls.
func (s *PixelSampler) SampleUnitSquare() core.Vec2 {
	if s.count%s.samplesPerSet == 0 {
		s.jump = s.random.Intn(s.sets) * s.samplesPerSet
	}

	idx := s.jump + s.shuffledIndices[s.jump+s.count%s.samplesPerSet]
	s.count++
	return s.samples[idx]
}

// generateSampleSet produces one set of stratified samples
func generateSampleSet(kind SamplerKind, n int, random *rand.Rand) []core.Vec2 {
	switch kind {
	case SamplerRegular:
		return regularSamples(n)
	case SamplerJittered:
		return jitteredSamples(n, random)
	case SamplerNRooks:
		return nRooksSamples(n, random)
	case SamplerMultiJittered:
		return multiJitteredSamples(n, random)
	default:
		return randomSamples(n, random)
	}
}

func randomSamples(n int, random *rand.Rand) []core.Vec2 {
	samples := make([]core.Vec2, n)
	for i := range samples {
		samples[i] = core.NewVec2(random.Float64(), random.Float64())
	}
	return samples
}

// regularSamples places each sample at its subcell center. Sample counts
// that are not perfect squares are rounded down to the nearest square grid
// and the remainder filled at the grid center.
func regularSamples(n int) []core.Vec2 {
	grid := int(math.Sqrt(float64(n)))
	samples := make([]core.Vec2, 0, n)
	for p := 0; p < grid; p++ {
		for q := 0; q < grid; q++ {
			samples = append(samples, core.NewVec2(
				(float64(q)+0.5)/float64(grid),
				(float64(p)+0.5)/float64(grid),
			))
		}
	}
	for len(samples) < n {
		samples = append(samples, core.NewVec2(0.5, 0.5))
	}
	return samples
}

func jitteredSamples(n int, random *rand.Rand) []core.Vec2 {
	grid := int(math.Sqrt(float64(n)))
	samples := make([]core.Vec2, 0, n)
	for j := 0; j < grid; j++ {
		for k := 0; k < grid; k++ {
			samples = append(samples, core.NewVec2(
				(float64(k)+random.Float64())/float64(grid),
				(float64(j)+random.Float64())/float64(grid),
			))
		}
	}
	for len(samples) < n {
		samples = append(samples, core.NewVec2(random.Float64(), random.Float64()))
	}
	return samples
}

func nRooksSamples(n int, random *rand.Rand) []core.Vec2 {
	samples := make([]core.Vec2, n)
	for j := range samples {
		samples[j] = core.NewVec2(
			(float64(j)+random.Float64())/float64(n),
			(float64(j)+random.Float64())/float64(n),
		)
	}
	// decorrelate the axes by shuffling x and y coordinates independently
	random.Shuffle(n, func(i, j int) {
		samples[i].X, samples[j].X = samples[j].X, samples[i].X
	})
	random.Shuffle(n, func(i, j int) {
		samples[i].Y, samples[j].Y = samples[j].Y, samples[i].Y
	})
	return samples
}

func multiJitteredSamples(n int, random *rand.Rand) []core.Vec2 {
	grid := int(math.Sqrt(float64(n)))
	subcellWidth := 1 / float64(grid*grid)

	samples := make([]core.Vec2, 0, n)
	for i := 0; i < grid; i++ {
		for j := 0; j < grid; j++ {
			samples = append(samples, core.NewVec2(
				float64(i*grid+j)*subcellWidth+random.Float64()*subcellWidth,
				float64(j*grid+i)*subcellWidth+random.Float64()*subcellWidth,
			))
		}
	}
	for len(samples) < n {
		samples = append(samples, core.NewVec2(random.Float64(), random.Float64()))
	}
	return samples
}
