package renderer

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
	"github.com/adihodos/raytracing-in-one-weekend/pkg/integrator"
)

// Config holds the render settings
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	BlockSize       int  // edge length of a worker block, in pixels
	ShuffleBlocks   bool // randomize block order to decorrelate worker finish times
	Sampler         SamplerKind
	Seed            int64
	Logger          core.Logger
}

// DefaultConfig returns render settings matching a medium-quality offline
// render
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		SamplesPerPixel: 64,
		MaxDepth:        50,
		Workers:         8,
		BlockSize:       16,
		ShuffleBlocks:   true,
		Sampler:         SamplerMultiJittered,
		Seed:            42,
	}
}

// Pixel is one finished pixel sent from a worker to the render owner
type Pixel struct {
	X, Y  int
	Color core.Vec3
}

// block is a rectangular pixel region processed by one worker as a unit
type block struct {
	x0, x1 int
	y0, y1 int
}

// Renderer schedules a fixed worker pool over the image, split into blocks
// drained LIFO from a shared mutex-guarded stack. Workers never touch the
// output buffer: finished pixels flow over a channel to the caller, which
// owns the buffer exclusively. Cancellation is cooperative, checked once per
// block pop.
type Renderer struct {
	config Config
	camera *Camera

	cancelled   atomic.Bool
	blocksDone  atomic.Int64
	totalBlocks int
}

// NewRenderer creates a renderer for the given configuration and camera
func NewRenderer(config Config, camera *Camera) *Renderer {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.BlockSize < 1 {
		config.BlockSize = 16
	}

	return &Renderer{config: config, camera: camera}
}

// Cancel requests a cooperative stop. Workers finish their in-flight block
// before exiting; the pixel channel still closes normally.
func (r *Renderer) Cancel() {
	r.cancelled.Store(true)
}

// BlocksDone returns the number of completed blocks, safe to poll from any
// goroutine
func (r *Renderer) BlocksDone() int {
	return int(r.blocksDone.Load())
}

// TotalBlocks returns the total number of blocks in the current render
func (r *Renderer) TotalBlocks() int {
	return r.totalBlocks
}

// Render starts the worker pool and returns the channel of finished pixels.
// The channel closes once every worker has exited, whether the render ran to
// completion or was cancelled.
func (r *Renderer) Render(world core.Hittable, lights *core.LightList, background core.Background) <-chan Pixel {
	blocks := r.makeBlocks()
	r.totalBlocks = len(blocks)
	r.blocksDone.Store(0)
	r.cancelled.Store(false)

	if r.config.Logger != nil {
		r.config.Logger.Printf("render start: %dx%d, %d spp, %d workers, %d blocks",
			r.config.Width, r.config.Height, r.config.SamplesPerPixel, r.config.Workers, len(blocks))
	}

	queue := &blockQueue{blocks: blocks}
	pt := integrator.NewPathTracing(r.config.MaxDepth)

	baseSampler := NewPixelSampler(
		r.config.Sampler,
		r.config.SamplesPerPixel,
		rand.New(rand.NewSource(r.config.Seed)),
	)

	results := make(chan Pixel, r.config.Workers*r.config.BlockSize)

	var wg sync.WaitGroup
	for worker := 0; worker < r.config.Workers; worker++ {
		wg.Add(1)

		random := rand.New(rand.NewSource(r.config.Seed + int64(worker) + 1))
		sampler := baseSampler.Clone(random)

		go func(worker int) {
			defer wg.Done()
			r.renderWorker(worker, queue, pt, world, lights, background, sampler, random, results)
		}(worker)
	}

	go func() {
		wg.Wait()
		close(results)
		if r.config.Logger != nil {
			r.config.Logger.Printf("render done: %d/%d blocks", r.BlocksDone(), r.totalBlocks)
		}
	}()

	return results
}

func (r *Renderer) renderWorker(worker int, queue *blockQueue, pt *integrator.PathTracing,
	world core.Hittable, lights *core.LightList, background core.Background,
	sampler *PixelSampler, random *rand.Rand, results chan<- Pixel) {

	for {
		if r.cancelled.Load() {
			return
		}

		blk, ok := queue.pop()
		if !ok {
			return
		}

		for y := blk.y0; y < blk.y1; y++ {
			for x := blk.x0; x < blk.x1; x++ {
				results <- Pixel{X: x, Y: y, Color: r.renderPixel(x, y, pt, world, lights, background, sampler, random)}
			}
		}

		r.blocksDone.Add(1)
	}
}

// renderPixel averages the stratified samples of one pixel, applies sqrt
// gamma, and clamps non-finite results to black
func (r *Renderer) renderPixel(x, y int, pt *integrator.PathTracing,
	world core.Hittable, lights *core.LightList, background core.Background,
	sampler *PixelSampler, random *rand.Rand) core.Vec3 {

	color := core.NewVec3(0, 0, 0)
	for s := 0; s < sampler.SamplesPerPixel(); s++ {
		sample := sampler.SampleUnitSquare()
		u := (float64(x) + sample.X) / float64(r.config.Width-1)
		v := 1 - (float64(y)+sample.Y)/float64(r.config.Height-1)

		ray := r.camera.GetRay(u, v, random)
		color = color.Add(pt.RayColor(ray, world, lights, background, random))
	}

	color = color.Multiply(1 / float64(sampler.SamplesPerPixel()))
	color = core.NewVec3(math.Sqrt(color.X), math.Sqrt(color.Y), math.Sqrt(color.Z))

	if !color.IsFinite() {
		return core.NewVec3(0, 0, 0)
	}
	return color
}

// makeBlocks partitions the image into BlockSize² regions, clamped at the
// right and bottom edges, optionally shuffled
func (r *Renderer) makeBlocks() []block {
	dim := r.config.BlockSize
	var blocks []block

	for y := 0; y < r.config.Height; y += dim {
		for x := 0; x < r.config.Width; x += dim {
			blocks = append(blocks, block{
				x0: x,
				x1: min(x+dim, r.config.Width),
				y0: y,
				y1: min(y+dim, r.config.Height),
			})
		}
	}

	if r.config.ShuffleBlocks {
		random := rand.New(rand.NewSource(r.config.Seed))
		random.Shuffle(len(blocks), func(i, j int) {
			blocks[i], blocks[j] = blocks[j], blocks[i]
		})
	}

	return blocks
}

// blockQueue is the shared LIFO work stack. A single mutex suffices: each
// critical section is one pop.
type blockQueue struct {
	mu     sync.Mutex
	blocks []block
}

func (q *blockQueue) pop() (block, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.blocks) == 0 {
		return block{}, false
	}

	blk := q.blocks[len(q.blocks)-1]
	q.blocks = q.blocks[:len(q.blocks)-1]
	return blk, true
}
