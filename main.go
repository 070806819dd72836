package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/renderer"
	"github.com/adihodos/raytracing-in-one-weekend/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "random", "Scene: 'random', 'random-moving', 'cornell' or 'quadrics'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	samples := flag.Int("samples", 64, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray depth")
	workers := flag.Int("workers", 8, "Worker goroutines")
	blockSize := flag.Int("block-size", 16, "Worker block edge length in pixels")
	samplerName := flag.String("sampler", "multijittered", "Pixel sampler: 'random', 'regular', 'jittered', 'nrooks' or 'multijittered'")
	seed := flag.Int64("seed", 42, "Random seed")
	output := flag.String("output", "", "Output PNG path (default output/<scene>_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	samplerKind, err := renderer.ParseSamplerKind(*samplerName)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	random := rand.New(rand.NewSource(*seed))
	aspectRatio := float64(*width) / float64(*height)

	selectedScene, err := scene.Build(*sceneName, aspectRatio, random)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	config := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Workers:         *workers,
		BlockSize:       *blockSize,
		ShuffleBlocks:   true,
		Sampler:         samplerKind,
		Seed:            *seed,
		Logger:          log.Default(),
	}

	camera := renderer.NewCamera(selectedScene.Camera)
	r := renderer.NewRenderer(config, camera)
	fb := renderer.NewFramebuffer(*width, *height)

	startTime := time.Now()
	pixels := r.Render(selectedScene.World, selectedScene.Lights, selectedScene.Background)

	progress := time.NewTicker(2 * time.Second)
	defer progress.Stop()

	for {
		select {
		case pixel, ok := <-pixels:
			if !ok {
				progress.Stop()
				writeImage(fb, *sceneName, *output)
				fmt.Printf("Finished in %v\n", time.Since(startTime).Round(time.Millisecond))
				return
			}
			fb.Set(pixel.X, pixel.Y, pixel.Color)
		case <-progress.C:
			fmt.Printf("Progress: %d/%d blocks\n", r.BlocksDone(), r.TotalBlocks())
		}
	}
}

func writeImage(fb *renderer.Framebuffer, sceneName, output string) {
	if output == "" {
		if err := os.MkdirAll("output", 0755); err != nil {
			log.Fatalf("Error creating output directory: %v", err)
		}
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		output = filepath.Join("output", fmt.Sprintf("%s_%s.png", sceneName, timestamp))
	}

	file, err := os.Create(output)
	if err != nil {
		log.Fatalf("Error creating output file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		log.Fatalf("Error encoding PNG: %v", err)
	}

	fmt.Printf("Saved %s\n", output)
}
