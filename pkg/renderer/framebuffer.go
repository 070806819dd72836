package renderer

import (
	"image"
	"image/color"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Framebuffer accumulates finished pixels. It is owned by a single
// goroutine, normally the one draining the renderer's pixel channel.
type Framebuffer struct {
	width, height int
	pixels        []core.Vec3
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Set stores a pixel color. Coordinates outside the buffer are ignored.
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = c
}

// At returns the stored color at (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// Width returns the buffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Image quantizes the buffer to an 8-bit RGBA image. Stored colors are
// assumed already gamma corrected; each channel maps as 256·clamp(c, 0, 0.999).
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.pixels[y*fb.width+x].Clamp(0, 0.999)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(256 * c.X),
				G: uint8(256 * c.Y),
				B: uint8(256 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
