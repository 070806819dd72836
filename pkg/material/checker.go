package material

import (
	"math"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// CheckerTexture alternates between two textures in a 3D checker pattern
// driven by the sign of sin(10x)·sin(10y)·sin(10z)
type CheckerTexture struct {
	Odd  Texture
	Even Texture
}

// NewCheckerTexture creates a checker from two textures
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewCheckerColors creates a checker from two solid colors
func NewCheckerColors(odd, even core.Vec3) *CheckerTexture {
	return &CheckerTexture{Odd: NewSolidColor(odd), Even: NewSolidColor(even)}
}

// Value returns the odd or even texture depending on the hit point
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
