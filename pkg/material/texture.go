package material

import (
	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// Texture evaluates a color at surface parameters (u,v) and hit point p
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a uniform texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidColorRGB creates a uniform texture from components
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Color: core.NewVec3(r, g, b)}
}

// Value returns the uniform color
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}
