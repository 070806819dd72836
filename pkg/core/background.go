package core

// SolidBackground returns a constant environment color for every miss ray
type SolidBackground struct {
	Color Vec3
}

// NewSolidBackground creates a constant-color background
func NewSolidBackground(color Vec3) *SolidBackground {
	return &SolidBackground{Color: color}
}

// Sample returns the background color regardless of direction
func (b *SolidBackground) Sample(ray Ray) Vec3 {
	return b.Color
}

// GradientBackground blends between a bottom and a top color by the vertical
// component of the ray direction, the classic sky gradient
type GradientBackground struct {
	Bottom Vec3
	Top    Vec3
}

// NewSkyBackground creates the standard white-to-sky-blue gradient
func NewSkyBackground() *GradientBackground {
	return &GradientBackground{
		Bottom: NewVec3(1.0, 1.0, 1.0),
		Top:    NewVec3(0.5, 0.7, 1.0),
	}
}

// Sample blends (1-t)·bottom + t·top with t from the unit direction's Y
func (b *GradientBackground) Sample(ray Ray) Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
