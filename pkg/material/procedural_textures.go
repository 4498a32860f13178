package material

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// CheckerTexture alternates between two sources in a 3D pattern of cells
type CheckerTexture struct {
	Even, Odd ColorSource
	Frequency float64 // Cells per unit length times π
}

// NewCheckerTexture creates a solid-color checker with the given frequency
func NewCheckerTexture(even, odd core.Vec3, frequency float64) *CheckerTexture {
	return &CheckerTexture{Even: NewSolidColor(even), Odd: NewSolidColor(odd), Frequency: frequency}
}

// Evaluate picks a source by the sign of sin(fx)·sin(fy)·sin(fz)
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	f := c.Frequency
	sines := math.Sin(f*point.X) * math.Sin(f*point.Y) * math.Sin(f*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
