package material

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// Magenta is returned by textures whose image data is missing
var Magenta = core.NewVec3(1, 0, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], top row first
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor
// filtering. UV is clamped to [0, 1]; a texture without pixel data evaluates
// to Magenta so that missing assets are obvious in the render.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t == nil || t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return Magenta
	}

	u := max(0, min(1, uv.X))
	// V=0 is bottom, V=1 is top
	v := 1.0 - max(0, min(1, uv.Y))

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
