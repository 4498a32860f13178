package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// Framebuffer is the 8-bit RGB pixel sink. Rows are addressed bottom-up, as
// the camera's t coordinate is, and stored top-down in the image.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return &Framebuffer{img: img}
}

// Width returns the width in pixels
func (fb *Framebuffer) Width() int {
	return fb.img.Rect.Dx()
}

// Height returns the height in pixels
func (fb *Framebuffer) Height() int {
	return fb.img.Rect.Dy()
}

// SetPixel stores the averaged linear color of pixel (i, j), where j = 0 is
// the bottom row. Workers writing disjoint rows may call it concurrently.
func (fb *Framebuffer) SetPixel(i, j int, c core.Vec3) {
	fb.img.SetRGBA(i, fb.Height()-1-j, ToRGBA(c))
}

// Image returns the underlying image, top row first
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// ToRGBA converts a linear color to 8 bits per channel. NaN channels become
// zero, then gamma 2 is applied and the result is quantized.
func ToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}

func quantize(x float64) uint8 {
	if math.IsNaN(x) {
		x = 0
	}
	x = math.Sqrt(max(x, 0))
	return uint8(256 * max(0, min(x, 0.999)))
}
