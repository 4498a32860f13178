package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name  string
		color core.Vec3
		want  color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"gamma 2", core.NewVec3(0.25, 0.25, 0.25), color.RGBA{128, 128, 128, 255}},
		{"clamped", core.NewVec3(4, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"negative", core.NewVec3(-1, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"NaN channel only", core.NewVec3(math.NaN(), 0.25, 1), color.RGBA{0, 128, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.color); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFramebufferFlipsRows(t *testing.T) {
	fb := NewFramebuffer(2, 3)
	fb.SetPixel(0, 0, core.NewVec3(1, 0, 0)) // bottom left
	fb.SetPixel(1, 2, core.NewVec3(0, 0, 1)) // top right

	img := fb.Image()
	if got := img.RGBAAt(0, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected bottom-left pixel in the last image row, got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Expected top-right pixel in the first image row, got %v", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected untouched pixels to be opaque black, got %v", got)
	}
}

func TestPixelStatsSanitizesSamples(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(1, 1, 1))
	ps.AddSample(core.NewVec3(math.NaN(), math.Inf(1), 1))

	got := ps.GetColor()
	want := core.NewVec3(0.5, 0.5, 1)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
}
