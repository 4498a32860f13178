package renderer

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red, green, blue and black: (0.2126 + 0.7152 + 0.0722 + 0) / 4 = 0.25
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_Empty(t *testing.T) {
	if got := CalculateAverageLuminance(image.NewRGBA(image.Rect(0, 0, 0, 0))); got != 0 {
		t.Errorf("Expected 0 for an empty image, got %f", got)
	}
}

func TestRenderStats(t *testing.T) {
	stats := RenderStats{TotalPixels: 4, TotalSamples: 10, NumWorkers: 2, Elapsed: 1500 * time.Millisecond}
	if got := stats.AverageSamples(); got != 2.5 {
		t.Errorf("Expected 2.5 samples per pixel, got %f", got)
	}
	if got := stats.String(); got != "4 pixels, 10 samples (2.5/pixel), 2 workers, 1.5s" {
		t.Errorf("Unexpected summary %q", got)
	}
	if (RenderStats{}).AverageSamples() != 0 {
		t.Error("Expected 0 average for an empty render")
	}
}
