package renderer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/integrator"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

type testScene struct {
	camera *Camera
	world  *integrator.World
	integ  integrator.Integrator
}

func (s *testScene) GetCamera() *Camera                   { return s.camera }
func (s *testScene) GetWorld() *integrator.World          { return s.world }
func (s *testScene) GetIntegrator() integrator.Integrator { return s.integ }

// newTestScene is a diffuse sphere lit by a sky, seen through a lens
func newTestScene() *testScene {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	return &testScene{
		camera: NewCamera(CameraConfig{
			Center:      core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -3),
			Up:          core.NewVec3(0, 1, 0),
			AspectRatio: 1,
			VFov:        60,
			Aperture:    0.1,
		}),
		world: &integrator.World{
			Objects:    sphere,
			Background: core.NewVec3(0.5, 0.7, 1.0),
		},
		integ: integrator.NewPathTracer(integrator.DefaultConfig()),
	}
}

type bufferLogger struct {
	buf bytes.Buffer
}

func (l *bufferLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&l.buf, format, args...)
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	scene := newTestScene()
	config := SamplingConfig{SamplesPerPixel: 4, Seed: 7}

	var images [][]byte
	for _, workers := range []int{1, 3, 8} {
		config.NumWorkers = workers
		fb, stats := NewRaytracer(scene, 16, 12, config, &bufferLogger{}).Render()
		if stats.NumWorkers != workers {
			t.Errorf("Expected %d workers, got %d", workers, stats.NumWorkers)
		}
		images = append(images, fb.Image().Pix)
	}

	for i := 1; i < len(images); i++ {
		if !bytes.Equal(images[0], images[i]) {
			t.Fatalf("Image rendered with %d configurations differs", i+1)
		}
	}
}

func TestRaytracer_SeedAndFrameChangeNoise(t *testing.T) {
	scene := newTestScene()
	render := func(seed int64, frame int) []byte {
		config := SamplingConfig{SamplesPerPixel: 2, NumWorkers: 2, Seed: seed, Frame: frame}
		fb, _ := NewRaytracer(scene, 16, 12, config, &bufferLogger{}).Render()
		return fb.Image().Pix
	}

	base := render(1, 0)
	if bytes.Equal(base, render(2, 0)) {
		t.Error("Expected a different seed to change the image")
	}
	if bytes.Equal(base, render(1, 1)) {
		t.Error("Expected a different frame to change the image")
	}
}

func TestRaytracer_StatsAndLogging(t *testing.T) {
	logger := &bufferLogger{}
	config := SamplingConfig{SamplesPerPixel: 3, NumWorkers: 2, Seed: 1}
	_, stats := NewRaytracer(newTestScene(), 10, 20, config, logger).Render()

	if stats.TotalPixels != 200 {
		t.Errorf("Expected 200 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 600 {
		t.Errorf("Expected 600 samples, got %d", stats.TotalSamples)
	}
	output := logger.buf.String()
	for _, want := range []string{"Rendering 10x20", "100% (20/20 rows)", "Frame 0 completed"} {
		if !bytes.Contains([]byte(output), []byte(want)) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, output)
		}
	}
}

func TestRaytracer_BackgroundOnly(t *testing.T) {
	scene := newTestScene()
	scene.world = &integrator.World{
		Objects:    geometry.NewHittableList(),
		Background: core.NewVec3(0.25, 0.25, 0.25),
	}
	fb, _ := NewRaytracer(scene, 4, 4, SamplingConfig{SamplesPerPixel: 2, NumWorkers: 1}, &bufferLogger{}).Render()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.Image().RGBAAt(x, y); got.R != 128 || got.G != 128 || got.B != 128 {
				t.Fatalf("Expected gamma-corrected background at (%d,%d), got %v", x, y, got)
			}
		}
	}
}
