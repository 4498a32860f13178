package renderer

import (
	"time"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	NumWorkers      int   // Worker goroutines; 0 uses every logical CPU
	Seed            int64 // Base seed, combined with frame and row
	Frame           int   // Animation frame, so frames get independent noise
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 15,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() *integrator.World
	GetIntegrator() integrator.Integrator
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int, config SamplingConfig, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// Render renders one frame, one row per task across the worker pool
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()
	framebuffer := NewFramebuffer(rt.width, rt.height)
	pool := NewWorkerPool(rt, framebuffer, rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (using %d workers)...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, pool.GetNumWorkers())

	pool.Start()
	for j := 0; j < rt.height; j++ {
		pool.SubmitTask(RowTask{Row: j, Seed: core.SeedFor(rt.config.Seed, rt.config.Frame, j)})
	}

	stats := RenderStats{TotalPixels: rt.width * rt.height, NumWorkers: pool.GetNumWorkers()}
	nextReport := 10
	for done := 1; done <= rt.height; done++ {
		result, _ := pool.GetResult()
		stats.TotalSamples += result.Samples
		if percent := done * 100 / rt.height; percent >= nextReport {
			rt.logger.Printf("  %d%% (%d/%d rows)\n", percent, done, rt.height)
			nextReport = percent/10*10 + 10
		}
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	rt.logger.Printf("Frame %d completed: %v\n", rt.config.Frame, stats)
	return framebuffer, stats
}

// RenderRow renders row j (0 at the bottom) into framebuffer and returns
// the number of samples taken
func (rt *Raytracer) RenderRow(j int, framebuffer *Framebuffer, sampler core.Sampler) int {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	integ := rt.scene.GetIntegrator()

	samples := 0
	for i := 0; i < rt.width; i++ {
		var pixel PixelStats
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Convert pixel coordinates to normalized coordinates with jitter
			s := (float64(i) + sampler.Get1D()) / float64(rt.width)
			t := (float64(j) + sampler.Get1D()) / float64(rt.height)

			ray := camera.GetRay(s, t, sampler)
			pixel.AddSample(integ.RayColor(ray, world, sampler))
		}
		framebuffer.SetPixel(i, j, pixel.GetColor())
		samples += pixel.SampleCount
	}
	return samples
}
