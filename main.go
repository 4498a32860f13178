package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/integrator"
	"github.com/df07/go-spectral-raytracer/pkg/renderer"
	"github.com/df07/go-spectral-raytracer/pkg/scene"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
	"github.com/pkg/errors"
)

// config holds the parsed command line
type config struct {
	Scene             string
	Width, Height     int
	SamplesPerPixel   int
	MaxDepth          int
	Workers           int
	Seed              int64
	Frame, Frames     int
	Wavelengths       spectrum.Strategy
	WavelengthSamples int
	FluorescenceNorm  integrator.FluorescenceNormalization
	SpectraDir        string
	TexturePath       string
	TimeLimit         time.Duration
	Output            string
	Help              bool
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config
	var wavelengths, fluorescenceNorm string

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Scene, "scene", "cornell", "Scene to render (see -help)")
	fs.IntVar(&cfg.Width, "width", 600, "Image width in pixels")
	fs.IntVar(&cfg.Height, "height", 0, "Image height in pixels (default: same as width)")
	fs.IntVar(&cfg.SamplesPerPixel, "spp", renderer.DefaultSamplingConfig().SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&cfg.MaxDepth, "depth", integrator.DefaultConfig().MaxDepth, "Maximum bounces per path")
	fs.IntVar(&cfg.Workers, "workers", 0, "Worker goroutines (0: one per logical CPU)")
	fs.Int64Var(&cfg.Seed, "seed", renderer.DefaultSamplingConfig().Seed, "Base random seed")
	fs.IntVar(&cfg.Frame, "frame", 0, "First animation frame to render")
	fs.IntVar(&cfg.Frames, "frames", 1, fmt.Sprintf("Number of frames to render (the fluor animation has %d)", scene.FluorescenceFrames))
	fs.StringVar(&wavelengths, "wavelengths", spectrum.StrategyUniform.String(), "Wavelength sampling for spectral scenes: full, uniform or importance")
	fs.IntVar(&cfg.WavelengthSamples, "wavelength-samples", spectrum.DefaultSampleSize, "Wavelengths traced per camera sample")
	fs.StringVar(&fluorescenceNorm, "fluorescence-norm", "count", "Re-radiated energy scaling: count or pdf")
	fs.StringVar(&cfg.SpectraDir, "spectra-dir", "", "Directory of CSV tables replacing the built-in spectra")
	fs.StringVar(&cfg.TexturePath, "texture", "", "Image mapped onto the back wall of the cornell scene")
	fs.DurationVar(&cfg.TimeLimit, "time-limit", 0, "Exit after this much wall-clock time (0: no limit)")
	fs.StringVar(&cfg.Output, "output", "", "Output file; the extension picks PNG, BMP or TIFF (default: output/<scene>/render.png)")
	fs.BoolVar(&cfg.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Help {
		printHelp(output, fs)
		return cfg, nil
	}

	var err error
	if cfg.Wavelengths, err = spectrum.ParseStrategy(wavelengths); err != nil {
		return cfg, err
	}
	switch fluorescenceNorm {
	case "count":
		cfg.FluorescenceNorm = integrator.NormalizeBySampleCount
	case "pdf":
		cfg.FluorescenceNorm = integrator.NormalizeByInverseWavelengthPDF
	default:
		return cfg, errors.Errorf("unknown fluorescence normalization %q (want count or pdf)", fluorescenceNorm)
	}

	if cfg.Height == 0 {
		cfg.Height = cfg.Width
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, errors.Errorf("image size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.SamplesPerPixel <= 0 {
		return cfg, errors.Errorf("samples per pixel must be positive, got %d", cfg.SamplesPerPixel)
	}
	if cfg.MaxDepth <= 0 {
		return cfg, errors.Errorf("depth must be positive, got %d", cfg.MaxDepth)
	}
	if cfg.Frames <= 0 {
		return cfg, errors.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.Output == "" {
		cfg.Output = filepath.Join("output", cfg.Scene, "render.png")
	}
	if _, err := renderer.FormatFromPath(cfg.Output); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Spectral Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-15s %s\n", info.ID, info.Description)
	}
}

// frameOutputPath numbers the output file when several frames are rendered
func frameOutputPath(path string, frame, frames int) string {
	if frames <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(path, ext), frame, ext)
}

// loadTables reads the spectral tables from disk or the built-in copy
func loadTables(dir string) (*spectrum.Tables, error) {
	if dir != "" {
		return spectrum.LoadTablesDir(dir)
	}
	return spectrum.DefaultTables()
}

// run renders every requested frame
func run(cfg config, logger core.Logger) error {
	tables, err := loadTables(cfg.SpectraDir)
	if err != nil {
		return err
	}

	for frame := cfg.Frame; frame < cfg.Frame+cfg.Frames; frame++ {
		opts := scene.DefaultOptions()
		opts.AspectRatio = float64(cfg.Width) / float64(cfg.Height)
		opts.Frame = frame
		opts.Seed = cfg.Seed
		opts.Integrator.MaxDepth = cfg.MaxDepth
		opts.Integrator.FluorescenceNormalization = cfg.FluorescenceNorm
		opts.Tables = tables
		opts.Wavelengths = cfg.Wavelengths
		opts.WavelengthSamples = cfg.WavelengthSamples
		opts.TexturePath = cfg.TexturePath

		sceneObj, err := scene.Create(cfg.Scene, opts)
		if err != nil {
			return err
		}

		sampling := renderer.SamplingConfig{
			SamplesPerPixel: cfg.SamplesPerPixel,
			NumWorkers:      cfg.Workers,
			Seed:            cfg.Seed,
			Frame:           frame,
		}
		framebuffer, _ := renderer.NewRaytracer(sceneObj, cfg.Width, cfg.Height, sampling, logger).Render()

		path := frameOutputPath(cfg.Output, frame, cfg.Frames)
		if err := renderer.SaveImage(path, framebuffer.Image()); err != nil {
			return err
		}
		logger.Printf("Render saved as %s (average luminance %.3f)\n", path, renderer.CalculateAverageLuminance(framebuffer.Image()))
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp || cfg.Help {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.TimeLimit > 0 {
		// Frames already written are kept; the one in progress is dropped
		time.AfterFunc(cfg.TimeLimit, func() {
			fmt.Printf("Time limit of %v reached, exiting\n", cfg.TimeLimit)
			os.Exit(0)
		})
	}

	fmt.Println("Starting Spectral Raytracer...")
	info := renderer.GetSystemInfo()
	fmt.Printf("Host: %s, %d logical cores, %.1f GiB memory\n",
		info.CPUModel, info.LogicalCores, float64(info.TotalMemory)/(1<<30))

	if err := run(cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
