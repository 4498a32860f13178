// Package integrator computes the radiance carried along camera rays.
package integrator

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/pdf"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the linear RGB radiance arriving along ray.
	// The result may contain NaN or Inf; callers sanitize it per sample.
	RayColor(ray core.Ray, world *World, sampler core.Sampler) core.Vec3
}

// World is the read-only scene state traced by an integrator. It is built
// once before rendering and shared by every worker.
type World struct {
	Objects geometry.Hittable // usually a BVH
	Lights  geometry.Hittable // shapes to sample directly, or nil

	Background         core.Vec3 // radiance of missed rays in RGB transport
	SpectralBackground float64   // radiance of missed rays at every wavelength
}

// FluorescenceNormalization selects how re-radiated fluorescent energy is
// scaled. Absorption is summed over the traced wavelengths with each
// wavelength's sample weight, estimating the sum over the full table.
type FluorescenceNormalization int

const (
	// NormalizeBySampleCount averages over the table, which for a uniform
	// set is the mean over the traced wavelengths
	NormalizeBySampleCount FluorescenceNormalization = iota
	// NormalizeByInverseWavelengthPDF keeps the full-table sum, which for a
	// uniform set is the traced sum times full size / traced count
	NormalizeByInverseWavelengthPDF
)

// Config controls path construction
type Config struct {
	MaxDepth int     // maximum number of bounces
	TMin     float64 // minimum hit distance, keeps secondary rays off their surface

	FluorescenceNormalization FluorescenceNormalization
}

// DefaultConfig returns the settings the bundled scenes are tuned for
func DefaultConfig() Config {
	return Config{
		MaxDepth:                  8,
		TMin:                      0.001,
		FluorescenceNormalization: NormalizeBySampleCount,
	}
}

// scatterPDF combines light sampling with the material's own strategy.
// Without lights the material PDF is used alone.
func scatterPDF(world *World, point core.Vec3, materialPDF pdf.PDF) pdf.PDF {
	if world.Lights == nil {
		return materialPDF
	}
	return pdf.NewMixturePDF(pdf.NewHittablePDF(world.Lights, point), materialPDF)
}
