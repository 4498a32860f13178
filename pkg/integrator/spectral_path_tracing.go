package integrator

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// SpectralPathTracer traces each camera sample at a set of wavelengths
// and converts the resulting spectrum to RGB. Fluorescent surfaces move
// energy between wavelengths of the set.
type SpectralPathTracer struct {
	config      Config
	tables      *spectrum.Tables
	wavelengths *spectrum.WavelengthSampler
}

// NewSpectralPathTracer creates a spectral path tracer. tables supplies the
// color-matching functions and wavelengths picks the set for each sample.
func NewSpectralPathTracer(config Config, tables *spectrum.Tables, wavelengths *spectrum.WavelengthSampler) *SpectralPathTracer {
	return &SpectralPathTracer{config: config, tables: tables, wavelengths: wavelengths}
}

// RayColor draws a wavelength set, traces the ray and returns linear sRGB
func (st *SpectralPathTracer) RayColor(ray core.Ray, world *World, sampler core.Sampler) core.Vec3 {
	set := st.wavelengths.Sample(sampler)
	radiance := st.RaySpectrum(ray, world, set, sampler)
	return st.tables.SetToRGB(set, radiance.Sanitize())
}

// RaySpectrum returns the radiance along ray at each wavelength of set
func (st *SpectralPathTracer) RaySpectrum(ray core.Ray, world *World, set spectrum.WavelengthSet, sampler core.Sampler) spectrum.Distribution {
	return st.raySpectrum(ray, world, set, sampler, st.config.MaxDepth)
}

func (st *SpectralPathTracer) raySpectrum(ray core.Ray, world *World, set spectrum.WavelengthSet, sampler core.Sampler, depth int) spectrum.Distribution {
	if depth <= 0 {
		return set.Constant(0)
	}

	var hit material.HitRecord
	if !world.Objects.Hit(ray, st.config.TMin, math.Inf(1), &hit) {
		return set.Constant(world.SpectralBackground)
	}

	emitted := set.Constant(0)
	if emitter, isEmissive := hit.Material.(material.SpectralEmitter); isEmissive {
		emitted = emitter.EmittedSpectral(ray, hit, set)
	}

	mat, ok := hit.Material.(material.SpectralMaterial)
	if !ok {
		return emitted
	}
	scatter, didScatter := mat.ScatterSpectral(ray, hit, set, sampler)
	if !didScatter {
		return emitted
	}

	if scatter.Specular {
		incoming := st.raySpectrum(scatter.SpecularRay, world, set, sampler, depth-1)
		return emitted.Add(scatter.Attenuation.Multiply(incoming))
	}

	sampling := scatterPDF(world, hit.Point, scatter.PDF)
	scattered := core.NewRayAt(hit.Point, sampling.Generate(sampler), ray.Time)
	pdfValue := sampling.Value(scattered.Direction)
	if pdfValue <= 0 {
		return emitted
	}

	incoming := st.raySpectrum(scattered, world, set, sampler, depth-1)
	weight := mat.ScatteringPDF(ray, hit, scattered) / pdfValue
	result := emitted.Add(scatter.Attenuation.Multiply(incoming).Scale(weight))

	if scatter.Fluorescent {
		// Energy absorbed across the whole set is re-emitted through the
		// emission spectrum, which already carries the quantum yield
		absorbed := set.WeightedSum(scatter.Excitation.Multiply(incoming))
		result = result.Add(scatter.Emission.Scale(absorbed * st.fluorescenceNorm(set)))
	}
	return result
}

// fluorescenceNorm scales the estimated full-table absorption. Dividing by
// the table size matches averaging over a uniformly drawn set.
func (st *SpectralPathTracer) fluorescenceNorm(set spectrum.WavelengthSet) float64 {
	if st.config.FluorescenceNormalization == NormalizeByInverseWavelengthPDF {
		return 1
	}
	return 1 / float64(set.FullSize())
}
