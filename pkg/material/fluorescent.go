package material

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/pdf"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// DefaultQuantumYield is the fraction of absorbed energy a fluorophore re-emits
const DefaultQuantumYield = 0.2

// Fluorescent is a diffuse surface that also absorbs light according to an
// excitation spectrum and re-radiates it through an emission spectrum,
// typically at longer wavelengths. Eta scales the re-radiated energy; with
// Eta = 0 it behaves exactly like a SpectralLambertian with the same albedo.
type Fluorescent struct {
	Albedo     spectrum.Distribution
	Excitation spectrum.Distribution
	Emission   spectrum.Distribution
	Eta        float64
}

// NewFluorescent creates a fluorescent surface with the default quantum yield
func NewFluorescent(albedo, excitation, emission spectrum.Distribution) *Fluorescent {
	return &Fluorescent{Albedo: albedo, Excitation: excitation, Emission: emission, Eta: DefaultQuantumYield}
}

// ScatterSpectral scatters diffusely and reports the fluorescence response
func (f *Fluorescent) ScatterSpectral(rayIn core.Ray, hit HitRecord, wavelengths spectrum.WavelengthSet, sampler core.Sampler) (SpectralScatterRecord, bool) {
	return SpectralScatterRecord{
		Attenuation: wavelengths.Select(f.Albedo),
		PDF:         pdf.NewCosinePDF(hit.Normal),
		Fluorescent: true,
		Excitation:  wavelengths.Select(f.Excitation),
		Emission:    wavelengths.Select(f.Emission).Scale(f.Eta),
	}, true
}

// ScatteringPDF returns max(0, cos θ)/π
func (f *Fluorescent) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return cosineScatteringPDF(hit, scattered)
}
