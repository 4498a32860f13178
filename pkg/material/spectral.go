package material

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/pdf"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// Spectral materials hold full-range distributions and gather them down to
// the traced wavelength set at every scatter, so everything they return is
// co-indexed with the path's wavelengths.

// SpectralLambertian is a perfectly diffuse surface with a reflectance spectrum
type SpectralLambertian struct {
	Albedo spectrum.Distribution
}

// NewSpectralLambertian creates a diffuse surface
func NewSpectralLambertian(albedo spectrum.Distribution) *SpectralLambertian {
	return &SpectralLambertian{Albedo: albedo}
}

// ScatterSpectral samples directions cosine-weighted about the normal
func (l *SpectralLambertian) ScatterSpectral(rayIn core.Ray, hit HitRecord, wavelengths spectrum.WavelengthSet, sampler core.Sampler) (SpectralScatterRecord, bool) {
	return SpectralScatterRecord{
		Attenuation: wavelengths.Select(l.Albedo),
		PDF:         pdf.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns max(0, cos θ)/π
func (l *SpectralLambertian) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return cosineScatteringPDF(hit, scattered)
}

// SpectralMetal is a mirror-like surface with a reflectance spectrum
type SpectralMetal struct {
	Albedo spectrum.Distribution
	Fuzz   float64
}

// NewSpectralMetal creates a metal, clamping fuzz to [0, 1]
func NewSpectralMetal(albedo spectrum.Distribution, fuzz float64) *SpectralMetal {
	return &SpectralMetal{Albedo: albedo, Fuzz: clampFuzz(fuzz)}
}

// ScatterSpectral reflects the ray, absorbing it when fuzz pushes it below the surface
func (m *SpectralMetal) ScatterSpectral(rayIn core.Ray, hit HitRecord, wavelengths spectrum.WavelengthSet, sampler core.Sampler) (SpectralScatterRecord, bool) {
	scattered, ok := fuzzyReflect(rayIn, hit, m.Fuzz, sampler)
	if !ok {
		return SpectralScatterRecord{}, false
	}
	return SpectralScatterRecord{
		Specular:    true,
		SpecularRay: scattered,
		Attenuation: wavelengths.Select(m.Albedo),
	}, true
}

// ScatteringPDF is zero: reflection is a delta distribution
func (m *SpectralMetal) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// SpectralDielectric is clear glass with a wavelength-independent index of refraction
type SpectralDielectric struct {
	RefractiveIndex float64
}

// NewSpectralDielectric creates a dielectric
func NewSpectralDielectric(refractiveIndex float64) *SpectralDielectric {
	return &SpectralDielectric{RefractiveIndex: refractiveIndex}
}

// ScatterSpectral reflects or refracts with the Schlick reflectance as probability
func (d *SpectralDielectric) ScatterSpectral(rayIn core.Ray, hit HitRecord, wavelengths spectrum.WavelengthSet, sampler core.Sampler) (SpectralScatterRecord, bool) {
	return SpectralScatterRecord{
		Specular:    true,
		SpecularRay: refractOrReflect(rayIn, hit, d.RefractiveIndex, sampler),
		Attenuation: wavelengths.Constant(1),
	}, true
}

// ScatteringPDF is zero: refraction and reflection are delta distributions
func (d *SpectralDielectric) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// SpectralIsotropic is the phase function of a participating medium
type SpectralIsotropic struct {
	Albedo spectrum.Distribution
}

// NewSpectralIsotropic creates an isotropic medium material
func NewSpectralIsotropic(albedo spectrum.Distribution) *SpectralIsotropic {
	return &SpectralIsotropic{Albedo: albedo}
}

// ScatterSpectral samples the full sphere of directions
func (i *SpectralIsotropic) ScatterSpectral(rayIn core.Ray, hit HitRecord, wavelengths spectrum.WavelengthSet, sampler core.Sampler) (SpectralScatterRecord, bool) {
	return SpectralScatterRecord{
		Attenuation: wavelengths.Select(i.Albedo),
		PDF:         pdf.SpherePDF{},
	}, true
}

// ScatteringPDF returns 1/(4π)
func (i *SpectralIsotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}

// SpectralDiffuseLight emits a spectrum from its front face only
type SpectralDiffuseLight struct {
	Emission spectrum.Distribution
}

// NewSpectralDiffuseLight creates an area light
func NewSpectralDiffuseLight(emission spectrum.Distribution) *SpectralDiffuseLight {
	return &SpectralDiffuseLight{Emission: emission}
}

// ScatterSpectral never scatters
func (e *SpectralDiffuseLight) ScatterSpectral(rayIn core.Ray, hit HitRecord, wavelengths spectrum.WavelengthSet, sampler core.Sampler) (SpectralScatterRecord, bool) {
	return SpectralScatterRecord{}, false
}

// ScatteringPDF is zero since nothing is scattered
func (e *SpectralDiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// EmittedSpectral returns the emission on the front face and zero on the back
func (e *SpectralDiffuseLight) EmittedSpectral(rayIn core.Ray, hit HitRecord, wavelengths spectrum.WavelengthSet) spectrum.Distribution {
	emission := wavelengths.Select(e.Emission)
	if !hit.FrontFace {
		return emission.Fill(0)
	}
	return emission
}
