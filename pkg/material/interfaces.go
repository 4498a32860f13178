package material

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/pdf"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// Material is implemented by everything a surface can be made of.
// Scattering is provided by the optional RGBMaterial and SpectralMaterial
// interfaces, emission by Emitter and SpectralEmitter; integrators check
// for them with type assertions.
type Material interface {
	// ScatteringPDF returns the density with which the material itself
	// scatters rayIn into scattered
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64
}

// RGBMaterial scatters light in trichromatic transport
type RGBMaterial interface {
	Material
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool)
}

// Emitter is implemented by materials that emit RGB radiance
type Emitter interface {
	Emitted(rayIn core.Ray, hit HitRecord) core.Vec3
}

// ScatterRecord describes how an RGB material responded to a hit.
// A specular response carries a single deterministic ray; otherwise PDF
// is the direction-sampling strategy of the material.
type ScatterRecord struct {
	Specular    bool
	SpecularRay core.Ray
	Attenuation core.Vec3
	PDF         pdf.PDF
}

// SpectralMaterial scatters light in wavelength-resolved transport.
// Returned distributions are co-indexed with wavelengths.
type SpectralMaterial interface {
	Material
	ScatterSpectral(rayIn core.Ray, hit HitRecord, wavelengths spectrum.WavelengthSet, sampler core.Sampler) (SpectralScatterRecord, bool)
}

// SpectralEmitter is implemented by materials that emit spectral radiance
type SpectralEmitter interface {
	EmittedSpectral(rayIn core.Ray, hit HitRecord, wavelengths spectrum.WavelengthSet) spectrum.Distribution
}

// SpectralScatterRecord is the spectral counterpart of ScatterRecord.
// When Fluorescent is set, Excitation and Emission describe how absorbed
// energy is re-radiated, with Emission already scaled by the quantum yield.
type SpectralScatterRecord struct {
	Specular    bool
	SpecularRay core.Ray
	Attenuation spectrum.Distribution
	PDF         pdf.PDF

	Fluorescent bool
	Excitation  spectrum.Distribution
	Emission    spectrum.Distribution
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface parametrization at the hit point
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object, owned by the scene
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// cosineScatteringPDF is the density of an ideal diffuse reflector
func cosineScatteringPDF(hit HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}
