package material

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/pdf"
)

// Isotropic scatters uniformly in all directions. It is the phase function
// of participating media.
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates a new isotropic material with solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter samples the full sphere of directions
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         pdf.SpherePDF{},
	}, true
}

// ScatteringPDF returns 1/(4π)
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
