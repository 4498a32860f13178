package material

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// DiffuseLight is an area light material that emits from its front face only
type DiffuseLight struct {
	Emission ColorSource
}

// NewDiffuseLight creates a new light with uniform emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// Scatter never scatters: lights absorb everything that reaches them
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF is zero since nothing is scattered
func (e *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission on the front face and black on the back
func (e *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emission.Evaluate(hit.UV, hit.Point)
}
