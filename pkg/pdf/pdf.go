// Package pdf provides direction sampling strategies used to importance
// sample scattered rays and the mixture that combines them.
package pdf

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// PDF is a sampling strategy over directions
type PDF interface {
	// Value returns the solid-angle density of sampling direction
	Value(direction core.Vec3) float64
	// Generate draws a direction from the distribution
	Generate(sampler core.Sampler) core.Vec3
}

// Target is something a direction can be aimed at, typically a light shape
type Target interface {
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// CosinePDF samples the hemisphere around a normal proportional to cos θ
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine-weighted PDF about normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONB(normal)}
}

// Value returns max(0, cos θ)/π
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.SampleCosineDirection(sampler.Get2D()))
}

// SpherePDF samples all directions uniformly
type SpherePDF struct{}

// Value returns 1/(4π)
func (SpherePDF) Value(direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate draws a uniform direction on the unit sphere
func (SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// HittablePDF samples directions from an origin toward a target shape
type HittablePDF struct {
	target Target
	origin core.Vec3
}

// NewHittablePDF creates a PDF aimed at target from origin
func NewHittablePDF(target Target, origin core.Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

// Value returns the target's solid-angle density for direction
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate draws a direction toward a random point on the target
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.target.Random(p.origin, sampler)
}

// MixturePDF is an equal-weight mixture of two PDFs. Generate picks either
// child with a fair coin, but Value always evaluates both, which keeps the
// estimate unbiased whichever strategy produced the direction.
type MixturePDF struct {
	p [2]PDF
}

// NewMixturePDF creates the 50/50 mixture of p0 and p1
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{p: [2]PDF{p0, p1}}
}

// Value returns 0.5*p0(direction) + 0.5*p1(direction)
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate draws a direction from one child chosen uniformly
func (m *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
