package integrator

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// PathTracer implements unidirectional path tracing in RGB
type PathTracer struct {
	config Config
}

// NewPathTracer creates a new RGB path tracer
func NewPathTracer(config Config) *PathTracer {
	return &PathTracer{config: config}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracer) RayColor(ray core.Ray, world *World, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, sampler, pt.config.MaxDepth)
}

func (pt *PathTracer) rayColor(ray core.Ray, world *World, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	var hit material.HitRecord
	if !world.Objects.Hit(ray, pt.config.TMin, math.Inf(1), &hit) {
		return world.Background
	}

	emitted := emittedLight(ray, hit)

	mat, ok := hit.Material.(material.RGBMaterial)
	if !ok {
		return emitted
	}
	scatter, didScatter := mat.Scatter(ray, hit, sampler)
	if !didScatter {
		// Absorbed, or a pure emitter
		return emitted
	}

	if scatter.Specular {
		incoming := pt.rayColor(scatter.SpecularRay, world, sampler, depth-1)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	sampling := scatterPDF(world, hit.Point, scatter.PDF)
	scattered := core.NewRayAt(hit.Point, sampling.Generate(sampler), ray.Time)
	pdfValue := sampling.Value(scattered.Direction)
	if pdfValue <= 0 {
		return emitted
	}

	incoming := pt.rayColor(scattered, world, sampler, depth-1)
	weight := mat.ScatteringPDF(ray, hit, scattered) / pdfValue
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming).Multiply(weight))
}

// emittedLight returns the light emitted at hit if the material is emissive
func emittedLight(ray core.Ray, hit material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emitted(ray, hit)
	}
	return core.Vec3{}
}
