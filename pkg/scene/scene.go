// Package scene builds the worlds, cameras and integrators the renderer traces.
package scene

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/integrator"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/renderer"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera     *renderer.Camera
	World      *integrator.World
	Integrator integrator.Integrator
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the traced world
func (s *Scene) GetWorld() *integrator.World {
	return s.World
}

// GetIntegrator returns the light transport algorithm for this scene
func (s *Scene) GetIntegrator() integrator.Integrator {
	return s.Integrator
}

// Options are the inputs shared by the scene constructors
type Options struct {
	AspectRatio float64 // image width / height
	Frame       int     // animation frame, see FluorescenceFrames
	Seed        int64   // seeds BVH construction
	Integrator  integrator.Config

	// Spectral scenes only
	Tables            *spectrum.Tables
	Wavelengths       spectrum.Strategy
	WavelengthSamples int

	// TexturePath, if set, is an image mapped onto the back wall of the classic Cornell box
	TexturePath string
}

// DefaultOptions returns options for a square single-frame render
func DefaultOptions() Options {
	return Options{
		AspectRatio:       1,
		Seed:              42,
		Integrator:        integrator.DefaultConfig(),
		Wavelengths:       spectrum.StrategyUniform,
		WavelengthSamples: spectrum.DefaultSampleSize,
	}
}

// Cornell box dimensions shared by every scene
const (
	boxSize    = 555.0
	lightWidth = 150.0
)

// cornellCamera looks into the open front of the box
func cornellCamera(aspectRatio float64) *renderer.Camera {
	if aspectRatio <= 0 {
		aspectRatio = 1
	}
	return renderer.NewCamera(renderer.CameraConfig{
		Center:        core.NewVec3(278, 278, -800), // outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          40,
		Aperture:      0, // no depth of field
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})
}

// cornellWalls holds one material per side of the box
type cornellWalls struct {
	right, left, bottom, top, back material.Material
	light                          material.Material
}

// newCornellBox builds the five walls and the ceiling light. The light is
// flipped in the object list so its front face points down into the box;
// the unflipped rectangle is returned for light sampling.
func newCornellBox(walls cornellWalls) ([]geometry.Hittable, *geometry.AARect) {
	x0 := (boxSize - lightWidth) / 2
	x1 := x0 + lightWidth
	ceiling := geometry.NewXZRect(x0, x1, x0, x1, boxSize-1, walls.light)
	return []geometry.Hittable{
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, walls.right),
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, walls.left),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, walls.bottom),
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, walls.top),
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, walls.back),
		geometry.NewFlipFace(ceiling),
	}, ceiling
}

// newWorld wraps objects in a BVH built with a deterministic sampler
func newWorld(objects []geometry.Hittable, lights geometry.Hittable, seed int64) *integrator.World {
	return &integrator.World{
		Objects: geometry.NewBVH(objects, 0, 1, core.NewSeededSampler(seed)),
		Lights:  lights,
	}
}
