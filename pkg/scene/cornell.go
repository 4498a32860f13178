package scene

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/integrator"
	"github.com/df07/go-spectral-raytracer/pkg/loaders"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// NewCornellScene creates the classic Cornell box: a rotated aluminium
// block and a glass sphere under a square ceiling light
func NewCornellScene(opts Options) (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	var back material.Material = material.NewLambertian(core.NewVec3(0.05, 0.05, 0.65))
	if opts.TexturePath != "" {
		texture, err := loaders.LoadTexture(opts.TexturePath)
		if err != nil {
			return nil, err
		}
		back = material.NewTexturedLambertian(texture)
	}

	objects, ceiling := newCornellBox(cornellWalls{
		right:  red,
		left:   green,
		bottom: white,
		top:    white,
		back:   back,
		light:  material.NewDiffuseLight(core.NewVec3(3, 3, 3)),
	})

	// Tall block, turned to face the camera slightly
	aluminium := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	block := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), aluminium)
	objects = append(objects, geometry.NewTranslate(geometry.NewRotateY(block, 15), core.NewVec3(265, 0, 295)))

	objects = append(objects, geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5)))

	return &Scene{
		Camera:     cornellCamera(opts.AspectRatio),
		World:      newWorld(objects, ceiling, opts.Seed),
		Integrator: integrator.NewPathTracer(opts.Integrator),
	}, nil
}

// NewSmokeScene fills the classic Cornell box with two blocks of
// participating media, one dark and one light
func NewSmokeScene(opts Options) (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	objects, ceiling := newCornellBox(cornellWalls{
		right:  red,
		left:   green,
		bottom: white,
		top:    white,
		back:   white,
		light:  material.NewDiffuseLight(core.NewVec3(7, 7, 7)),
	})

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	objects = append(objects,
		geometry.NewConstantMedium(
			geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)),
			0.01, material.NewIsotropic(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMedium(
			geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65)),
			0.01, material.NewIsotropic(core.NewVec3(1, 1, 1))),
	)

	return &Scene{
		Camera:     cornellCamera(opts.AspectRatio),
		World:      newWorld(objects, ceiling, opts.Seed),
		Integrator: integrator.NewPathTracer(opts.Integrator),
	}, nil
}
