package scene

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/integrator"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// Fluorescence switch timeline. A black sphere rolls under white light
// toward a switch on the right wall; the light fades out and the sphere
// rolls back. Then a UV black light ramps up and the sphere, now
// fluorescent, crosses the box again in spectral transport.
const (
	FluorescenceFrames = 100 // total frames of the animation

	rgbStopFrame     = 5  // sphere starts moving
	rgbLightOffFrame = 45 // sphere reaches the switch
	rgbEndFrame      = 60 // first spectral frame
	uvLightOnFrame   = 70 // black light at full power
)

// Fluorescence switch geometry
const (
	sphereRadius         = 55.0
	sphereZ              = 200.0
	sphereRGBStartX      = 100.0
	sphereSpectralStartX = sphereRGBStartX + (545 - sphereRGBStartX - sphereRadius)
	sphereSpectralEndX   = 300.0
	d65Scale             = 0.07
)

// Macbeth chart chips in sRGB, matching the spectral tables
var (
	macbethBlue  = core.NewVec3(80, 91, 166).Divide(255)
	macbethRed   = core.NewVec3(193, 90, 99).Divide(255)
	macbethWhite = core.NewVec3(243, 243, 242).Divide(255)
	macbethBlack = core.NewVec3(52, 52, 52).Divide(255)

	// sRGB of the built-in D65 table, dimmed
	d65Light = core.NewVec3(98.81405459928709, 98.86806020281878, 98.8049065275534).Multiply(d65Scale)
)

// IsSpectralFrame reports whether frame of the fluorescence timeline is
// rendered with spectral transport
func IsSpectralFrame(frame int) bool {
	return frame >= rgbEndFrame
}

// NewFluorescenceScene picks the RGB or spectral variant for opts.Frame
func NewFluorescenceScene(opts Options) (*Scene, error) {
	if IsSpectralFrame(opts.Frame) {
		return NewFluorescenceSpectralScene(opts)
	}
	return NewFluorescenceRGBScene(opts)
}

// rgbAnimation returns the sphere's x position and the light's intensity
// factor for an RGB frame
func rgbAnimation(frame int) (x, light float64) {
	switch {
	case frame >= rgbLightOffFrame:
		t := clamp01(float64(frame-rgbLightOffFrame) / float64(rgbEndFrame-rgbLightOffFrame))
		// ease-in quint fade
		return 545 - sphereRadius - 1.5*sphereRadius*t, math.Pow(1-t, 5)
	case frame > rgbStopFrame:
		t := clamp01(float64(frame-rgbStopFrame) / float64(rgbLightOffFrame-rgbStopFrame))
		return sphereRGBStartX + (545-sphereRGBStartX-sphereRadius)*t, 1
	default:
		return sphereRGBStartX, 1
	}
}

// spectralAnimation returns the sphere's x position and the black light's
// intensity factor for a spectral frame
func spectralAnimation(frame int) (x, uv float64) {
	t := clamp01(float64(frame-rgbEndFrame) / float64(FluorescenceFrames-rgbEndFrame))
	uv = 1
	if frame < uvLightOnFrame {
		uv = clamp01(float64(frame-rgbEndFrame) / float64(uvLightOnFrame-rgbEndFrame))
	}
	return sphereSpectralStartX*(1-t) + sphereSpectralEndX*t, uv
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}

// switchBox is the black plate on the right wall the sphere rolls into
func switchBox(mat material.Material) geometry.Hittable {
	return geometry.NewBox(
		core.NewVec3(545, sphereRadius-10, sphereZ-50),
		core.NewVec3(555, sphereRadius+10, sphereZ+50),
		mat)
}

// NewFluorescenceRGBScene renders an RGB frame of the fluorescence switch
func NewFluorescenceRGBScene(opts Options) (*Scene, error) {
	x, light := rgbAnimation(opts.Frame)

	red := material.NewLambertian(macbethRed)
	white := material.NewLambertian(macbethWhite)
	black := material.NewLambertian(macbethBlack)
	objects, ceiling := newCornellBox(cornellWalls{
		right:  red,
		left:   red,
		bottom: white,
		top:    white,
		back:   material.NewLambertian(macbethBlue),
		light:  material.NewDiffuseLight(d65Light.Multiply(light)),
	})
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(x, sphereRadius, sphereZ), sphereRadius, black),
		switchBox(black),
	)

	return &Scene{
		Camera:     cornellCamera(opts.AspectRatio),
		World:      newWorld(objects, ceiling, opts.Seed),
		Integrator: integrator.NewPathTracer(opts.Integrator),
	}, nil
}

// NewFluorescenceSpectralScene renders a spectral frame of the fluorescence
// switch, with a quantum-dot sphere lit by a UV black light
func NewFluorescenceSpectralScene(opts Options) (*Scene, error) {
	tables := opts.Tables
	if tables == nil {
		var err error
		if tables, err = spectrum.DefaultTables(); err != nil {
			return nil, err
		}
	}

	importance := spectrum.ImportanceDistribution(
		tables.BlackLight, lightWidth*lightWidth,
		tables.Emission, spectrum.SphereArea(sphereRadius))
	wavelengths, err := spectrum.NewWavelengthSampler(opts.Wavelengths, opts.WavelengthSamples, tables.Zero(), importance)
	if err != nil {
		return nil, err
	}

	x, uv := spectralAnimation(opts.Frame)

	red := material.NewSpectralLambertian(tables.Red)
	white := material.NewSpectralLambertian(tables.White)
	black := material.NewSpectralLambertian(tables.Black)
	objects, ceiling := newCornellBox(cornellWalls{
		right:  red,
		left:   red,
		bottom: white,
		top:    white,
		back:   material.NewSpectralLambertian(tables.Blue),
		light:  material.NewSpectralDiffuseLight(tables.BlackLight.Scale(uv)),
	})
	fluorescent := material.NewFluorescent(tables.Black, tables.Excitation, tables.Emission)
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(x, sphereRadius, sphereZ), sphereRadius, fluorescent),
		switchBox(black),
	)

	return &Scene{
		Camera:     cornellCamera(opts.AspectRatio),
		World:      newWorld(objects, ceiling, opts.Seed),
		Integrator: integrator.NewSpectralPathTracer(opts.Integrator, tables, wavelengths),
	}, nil
}
