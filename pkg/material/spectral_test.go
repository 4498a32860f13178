package material

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

func testSpectrum(values ...float64) spectrum.Distribution {
	wavelengths := make([]int, len(values))
	for i := range wavelengths {
		wavelengths[i] = 500 + 10*i
	}
	return spectrum.NewDistribution(wavelengths, values)
}

func TestSpectralLambertian_GathersAlbedo(t *testing.T) {
	albedo := testSpectrum(0.1, 0.2, 0.3, 0.4)
	set := spectrum.NewWavelengthSet(albedo, []int{1, 3})
	mat := NewSpectralLambertian(albedo)

	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	scatter, ok := mat.ScatterSpectral(core.Ray{}, hit, set, core.NewSeededSampler(1))
	if !ok || scatter.Specular || scatter.Fluorescent {
		t.Fatal("Expected a diffuse, non-fluorescent scatter")
	}
	if scatter.Attenuation.Len() != 2 || scatter.Attenuation.Intensity(0) != 0.2 || scatter.Attenuation.Intensity(1) != 0.4 {
		t.Errorf("Expected gathered albedo [0.2 0.4], got %v", scatter.Attenuation)
	}
	if scatter.Attenuation.Wavelength(1) != 530 {
		t.Errorf("Expected wavelength 530, got %d", scatter.Attenuation.Wavelength(1))
	}

	up := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))
	if math.Abs(mat.ScatteringPDF(core.Ray{}, hit, up)-1/math.Pi) > 1e-12 {
		t.Error("Expected 1/π along the normal")
	}
}

func TestSpectralDielectric_UnitAttenuation(t *testing.T) {
	grid := testSpectrum(0, 0, 0)
	set := spectrum.FullSet(grid)
	glass := NewSpectralDielectric(1.5)

	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	scatter, ok := glass.ScatterSpectral(rayIn, hit, set, core.NewSeededSampler(2))
	if !ok || !scatter.Specular {
		t.Fatal("Expected a specular scatter")
	}
	for i := 0; i < scatter.Attenuation.Len(); i++ {
		if scatter.Attenuation.Intensity(i) != 1 {
			t.Errorf("Expected unit attenuation, got %f", scatter.Attenuation.Intensity(i))
		}
		if scatter.Attenuation.Wavelength(i) != grid.Wavelength(i) {
			t.Errorf("Expected wavelength %d, got %d", grid.Wavelength(i), scatter.Attenuation.Wavelength(i))
		}
	}
}

func TestSpectralMetal_Reflects(t *testing.T) {
	albedo := testSpectrum(0.9, 0.5)
	metal := NewSpectralMetal(albedo, 0)
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	scatter, ok := metal.ScatterSpectral(rayIn, hit, spectrum.FullSet(albedo), core.NewSeededSampler(1))
	if !ok || !scatter.Specular {
		t.Fatal("Expected a specular scatter")
	}
	if scatter.SpecularRay.Direction.Subtract(core.NewVec3(1, 1, 0).Normalize()).Length() > 1e-9 {
		t.Errorf("Unexpected reflection %v", scatter.SpecularRay.Direction)
	}
}

func TestSpectralDiffuseLight(t *testing.T) {
	emission := testSpectrum(1, 2, 3)
	light := NewSpectralDiffuseLight(emission)
	set := spectrum.NewWavelengthSet(emission, []int{0, 2})

	front := light.EmittedSpectral(core.Ray{}, HitRecord{FrontFace: true}, set)
	if front.Sum() != 4 {
		t.Errorf("Expected front-face emission sum 4, got %f", front.Sum())
	}
	back := light.EmittedSpectral(core.Ray{}, HitRecord{FrontFace: false}, set)
	if back.Sum() != 0 || back.Len() != 2 {
		t.Errorf("Expected zero back-face emission over 2 samples, got %v", back)
	}
	if _, ok := light.ScatterSpectral(core.Ray{}, HitRecord{}, set, core.NewSeededSampler(1)); ok {
		t.Error("Lights should not scatter")
	}
}
