package material

import (
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

func TestFluorescent_ScatterRecord(t *testing.T) {
	albedo := testSpectrum(0.5, 0.5, 0.5)
	excitation := testSpectrum(1, 0.5, 0)
	emission := testSpectrum(0, 0.5, 1)
	fluor := NewFluorescent(albedo, excitation, emission)

	if fluor.Eta != DefaultQuantumYield {
		t.Errorf("Expected default eta %f, got %f", DefaultQuantumYield, fluor.Eta)
	}

	set := spectrum.FullSet(albedo)
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	scatter, ok := fluor.ScatterSpectral(core.Ray{}, hit, set, core.NewSeededSampler(1))
	if !ok || !scatter.Fluorescent || scatter.Specular {
		t.Fatal("Expected a diffuse fluorescent scatter")
	}
	if scatter.Excitation.Intensity(0) != 1 {
		t.Errorf("Expected excitation 1 at first sample, got %f", scatter.Excitation.Intensity(0))
	}
	if scatter.Emission.Intensity(2) != DefaultQuantumYield {
		t.Errorf("Expected emission scaled by eta, got %f", scatter.Emission.Intensity(2))
	}
}

func TestFluorescent_ZeroEtaMatchesLambertian(t *testing.T) {
	albedo := testSpectrum(0.3, 0.6, 0.9)
	fluor := NewFluorescent(albedo, testSpectrum(1, 1, 1), testSpectrum(1, 1, 1))
	fluor.Eta = 0
	lambert := NewSpectralLambertian(albedo)

	set := spectrum.FullSet(albedo)
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	fs, _ := fluor.ScatterSpectral(core.Ray{}, hit, set, core.NewSeededSampler(5))
	ls, _ := lambert.ScatterSpectral(core.Ray{}, hit, set, core.NewSeededSampler(5))

	if fs.Emission.Sum() != 0 {
		t.Errorf("Expected no re-emission with eta 0, got %f", fs.Emission.Sum())
	}
	for i := 0; i < fs.Attenuation.Len(); i++ {
		if fs.Attenuation.Intensity(i) != ls.Attenuation.Intensity(i) {
			t.Errorf("Attenuation differs at %d: %f vs %f", i, fs.Attenuation.Intensity(i), ls.Attenuation.Intensity(i))
		}
	}

	a := fs.PDF.Generate(core.NewSeededSampler(9))
	b := ls.PDF.Generate(core.NewSeededSampler(9))
	if a != b {
		t.Errorf("Expected identical sampled directions, got %v and %v", a, b)
	}
}
