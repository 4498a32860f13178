package material

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Specular {
		t.Error("Lambertian scatter should not be specular")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}

	// The material's sampling PDF and its scattering PDF must agree
	for i := 0; i < 100; i++ {
		dir := scatter.PDF.Generate(sampler)
		scattered := core.NewRay(hit.Point, dir)
		expected := math.Max(0, dir.Normalize().Dot(normal)) / math.Pi

		if got := lambertian.ScatteringPDF(ray, hit, scattered); math.Abs(got-expected) > 1e-10 {
			t.Errorf("ScatteringPDF mismatch: got %f, expected %f", got, expected)
		}
		if got := scatter.PDF.Value(dir); math.Abs(got-expected) > 1e-10 {
			t.Errorf("PDF value mismatch: got %f, expected %f", got, expected)
		}
	}
}

func TestLambertian_ScatteringPDFBelowSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}
	below := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0))

	if pdf := lambertian.ScatteringPDF(core.Ray{}, hit, below); pdf != 0 {
		t.Errorf("Expected zero density below the surface, got %f", pdf)
	}
}

func TestLambertian_Textured(t *testing.T) {
	checker := NewCheckerTexture(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), 10)
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewSeededSampler(1)

	// sin(10*0.1)^3 > 0 selects the even color
	hit := HitRecord{Point: core.NewVec3(0.1, 0.1, 0.1), Normal: core.NewVec3(0, 1, 0)}
	scatter, _ := lambertian.Scatter(core.Ray{}, hit, sampler)
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected even color, got %v", scatter.Attenuation)
	}

	// Flipping one coordinate flips the sign
	hit.Point = core.NewVec3(-0.1, 0.1, 0.1)
	scatter, _ = lambertian.Scatter(core.Ray{}, hit, sampler)
	if scatter.Attenuation != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected odd color, got %v", scatter.Attenuation)
	}
}
