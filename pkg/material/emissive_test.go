package material

import (
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

func TestDiffuseLight(t *testing.T) {
	emission := core.NewVec3(15, 15, 15)
	light := NewDiffuseLight(emission)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name      string
		frontFace bool
		expected  core.Vec3
	}{
		{"Front face emits", true, emission},
		{"Back face is black", false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := HitRecord{Point: core.NewVec3(0, 1, 0), Normal: core.NewVec3(0, -1, 0), FrontFace: tt.frontFace}
			if got := light.Emitted(ray, hit); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if _, ok := light.Scatter(ray, hit, core.NewSeededSampler(1)); ok {
				t.Error("Lights should not scatter")
			}
		})
	}
}

func TestIsotropic(t *testing.T) {
	iso := NewIsotropic(core.NewVec3(0.5, 0.5, 0.5))
	scatter, ok := iso.Scatter(core.Ray{}, HitRecord{}, core.NewSeededSampler(1))
	if !ok || scatter.Specular {
		t.Fatal("Isotropic should scatter diffusely")
	}

	dir := core.NewVec3(0, 0, -1)
	if scatter.PDF.Value(dir) != iso.ScatteringPDF(core.Ray{}, HitRecord{}, core.NewRay(core.Vec3{}, dir)) {
		t.Error("Sampling PDF and scattering PDF should match")
	}
}
