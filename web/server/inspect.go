package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/scene"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// spectrumInfo summarizes a distribution by its size and peak
func spectrumInfo(d spectrum.Distribution) map[string]interface{} {
	info := map[string]interface{}{"samples": d.Len()}
	peak := -1
	for i := 0; i < d.Len(); i++ {
		if peak < 0 || d.Intensity(i) > d.Intensity(peak) {
			peak = i
		}
	}
	if peak >= 0 {
		info["peakWavelength"] = d.Wavelength(peak)
		info["peakIntensity"] = d.Intensity(peak)
	}
	return info
}

// extractMaterialInfo describes the material at a hit
func extractMaterialInfo(mat material.Material, hit material.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vec(albedo)
		properties["color"] = hexColor(albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vec(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzz"] = m.Fuzz
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff"
		return "dielectric", properties

	case *material.Isotropic:
		properties["albedo"] = vec(m.Albedo.Evaluate(hit.UV, hit.Point))
		return "isotropic", properties

	case *material.DiffuseLight:
		emission := m.Emission.Evaluate(hit.UV, hit.Point)
		properties["emission"] = vec(emission)
		properties["color"] = hexColor(emission)
		return "diffuse_light", properties

	case *material.SpectralLambertian:
		properties["albedo"] = spectrumInfo(m.Albedo)
		return "spectral_lambertian", properties

	case *material.SpectralMetal:
		properties["albedo"] = spectrumInfo(m.Albedo)
		properties["fuzz"] = m.Fuzz
		return "spectral_metal", properties

	case *material.SpectralDielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "spectral_dielectric", properties

	case *material.SpectralIsotropic:
		properties["albedo"] = spectrumInfo(m.Albedo)
		return "spectral_isotropic", properties

	case *material.SpectralDiffuseLight:
		properties["emission"] = spectrumInfo(m.Emission)
		return "spectral_diffuse_light", properties

	case *material.Fluorescent:
		properties["albedo"] = spectrumInfo(m.Albedo)
		properties["excitation"] = spectrumInfo(m.Excitation)
		properties["emission"] = spectrumInfo(m.Emission)
		properties["quantumYield"] = m.Eta
		return "fluorescent", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the centre of pixel (x, y), with y
// counted from the top of the image, and describes the first hit
func inspectPixel(s *scene.Scene, width, height, x, y int) InspectResponse {
	sampler := core.NewSeededSampler(0)
	u := (float64(x) + 0.5) / float64(width)
	v := 1 - (float64(y)+0.5)/float64(height)
	ray := s.Camera.GetRay(u, v, sampler)

	var hit material.HitRecord
	if !s.World.Objects.Hit(ray, 0.001, math.Inf(1), &hit) {
		return InspectResponse{Hit: false}
	}

	materialType, properties := extractMaterialInfo(hit.Material, hit)
	return InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vec(hit.Point),
		Normal:       vec(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties:   properties,
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(c echo.Context) error {
	req, err := parseRenderRequest(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	var x, y int
	err = echo.QueryParamsBinder(c).
		MustInt("x", &x).
		MustInt("y", &y).
		BindError()
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	if x < 0 || x >= req.Width || y < 0 || y >= req.Height {
		return jsonError(c, http.StatusBadRequest, errors.Errorf("pixel (%d, %d) outside %dx%d image", x, y, req.Width, req.Height))
	}

	sceneObj, err := req.buildScene()
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, inspectPixel(sceneObj, req.Width, req.Height, x, y))
}
