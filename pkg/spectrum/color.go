package spectrum

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// XYZ to linear sRGB (D65 white point)
var xyzToSRGB = [3]core.Vec3{
	{X: 3.2404542, Y: -1.5371385, Z: -0.4985314},
	{X: -0.9692660, Y: 1.8760108, Z: 0.0415560},
	{X: 0.0556434, Y: -0.2040259, Z: 1.0572252},
}

// ToXYZ integrates d against the CIE color-matching functions. The result
// is scaled by (full count / d's count) / integral of Y, which makes a
// uniformly sub-sampled distribution an unbiased estimate of the full
// integral. Wavelengths outside the tabulated range contribute nothing.
func (t *Tables) ToXYZ(d Distribution) core.Vec3 {
	if d.Len() == 0 {
		return core.Vec3{}
	}
	return t.weightedXYZ(d, func(int) float64 {
		return float64(t.FullSize()) / float64(d.Len())
	})
}

// SetToXYZ integrates d, a distribution over the wavelengths of set, using
// the set's sample weights
func (t *Tables) SetToXYZ(set WavelengthSet, d Distribution) core.Vec3 {
	if d.Len() == 0 || d.Len() != set.Len() {
		return core.Vec3{}
	}
	return t.weightedXYZ(d, func(i int) float64 { return set.Weights[i] })
}

func (t *Tables) weightedXYZ(d Distribution, weight func(i int) float64) core.Vec3 {
	first := t.XBar.Wavelength(0)
	var xyz core.Vec3
	for i := 0; i < d.Len(); i++ {
		index := d.Wavelength(i) - first
		if index < 0 || index >= t.XBar.Len() {
			continue
		}
		intensity := d.Intensity(i) * weight(i)
		xyz.X += intensity * t.XBar.Intensity(index)
		xyz.Y += intensity * t.YBar.Intensity(index)
		xyz.Z += intensity * t.ZBar.Intensity(index)
	}
	return xyz.Divide(t.integralY)
}

// ToRGB converts d to linear sRGB
func (t *Tables) ToRGB(d Distribution) core.Vec3 {
	return xyzToRGB(t.ToXYZ(d))
}

// SetToRGB converts d, traced over set, to linear sRGB
func (t *Tables) SetToRGB(set WavelengthSet, d Distribution) core.Vec3 {
	return xyzToRGB(t.SetToXYZ(set, d))
}

func xyzToRGB(xyz core.Vec3) core.Vec3 {
	return core.NewVec3(xyzToSRGB[0].Dot(xyz), xyzToSRGB[1].Dot(xyz), xyzToSRGB[2].Dot(xyz))
}

func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
