// Package spectrum implements wavelength-resolved quantities: tabulated
// distributions, their arithmetic, wavelength sub-sampling and conversion
// to sRGB through the CIE color-matching functions.
package spectrum

import "fmt"

// Distribution is an ordered sequence of (wavelength, intensity) pairs.
// Wavelengths are integer nanometres. Two distributions can only be combined
// elementwise when they are co-indexed, i.e. built over the same wavelength
// index set; callers align operands with Gather before combining them.
//
// Every operation returns a new Distribution, so tables shared between
// workers are never mutated.
type Distribution struct {
	wavelengths []int
	intensities []float64
}

// NewDistribution creates a distribution from parallel wavelength and intensity slices
func NewDistribution(wavelengths []int, intensities []float64) Distribution {
	if len(wavelengths) != len(intensities) {
		panic(fmt.Sprintf("spectrum: %d wavelengths but %d intensities", len(wavelengths), len(intensities)))
	}
	return Distribution{
		wavelengths: append([]int(nil), wavelengths...),
		intensities: append([]float64(nil), intensities...),
	}
}

// Len returns the number of samples
func (d Distribution) Len() int {
	return len(d.wavelengths)
}

// Wavelength returns the wavelength of sample i in nanometres
func (d Distribution) Wavelength(i int) int {
	return d.wavelengths[i]
}

// Intensity returns the intensity of sample i
func (d Distribution) Intensity(i int) float64 {
	return d.intensities[i]
}

// Fill returns a distribution over the same wavelengths with every intensity set to value
func (d Distribution) Fill(value float64) Distribution {
	out := Distribution{wavelengths: d.wavelengths, intensities: make([]float64, len(d.intensities))}
	for i := range out.intensities {
		out.intensities[i] = value
	}
	return out
}

// Gather returns the sub-distribution at the given sample indices, in the order given
func (d Distribution) Gather(indices []int) Distribution {
	out := Distribution{
		wavelengths: make([]int, len(indices)),
		intensities: make([]float64, len(indices)),
	}
	for i, index := range indices {
		out.wavelengths[i] = d.wavelengths[index]
		out.intensities[i] = d.intensities[index]
	}
	return out
}

// Add returns d + other
func (d Distribution) Add(other Distribution) Distribution {
	return d.combine(other, func(a, b float64) float64 { return a + b })
}

// Subtract returns d - other, floored at zero
func (d Distribution) Subtract(other Distribution) Distribution {
	return d.combine(other, func(a, b float64) float64 { return max(a-b, 0) })
}

// Multiply returns d * other
func (d Distribution) Multiply(other Distribution) Distribution {
	return d.combine(other, func(a, b float64) float64 { return a * b })
}

// Divide returns d / other; samples where other is zero keep d's intensity
func (d Distribution) Divide(other Distribution) Distribution {
	return d.combine(other, func(a, b float64) float64 {
		if b == 0 {
			return a
		}
		return a / b
	})
}

// AddScalar returns d + s
func (d Distribution) AddScalar(s float64) Distribution {
	return d.apply(func(a float64) float64 { return a + s })
}

// SubtractScalar returns d - s, floored at zero
func (d Distribution) SubtractScalar(s float64) Distribution {
	return d.apply(func(a float64) float64 { return max(a-s, 0) })
}

// Scale returns d * s
func (d Distribution) Scale(s float64) Distribution {
	return d.apply(func(a float64) float64 { return a * s })
}

// DivideScalar returns d / s, or an unchanged copy when s is zero
func (d Distribution) DivideScalar(s float64) Distribution {
	if s == 0 {
		return d.apply(func(a float64) float64 { return a })
	}
	return d.Scale(1 / s)
}

// Sum returns the sum of all intensities
func (d Distribution) Sum() float64 {
	sum := 0.0
	for _, v := range d.intensities {
		sum += v
	}
	return sum
}

// CDF returns the running sum of intensities normalized by the total, so
// the last sample is 1 for any distribution with a positive total
func (d Distribution) CDF() Distribution {
	out := Distribution{wavelengths: d.wavelengths, intensities: make([]float64, len(d.intensities))}
	sum := 0.0
	for i, v := range d.intensities {
		sum += v
		out.intensities[i] = sum
	}
	return out.DivideScalar(sum)
}

// Sanitize returns a copy with NaN and infinite intensities replaced by zero
func (d Distribution) Sanitize() Distribution {
	return d.apply(finiteOrZero)
}

func (d Distribution) apply(f func(float64) float64) Distribution {
	out := Distribution{wavelengths: d.wavelengths, intensities: make([]float64, len(d.intensities))}
	for i, v := range d.intensities {
		out.intensities[i] = f(v)
	}
	return out
}

func (d Distribution) combine(other Distribution, f func(a, b float64) float64) Distribution {
	if len(d.intensities) != len(other.intensities) {
		panic(fmt.Sprintf("spectrum: combining distributions of length %d and %d", len(d.intensities), len(other.intensities)))
	}
	out := Distribution{wavelengths: d.wavelengths, intensities: make([]float64, len(d.intensities))}
	for i, v := range d.intensities {
		out.intensities[i] = f(v, other.intensities[i])
	}
	return out
}
