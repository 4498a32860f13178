package spectrum

import (
	"math"
	"sort"
	"strings"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/pkg/errors"
)

// Strategy selects how wavelengths are drawn for each camera sample
type Strategy int

const (
	// StrategyFull uses every tabulated wavelength
	StrategyFull Strategy = iota
	// StrategyUniform draws a uniform random subset of fixed size
	StrategyUniform
	// StrategyImportance draws from the CDF of an importance distribution
	StrategyImportance
)

// DefaultSampleSize is the number of wavelengths drawn per camera sample
const DefaultSampleSize = 81

// ParseStrategy converts a CLI name to a Strategy
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "full":
		return StrategyFull, nil
	case "uniform":
		return StrategyUniform, nil
	case "importance":
		return StrategyImportance, nil
	}
	return 0, errors.Errorf("unknown wavelength strategy %q (want full, uniform or importance)", name)
}

func (s Strategy) String() string {
	switch s {
	case StrategyFull:
		return "full"
	case StrategyUniform:
		return "uniform"
	case StrategyImportance:
		return "importance"
	}
	return "unknown"
}

// WavelengthSet is the ascending list of table indices traced by one camera
// sample. Weights[i] is the Monte Carlo weight 1/(N p) of Indices[i], so a
// weighted sum over the set estimates the sum over the full table.
type WavelengthSet struct {
	Indices []int
	Weights []float64
	grid    Distribution
}

// NewWavelengthSet creates a set of indices into grid, a distribution
// spanning the full table, with the equal weights of uniform selection
func NewWavelengthSet(grid Distribution, indices []int) WavelengthSet {
	weights := make([]float64, len(indices))
	for i := range weights {
		weights[i] = float64(grid.Len()) / float64(len(indices))
	}
	return WavelengthSet{Indices: indices, Weights: weights, grid: grid}
}

// Len returns the number of wavelengths in the set
func (s WavelengthSet) Len() int {
	return len(s.Indices)
}

// FullSize returns the number of wavelengths in the table the set was drawn from
func (s WavelengthSet) FullSize() int {
	return s.grid.Len()
}

// WeightedSum returns the estimate of the full-table sum of d, a
// distribution over the set's wavelengths
func (s WavelengthSet) WeightedSum(d Distribution) float64 {
	sum := 0.0
	for i, w := range s.Weights {
		sum += w * d.Intensity(i)
	}
	return sum
}

// Select returns the sub-distribution of d at the set's indices
func (s WavelengthSet) Select(d Distribution) Distribution {
	return d.Gather(s.Indices)
}

// Constant returns a distribution over the set's wavelengths with every
// intensity set to value
func (s WavelengthSet) Constant(value float64) Distribution {
	return s.grid.Gather(s.Indices).Fill(value)
}

// WavelengthSampler draws wavelength sets. It only reads its own fields
// after construction and is safe for concurrent use.
type WavelengthSampler struct {
	strategy Strategy
	size     int
	fullSize int
	grid     Distribution
	cdf      []float64
	pmf      []float64
}

// NewWavelengthSampler creates a sampler over the wavelengths of grid.
// importance is only read by StrategyImportance and must span the same table.
func NewWavelengthSampler(strategy Strategy, size int, grid, importance Distribution) (*WavelengthSampler, error) {
	fullSize := grid.Len()
	if fullSize <= 0 {
		return nil, errors.New("wavelength table is empty")
	}
	if strategy != StrategyFull && (size <= 0 || size > fullSize) {
		return nil, errors.Errorf("wavelength sample size %d outside [1, %d]", size, fullSize)
	}

	w := &WavelengthSampler{strategy: strategy, size: size, fullSize: fullSize, grid: grid.Fill(0)}
	if strategy == StrategyFull {
		w.size = fullSize
	}
	if strategy == StrategyImportance {
		if importance.Len() != fullSize {
			return nil, errors.Errorf("importance distribution has %d samples, want %d", importance.Len(), fullSize)
		}
		if importance.Sum() <= 0 {
			return nil, errors.New("importance distribution has no energy")
		}
		cdf := importance.CDF()
		w.cdf = append([]float64(nil), cdf.intensities...)
		w.pmf = importance.DivideScalar(importance.Sum()).intensities
	}
	return w, nil
}

// Strategy returns the configured strategy
func (w *WavelengthSampler) Strategy() Strategy {
	return w.strategy
}

// Sample draws one wavelength set
func (w *WavelengthSampler) Sample(sampler core.Sampler) WavelengthSet {
	switch w.strategy {
	case StrategyUniform:
		return NewWavelengthSet(w.grid, w.sampleUniform(sampler))
	case StrategyImportance:
		indices := w.sampleImportance(sampler)
		weights := make([]float64, len(indices))
		for i, index := range indices {
			weights[i] = 1 / (float64(len(indices)) * w.pmf[index])
		}
		return WavelengthSet{Indices: indices, Weights: weights, grid: w.grid}
	default:
		return FullSet(w.grid)
	}
}

// FullSet returns the set of every wavelength of grid
func FullSet(grid Distribution) WavelengthSet {
	indices := make([]int, grid.Len())
	for i := range indices {
		indices[i] = i
	}
	return NewWavelengthSet(grid, indices)
}

// sampleUniform picks size distinct indices with a partial Fisher-Yates
// shuffle and returns them sorted
func (w *WavelengthSampler) sampleUniform(sampler core.Sampler) []int {
	pool := make([]int, w.fullSize)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < w.size; i++ {
		j := i + int(sampler.Get1D()*float64(w.fullSize-i))
		if j >= w.fullSize {
			j = w.fullSize - 1
		}
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := pool[:w.size]
	sort.Ints(out)
	return out
}

// sampleImportance draws size independent indices by inverting the CDF.
// The uniforms are sorted first so one forward scan serves them all and the
// indices come out ascending. An index may be drawn more than once.
func (w *WavelengthSampler) sampleImportance(sampler core.Sampler) []int {
	draws := make([]float64, w.size)
	for i := range draws {
		draws[i] = sampler.Get1D()
	}
	sort.Float64s(draws)

	indices := make([]int, 0, w.size)
	x := 0
	for _, u := range draws {
		for x < len(w.cdf)-1 && u >= w.cdf[x] {
			x++
		}
		// rounding can leave a trailing zero-probability entry
		for x > 0 && w.pmf[x] == 0 {
			x--
		}
		indices = append(indices, x)
	}
	return indices
}

// ImportanceDistribution builds the 50/50 mixture of a light-source PDF
// and a fluorescence-emission PDF used by StrategyImportance. Each spectrum
// is normalized to unit sum and weighted by the emitting surface area.
func ImportanceDistribution(light Distribution, lightArea float64, emission Distribution, emitterArea float64) Distribution {
	lightPDF := light.Scale(lightArea / light.Sum())
	emissionPDF := emission.Scale(emitterArea / emission.Sum())
	return lightPDF.Scale(0.5).Add(emissionPDF.Scale(0.5))
}

// SphereArea returns the surface area of a sphere, for ImportanceDistribution
func SphereArea(radius float64) float64 {
	return 4 * math.Pi * radius * radius
}
