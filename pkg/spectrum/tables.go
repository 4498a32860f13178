package spectrum

import (
	"embed"
	"io/fs"
	"os"
	"sync"

	"github.com/pkg/errors"
)

//go:embed data/*.csv
var embeddedData embed.FS

// Table file names, shared by the embedded data and -spectra-dir overrides
const (
	FileXBar       = "cie_xbar.csv"
	FileYBar       = "cie_ybar.csv"
	FileZBar       = "cie_zbar.csv"
	FileBlue       = "macbeth_08_purplish_blue.csv"
	FileRed        = "macbeth_09_moderate_red.csv"
	FileWhite      = "macbeth_19_white.csv"
	FileBlack      = "macbeth_24_black.csv"
	FileD65        = "illuminant_d65.csv"
	FileBlackLight = "black_light.csv"
	FileExcitation = "qdot545_excitation.csv"
	FileEmission   = "qdot545_emission.csv"
)

// Tables holds the spectral data every spectral component reads from.
// It is built once before rendering and never modified afterwards, so a
// single instance is shared by all workers.
type Tables struct {
	XBar, YBar, ZBar Distribution

	Blue, Red, White, Black Distribution

	D65        Distribution
	BlackLight Distribution
	Excitation Distribution
	Emission   Distribution

	integralY float64
}

// LoadTables reads every table from fsys. All tables must share the same
// wavelength samples so that they stay co-indexed after sub-sampling.
func LoadTables(fsys fs.FS) (*Tables, error) {
	t := &Tables{}
	targets := []struct {
		file string
		dest *Distribution
	}{
		{FileXBar, &t.XBar},
		{FileYBar, &t.YBar},
		{FileZBar, &t.ZBar},
		{FileBlue, &t.Blue},
		{FileRed, &t.Red},
		{FileWhite, &t.White},
		{FileBlack, &t.Black},
		{FileD65, &t.D65},
		{FileBlackLight, &t.BlackLight},
		{FileExcitation, &t.Excitation},
		{FileEmission, &t.Emission},
	}

	for _, target := range targets {
		d, err := readTable(fsys, target.file)
		if err != nil {
			return nil, err
		}
		if target.dest != &t.XBar && !sameWavelengths(d, t.XBar) {
			return nil, errors.Errorf("%s: wavelengths do not match %s", target.file, FileXBar)
		}
		*target.dest = d
	}

	for i := 1; i < t.XBar.Len(); i++ {
		if t.XBar.Wavelength(i) != t.XBar.Wavelength(0)+i {
			return nil, errors.Errorf("%s: wavelengths must be contiguous 1nm steps", FileXBar)
		}
	}

	t.integralY = t.YBar.Sum()
	if t.integralY <= 0 {
		return nil, errors.Errorf("%s: integral must be positive", FileYBar)
	}
	return t, nil
}

// LoadTablesDir reads every table from a directory on disk
func LoadTablesDir(dir string) (*Tables, error) {
	t, err := LoadTables(os.DirFS(dir))
	return t, errors.Wrapf(err, "loading spectra from %s", dir)
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// DefaultTables returns the tables compiled into the binary
func DefaultTables() (*Tables, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embeddedData, "data")
		if err != nil {
			defaultErr = errors.Wrap(err, "embedded spectra")
			return
		}
		defaultTables, defaultErr = LoadTables(sub)
	})
	return defaultTables, defaultErr
}

func readTable(fsys fs.FS, name string) (Distribution, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Distribution{}, errors.Wrapf(err, "opening %s", name)
	}
	defer f.Close()

	d, err := ReadCSV(f)
	if err != nil {
		return Distribution{}, errors.Wrapf(err, "parsing %s", name)
	}
	return d, nil
}

func sameWavelengths(a, b Distribution) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.wavelengths {
		if a.wavelengths[i] != b.wavelengths[i] {
			return false
		}
	}
	return true
}

// FullSize returns the number of tabulated wavelengths
func (t *Tables) FullSize() int {
	return t.XBar.Len()
}

// IntegralY returns the sum of the Y color-matching function over all tabulated wavelengths
func (t *Tables) IntegralY() float64 {
	return t.integralY
}

// Zero returns an all-zero distribution over the full wavelength range
func (t *Tables) Zero() Distribution {
	return t.XBar.Fill(0)
}
