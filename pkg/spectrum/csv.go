package spectrum

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadCSV parses a spectral table with a "Wavelength,Intensity" header.
// Lines before the header and columns after the second are ignored.
func ReadCSV(r io.Reader) (Distribution, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headerFound := false
	var wavelengths []int
	var intensities []float64

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Distribution{}, errors.Wrapf(err, "line %d", line)
		}

		if !headerFound {
			if len(record) >= 2 &&
				strings.EqualFold(strings.TrimSpace(record[0]), "Wavelength") &&
				strings.EqualFold(strings.TrimSpace(record[1]), "Intensity") {
				headerFound = true
			}
			continue
		}

		if len(record) < 2 {
			return Distribution{}, errors.Errorf("line %d: expected 2 columns, got %d", line, len(record))
		}
		wavelength, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return Distribution{}, errors.Wrapf(err, "line %d: invalid wavelength", line)
		}
		intensity, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return Distribution{}, errors.Wrapf(err, "line %d: invalid intensity", line)
		}
		wavelengths = append(wavelengths, int(math.Round(wavelength)))
		intensities = append(intensities, intensity)
	}

	if !headerFound {
		return Distribution{}, errors.New("missing Wavelength,Intensity header")
	}
	if len(wavelengths) == 0 {
		return Distribution{}, errors.New("no samples")
	}
	return Distribution{wavelengths: wavelengths, intensities: intensities}, nil
}
