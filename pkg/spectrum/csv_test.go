package spectrum

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "# measured 2019\nWavelength,Intensity,Note\n380,0.5,a\n381, 0.25\n382.0,1e-3\n"
	d, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertIntensities(t, d, 0.5, 0.25, 0.001)
	if d.Wavelength(2) != 382 {
		t.Errorf("Expected wavelength 382, got %d", d.Wavelength(2))
	}
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Missing header", "380,0.5\n381,0.25\n"},
		{"No rows", "Wavelength,Intensity\n"},
		{"Bad intensity", "Wavelength,Intensity\n380,bright\n"},
		{"Bad wavelength", "Wavelength,Intensity\nblue,0.5\n"},
		{"Short row", "Wavelength,Intensity\n380\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
