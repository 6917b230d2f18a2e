package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatISU(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  string
	}{
		{"kilo", 1500, "W", "1.50 kW"},
		// 0.0005 A scales to µ under the threshold table, not the "500.00 mA" sometimes quoted for it
		{"micro", 0.0005, "A", "500.00 µA"},
		{"milli", 0.5, "A", "500.00 mA"},
		{"zero", 0, "V", "0.0"},
		{"no unit", 12, "", "12.0"},
		{"unit range", 48.2, "V", "48.2 V"},
		{"below kilo crossover", 1000, "W", "1000.0 W"},
		{"at kilo crossover", 1100, "W", "1.10 kW"},
		{"below unit crossover", 0.9, "V", "900.00 mV"},
		{"mega", 2.5e6, "Wh", "2.50 MWh"},
		{"giga", 3e9, "Hz", "3.00 GHz"},
		{"tera", 2.5e12, "W", "2.50 TW"},
		{"nano", 1e-10, "A", "0.10 nA"},
		{"negative keeps sign", -1500, "W", "-1.50 kW"},
		{"negative small", -0.02, "A", "-20.00 mA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatISU(tt.value, tt.unit))
		})
	}
}

func TestSelectPrefix_Monotonic(t *testing.T) {
	// Larger magnitudes never pick a smaller multiplier.
	prev := selectPrefix(1e-12).multiplier
	for _, v := range []float64{1e-9, 1e-7, 1e-6, 1e-4, 1e-3, 0.5, 0.95, 1, 500, 1099, 1100, 1e5, 2e6, 5e9, 1e13} {
		m := selectPrefix(v).multiplier
		assert.GreaterOrEqual(t, m, prev, "value %g", v)
		prev = m
	}
}

func TestEmbedsUnit(t *testing.T) {
	tests := []struct {
		value string
		unit  string
		want  bool
	}{
		{"1.50 kW", "W", true},
		{"12.0 W", "W", true},
		{"500.00 µA", "A", true},
		{"0.0", "W", false},
		{"OVERLOAD", "V", false},
		{"48.2 V", "", false},
		{"3.00 kVA", "A", false},
	}

	for _, tt := range tests {
		t.Run(tt.value+"/"+tt.unit, func(t *testing.T) {
			assert.Equal(t, tt.want, EmbedsUnit(tt.value, tt.unit))
		})
	}
}
