package format

import (
	"fmt"
	"math"
	"strings"
)

// prefix is one engineering prefix with the smallest magnitude it applies to.
type prefix struct {
	symbol     string
	multiplier float64
	threshold  float64
}

// prefixes is ordered from largest to smallest. Scaled-up prefixes kick in at
// 1.1x their multiplier; the unit and scaled-down prefixes at 0.91x.
var prefixes = []prefix{
	{"T", 1e12, 1.1e12},
	{"G", 1e9, 1.1e9},
	{"M", 1e6, 1.1e6},
	{"k", 1e3, 1.1e3},
	{"", 1, 0.91},
	{"m", 1e-3, 0.91e-3},
	{"µ", 1e-6, 0.91e-6},
	{"n", 1e-9, 0},
}

// EmbedsUnit reports whether value is FormatISU output that already ends in
// unit, with or without a prefix: "1.50 kW" and "12.0 W" embed "W".
func EmbedsUnit(value, unit string) bool {
	if unit == "" {
		return false
	}
	for _, p := range prefixes {
		if strings.HasSuffix(value, " "+p.symbol+unit) {
			return true
		}
	}
	return false
}

func selectPrefix(v float64) prefix {
	abs := math.Abs(v)
	for _, p := range prefixes {
		if abs >= p.threshold {
			return p
		}
	}
	return prefixes[len(prefixes)-1]
}

// FormatISU scales v with an engineering prefix and appends the unit:
// 1500 W is "1.50 kW", 12 V is "12.0 V". Zero, or an empty unit, is the
// plain value with one decimal and no unit.
func FormatISU(v float64, unit string) string {
	if v == 0 || unit == "" || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.1f", v)
	}

	p := selectPrefix(v)
	scaled := v / p.multiplier
	if p.symbol == "" {
		return fmt.Sprintf("%.1f %s", scaled, unit)
	}
	return fmt.Sprintf("%.2f %s%s", scaled, p.symbol, unit)
}
