package format

import (
	"math"
	"testing"

	"github.com/rileyhilliard/invdash/internal/metadata"
	"github.com/rileyhilliard/invdash/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc(t *testing.T) *metadata.Document {
	t.Helper()
	doc, err := metadata.Decode([]byte(`{
		"inverter": {"name": "Inverter", "autonomy": {"name": "Autonomy", "unit": "min"}, "read_interval": {"unit": "ms"}},
		"battery": {"voltage": {"name": "Voltage", "unit": "V"}, "runtime": {"unit": "minutes"}, "state": {"unit": "V"}},
		"pv": {"power": {"unit": "W"}}
	}`))
	require.NoError(t, err)
	return doc
}

func TestFormat_Missing(t *testing.T) {
	f := New()
	doc := testDoc(t)

	for _, section := range []string{"inverter", "battery", "pv", "unknown"} {
		for _, field := range []string{"autonomy", "uptime", "voltage", "power", "x"} {
			assert.Equal(t, "-", f.Format(status.Null(), field, section, doc), "%s.%s", section, field)
			assert.Equal(t, "-", f.Format(status.Null(), field, section, nil))
		}
	}
}

func TestFormat_CustomMissing(t *testing.T) {
	f := &Formatter{Missing: "--"}
	assert.Equal(t, "--", f.Format(status.Null(), "voltage", "battery", nil))

	var zero Formatter
	assert.Equal(t, DefaultMissing, zero.Format(status.Null(), "voltage", "battery", nil))
}

func TestFormat_DurationFields(t *testing.T) {
	f := New()
	doc := testDoc(t)

	tests := []struct {
		name    string
		value   status.Value
		field   string
		section string
		want    string
	}{
		{"autonomy hours", status.Number(130), "autonomy", "inverter", "2h:10m"},
		{"uptime day", status.Number(1440), "uptime", "inverter", "1d:0h:0m"},
		{"zero", status.Number(0), "uptime", "inverter", "0h:0m"},
		{"negative kept raw", status.Number(-5), "autonomy", "inverter", "-5"},
		{"fraction kept raw", status.Number(12.5), "uptime", "inverter", "12.5"},
		{"text kept raw", status.String("n/a"), "autonomy", "inverter", "n/a"},
		{"huge kept raw", status.Number(1e19), "autonomy", "inverter", "10000000000000000000"},
		{"NaN kept raw", status.Value{Kind: status.KindNumber, Num: math.NaN(), Raw: "NaN"}, "uptime", "inverter", "NaN"},
		{"other section not special", status.Number(130), "autonomy", "battery", "130.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.value, tt.field, tt.section, doc))
		})
	}
}

func TestFormat_Units(t *testing.T) {
	f := New()
	doc := testDoc(t)

	tests := []struct {
		name    string
		value   status.Value
		field   string
		section string
		want    string
	}{
		{"engineering", status.Number(48.2), "voltage", "battery", "48.2 V"},
		{"engineering kilo", status.Number(1500), "power", "pv", "1.50 kW"},
		{"engineering zero", status.Number(0), "power", "pv", "0.0"},
		{"time unit minutes", status.Number(90), "runtime", "battery", "1h:30m"},
		{"time unit millis", status.Number(90000), "read_interval", "inverter", "1m:30.0s"},
		{"no metadata", status.Number(48.2), "voltage", "dc", "48.2"},
		{"integral no unit", status.Number(5), "count", "dc", "5.0"},
		{"string with unit", status.String("float"), "state", "battery", "float"},
		{"bool", status.Bool(true), "grid", "ac", "true"},
		{"composite", status.Value{Kind: status.KindComposite, Raw: `[1,2]`}, "cells", "battery", "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.value, tt.field, tt.section, doc))
		})
	}
}

func TestClassify(t *testing.T) {
	f := New()
	doc := testDoc(t)

	tests := []struct {
		name     string
		value    status.Value
		field    string
		section  string
		wantKind Kind
		wantUnit string
	}{
		{"null", status.Null(), "voltage", "battery", KindMissing, ""},
		{"duration field", status.Number(10), "autonomy", "inverter", KindDurationMinutes, ""},
		{"time unit", status.Number(10), "runtime", "battery", KindTimeUnit, "minutes"},
		{"engineering", status.Number(10), "voltage", "battery", KindEngineering, "V"},
		{"plain", status.Number(10), "voltage", "dc", KindPlainNumber, ""},
		{"text", status.String("x"), "voltage", "battery", KindText, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, unit := f.Classify(tt.value, tt.field, tt.section, doc)
			assert.Equal(t, tt.wantKind, kind, "got %s", kind)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}
