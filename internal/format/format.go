// Package format turns raw status values into display strings. Every value is
// first classified into a Kind, and each Kind has exactly one renderer, so the
// precondition of every branch is explicit.
package format

import (
	"fmt"
	"math"

	"github.com/rileyhilliard/invdash/internal/metadata"
	"github.com/rileyhilliard/invdash/internal/status"
)

// DefaultMissing is the text shown for null or absent values.
const DefaultMissing = "-"

// Kind is the rendering branch a value falls into.
type Kind int

const (
	// KindMissing is a null or absent value.
	KindMissing Kind = iota
	// KindDurationMinutes is a designated field holding a count of minutes.
	KindDurationMinutes
	// KindTimeUnit is a number whose declared unit is a time unit.
	KindTimeUnit
	// KindEngineering is a number with a non-time unit.
	KindEngineering
	// KindPlainNumber is a number without unit metadata.
	KindPlainNumber
	// KindText is anything else: strings, booleans and nested JSON.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindDurationMinutes:
		return "duration-minutes"
	case KindTimeUnit:
		return "time-unit"
	case KindEngineering:
		return "engineering"
	case KindPlainNumber:
		return "plain-number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Formatter holds the knobs that vary between deployments.
type Formatter struct {
	// Missing replaces null values. Empty means DefaultMissing.
	Missing string
	// DurationSection is the section whose DurationFields hold minute counts.
	DurationSection string
	DurationFields  []string
}

// New returns a Formatter with the stock inverter duration fields.
func New() *Formatter {
	return &Formatter{
		Missing:         DefaultMissing,
		DurationSection: "inverter",
		DurationFields:  []string{"autonomy", "uptime"},
	}
}

func (f *Formatter) missing() string {
	if f == nil || f.Missing == "" {
		return DefaultMissing
	}
	return f.Missing
}

func (f *Formatter) isDurationField(field, section string) bool {
	if f == nil || section != f.DurationSection {
		return false
	}
	for _, name := range f.DurationFields {
		if name == field {
			return true
		}
	}
	return false
}

// Classify decides which branch renders v. The returned unit is the field's
// declared unit from doc, empty when none applies.
func (f *Formatter) Classify(v status.Value, field, section string, doc *metadata.Document) (Kind, string) {
	if v.IsNull() {
		return KindMissing, ""
	}
	if v.Kind != status.KindNumber {
		return KindText, ""
	}
	if f.isDurationField(field, section) {
		return KindDurationMinutes, ""
	}

	unit := doc.Lookup(section, field).Unit
	switch {
	case unit == "":
		return KindPlainNumber, ""
	case IsTimeUnit(unit):
		return KindTimeUnit, unit
	default:
		return KindEngineering, unit
	}
}

// Format renders v for display. It never fails: values that cannot be
// rendered by their branch fall back to their raw text.
func (f *Formatter) Format(v status.Value, field, section string, doc *metadata.Document) string {
	kind, unit := f.Classify(v, field, section, doc)
	switch kind {
	case KindMissing:
		return f.missing()
	case KindDurationMinutes:
		return durationMinutes(v)
	case KindTimeUnit:
		return FormatTime(v.Num, unit)
	case KindEngineering:
		return FormatISU(v.Num, unit)
	case KindPlainNumber:
		return plainNumber(v)
	default:
		return v.Text()
	}
}

func durationMinutes(v status.Value) string {
	if v.Num < 0 || v.Num != math.Trunc(v.Num) || !inWholeRange(v.Num) {
		return v.Text()
	}
	return FormatMinutes(int64(v.Num))
}

func plainNumber(v status.Value) string {
	if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
		return v.Text()
	}
	return fmt.Sprintf("%.1f", v.Num)
}
