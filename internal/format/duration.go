package format

import (
	"fmt"
	"math"
	"strings"
)

// TimeUnit is a canonical time unit a field may be declared in.
type TimeUnit int

const (
	NotTime TimeUnit = iota
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

var timeUnits = map[string]TimeUnit{
	"ms": Milliseconds, "msec": Milliseconds, "msecs": Milliseconds,
	"millisecond": Milliseconds, "milliseconds": Milliseconds,
	"s": Seconds, "sec": Seconds, "secs": Seconds, "second": Seconds, "seconds": Seconds,
	"min": Minutes, "mins": Minutes, "minute": Minutes, "minutes": Minutes,
	"h": Hours, "hr": Hours, "hrs": Hours, "hour": Hours, "hours": Hours,
	"d": Days, "day": Days, "days": Days,
}

// ParseTimeUnit maps a unit label to its TimeUnit, ignoring case and
// surrounding whitespace. Unknown labels return NotTime.
func ParseTimeUnit(unit string) TimeUnit {
	return timeUnits[strings.ToLower(strings.TrimSpace(unit))]
}

// IsTimeUnit reports whether unit names a recognized time unit.
func IsTimeUnit(unit string) bool {
	return ParseTimeUnit(unit) != NotTime
}

// ToSeconds converts v in the given unit to seconds. ok is false for units
// that are not time units.
func ToSeconds(v float64, unit string) (secs float64, ok bool) {
	switch ParseTimeUnit(unit) {
	case Milliseconds:
		return v / 1000, true
	case Seconds:
		return v, true
	case Minutes:
		return v * 60, true
	case Hours:
		return v * 3600, true
	case Days:
		return v * 86400, true
	}
	return 0, false
}

// maxWhole is the largest magnitude split into integer segments; beyond it
// float64 no longer holds whole numbers exactly and int64 may overflow.
const maxWhole = 1 << 53

// FormatTime renders v, expressed in unit, as a largest-unit-first duration.
// Units that are not time units fall back to FormatISU. Non-finite values and
// magnitudes above maxWhole are printed as "V.V unit".
func FormatTime(v float64, unit string) string {
	tu := ParseTimeUnit(unit)
	if tu != NotTime && !inWholeRange(v) {
		return fmt.Sprintf("%.1f %s", v, unit)
	}
	switch tu {
	case Milliseconds:
		return formatMillis(v)
	case Seconds:
		return formatSeconds(v)
	case Minutes:
		return formatMinutesUnit(v)
	case Hours:
		return formatHours(v)
	case Days:
		return fmt.Sprintf("%.1f d", v)
	}
	return FormatISU(v, unit)
}

func inWholeRange(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) <= maxWhole
}

func formatMillis(v float64) string {
	switch {
	case v >= 60000:
		tenths := int64(math.Round(v / 100))
		mins := tenths / 600
		rem := tenths % 600
		return fmt.Sprintf("%dm:%d.%ds", mins, rem/10, rem%10)
	case v >= 1000:
		return fmt.Sprintf("%.2f s", v/1000)
	default:
		return fmt.Sprintf("%.1f ms", v)
	}
}

func formatSeconds(v float64) string {
	secs := int64(math.Floor(v))
	switch {
	case v >= 86400:
		return fmt.Sprintf("%dd:%dh:%dm", secs/86400, secs%86400/3600, secs%3600/60)
	case v >= 3600:
		return fmt.Sprintf("%dh:%dm", secs/3600, secs%3600/60)
	case v >= 60:
		return fmt.Sprintf("%dm:%ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%.1f s", v)
	}
}

func formatMinutesUnit(v float64) string {
	if v < 60 {
		return fmt.Sprintf("%.1f min", v)
	}
	return FormatMinutes(int64(math.Floor(v)))
}

func formatHours(v float64) string {
	if v < 24 {
		return fmt.Sprintf("%.1f h", v)
	}
	hours := int64(math.Floor(v))
	return fmt.Sprintf("%dd:%dh", hours/24, hours%24)
}

// FormatMinutes renders a whole, non-negative number of minutes as
// "Dd:Hh:Mm", dropping the day segment when it is zero.
func FormatMinutes(minutes int64) string {
	days := minutes / 1440
	hours := minutes % 1440 / 60
	mins := minutes % 60
	if days > 0 {
		return fmt.Sprintf("%dd:%dh:%dm", days, hours, mins)
	}
	return fmt.Sprintf("%dh:%dm", hours, mins)
}
