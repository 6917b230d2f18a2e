package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks holds the 8 vertical levels, lowest first.
var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparklineWidth is the number of samples drawn next to the tooltip.
const sparklineWidth = 24

// RenderSparkline draws the most recent width values of data scaled between
// their min and max. A flat series sits on the middle level.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	line := sparkline(data, width)
	if line == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(color).Render(line)
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := findMinMax(data)
	valueRange := maxVal - minVal
	levels := len(sparkBlocks)

	var sb strings.Builder
	sb.Grow(len(data) * 3)
	for _, v := range data {
		level := levels / 2
		if valueRange > 0 {
			level = clampInt(int((v-minVal)/valueRange*float64(levels-1)), levels-1)
		}
		sb.WriteRune(sparkBlocks[level])
	}
	return sb.String()
}

func findMinMax(data []float64) (minVal, maxVal float64) {
	minVal, maxVal = data[0], data[0]
	for _, v := range data[1:] {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	return minVal, maxVal
}

// clampInt restricts val to [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
