package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorCritical = lipgloss.Color("#FF0055")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent = lipgloss.Color("#FF2E97")
)

// PanelAccents are the eight panel style variants, picked by Panel.Style.
var PanelAccents = []lipgloss.Color{
	lipgloss.Color("#FF2E97"), // pink
	lipgloss.Color("#00FFFF"), // cyan
	lipgloss.Color("#FFAA00"), // amber
	lipgloss.Color("#39FF14"), // green
	lipgloss.Color("#BF40FF"), // purple
	lipgloss.Color("#3D8BFF"), // blue
	lipgloss.Color("#FF6B35"), // orange
	lipgloss.Color("#F4F45B"), // yellow
}

// PanelAccent returns the accent color for a panel style index.
func PanelAccent(style int) lipgloss.Color {
	if style < 0 {
		style = -style
	}
	return PanelAccents[style%len(PanelAccents)]
}

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginBottom(1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorAccent)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	UnitStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TooltipStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Italic(true).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorCritical).
				Bold(true)
)

// Status indicator glyphs
const (
	StatusOK    = "◉"
	StatusError = "◌"
)

// panelTitleStyle styles a panel header in its accent color.
func panelTitleStyle(style int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(PanelAccent(style)).Bold(true)
}

// truncate shortens s to width display cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
