package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpGroup is a titled block of key bindings in the help overlay.
type helpGroup struct {
	title    string
	bindings [][2]string // key, description
}

var helpGroups = []helpGroup{
	{"Cards", [][2]string{
		{"← h  → l", "previous / next card"},
		{"Tab  S-Tab", "next / previous panel"},
		{"Home  End", "first / last card"},
	}},
	{"Data", [][2]string{
		{"r", "poll now"},
		{"↑ ↓ PgUp PgDn", "scroll panels"},
	}},
	{"General", [][2]string{
		{"?  Esc", "close help"},
		{"q  Ctrl+C", "quit"},
	}},
}

var (
	helpBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Background(ColorSurfaceBg).
		Padding(1, 3)

	helpHeading = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	helpKey     = lipgloss.NewStyle().Foreground(ColorTextPrimary).Bold(true).Width(16)
	helpDesc    = lipgloss.NewStyle().Foreground(ColorTextSecondary)
)

// renderHelp lays out the binding groups, a legend for the footer glyphs
// and the current polling setup.
func (m Model) renderHelp() string {
	var b strings.Builder
	for i, g := range helpGroups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpHeading.Render(g.title) + "\n")
		for _, kb := range g.bindings {
			b.WriteString(helpKey.Render(kb[0]) + helpDesc.Render(kb[1]) + "\n")
		}
	}

	b.WriteString("\n" + helpHeading.Render("Status") + "\n")
	b.WriteString(helpKey.Render(StatusOKStyle.Render(StatusOK)) + helpDesc.Render("last poll succeeded") + "\n")
	b.WriteString(helpKey.Render(StatusErrorStyle.Render(StatusError)) + helpDesc.Render("device unreachable, showing last data") + "\n")
	b.WriteString("\n" + LabelStyle.Render(fmt.Sprintf("%s, polled every %s", m.source, m.interval)))
	return b.String()
}

// renderHelpOverlay centers the help box on screen.
func (m Model) renderHelpOverlay() string {
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		helpBox.Render(m.renderHelp()),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
