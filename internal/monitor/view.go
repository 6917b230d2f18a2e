package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if !m.bootstrapped {
		b.WriteString(" " + m.spinner.View() + " " + LabelStyle.Render("Loading metadata..."))
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
		return b.String()
	}

	if m.viewportReady {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderPanels())
	}

	b.WriteString("\n")
	b.WriteString(m.renderTooltip())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title bar with source and interval.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("invdash")

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(fmt.Sprintf(" | %s | every %s | %d panels", m.source, m.interval, len(m.panels)))

	return HeaderStyle.Render(title + stats)
}

// renderPanels renders every panel stacked vertically.
func (m Model) renderPanels() string {
	if len(m.panels) == 0 {
		return LabelStyle.Render(" No sections in status document yet")
	}

	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	selPanel, selCard, ok := m.cardAt(m.selected)
	var out []string
	for i, p := range m.panels {
		card := -1
		if ok && i == selPanel {
			card = selCard
		}
		out = append(out, renderPanel(p, width, card))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// renderTooltip shows the selected card's description, or its location when
// it has none, followed by a sparkline once the field has numeric history.
func (m Model) renderTooltip() string {
	panel, card, ok := m.SelectedCard()
	if !ok {
		return ""
	}
	text := panel.Title + " › " + card.Title
	if card.Description != "" {
		text += ": " + card.Description
	}

	trend := ""
	if m.history.Count(panel.Key, card.Key) > 1 {
		trend = "  " + RenderSparkline(m.history.Get(panel.Key, card.Key, sparklineWidth), sparklineWidth, PanelAccent(panel.Style))
	}

	if m.width > 2 {
		text = truncate(text, m.width-2-lipgloss.Width(trend))
	}
	return TooltipStyle.Render(text) + trend
}

// renderFooter renders the connection status and key hints.
func (m Model) renderFooter() string {
	var status string
	if m.lastErr != "" {
		status = StatusErrorStyle.Render(StatusError + " " + m.statusLine)
	} else {
		status = StatusOKStyle.Render(StatusOK) + " " + LabelStyle.Render(m.statusLine)
	}

	hints := []string{
		"q quit",
		"r refresh",
		"←→ select",
		"? help",
	}
	return status + FooterStyle.Render(strings.Join(hints, " | "))
}
