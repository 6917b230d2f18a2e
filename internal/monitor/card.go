package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/invdash/internal/dashboard"
)

// Card layout constants
const (
	cardWidth    = 18 // inner width, excluding border and padding
	cardChrome   = 5  // border (2) + padding (2) + right margin (1)
	panelChrome  = 4  // border (2) + padding (2)
	defaultWidth = 80
)

// renderCard renders one value card: title on top, value and unit below.
func renderCard(c dashboard.Card, selected bool) string {
	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}

	title := LabelStyle.Render(padRight(truncate(c.Title, cardWidth), cardWidth))

	value := c.Value
	unit := ""
	if c.Unit != "" {
		unit = " " + c.Unit
	}
	if lipgloss.Width(value+unit) > cardWidth {
		value = truncate(value, cardWidth-lipgloss.Width(unit))
	}
	line := ValueStyle.Render(value) + UnitStyle.Render(unit)
	line = padRight(line, cardWidth)

	return style.Render(title + "\n" + line)
}

// renderPanel renders a panel box holding its cards in rows that fit width.
func renderPanel(p dashboard.Panel, width, selectedCard int) string {
	inner := width - panelChrome
	if inner < cardWidth+cardChrome {
		inner = cardWidth + cardChrome
	}

	header := panelTitleStyle(p.Style).Render(p.Title)
	if p.Description != "" {
		header += " " + LabelStyle.Render(truncate(p.Description, inner-lipgloss.Width(p.Title)-1))
	}

	perRow := inner / (cardWidth + cardChrome)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for i := 0; i < len(p.Cards); i += perRow {
		end := min(i+perRow, len(p.Cards))
		var cards []string
		for j := i; j < end; j++ {
			cards = append(cards, renderCard(p.Cards[j], j == selectedCard))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	body := header
	if len(rows) > 0 {
		body += "\n" + strings.Join(rows, "\n")
	}

	return PanelStyle.
		BorderForeground(PanelAccent(p.Style)).
		Width(inner + 2).
		Render(body)
}
