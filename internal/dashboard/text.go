package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WriteText writes panels as plain, unstyled text for pipes and logs:
//
//	BATTERY
//	  voltage  48.2 V
//	  soc      -
func WriteText(w io.Writer, panels []Panel) error {
	var b strings.Builder
	for i, p := range panels {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.Title)
		if p.Description != "" {
			b.WriteString("  (" + p.Description + ")")
		}
		b.WriteString("\n")

		titleWidth := 0
		for _, c := range p.Cards {
			titleWidth = max(titleWidth, lipgloss.Width(c.Title))
		}
		for _, c := range p.Cards {
			pad := strings.Repeat(" ", titleWidth-lipgloss.Width(c.Title))
			b.WriteString("  " + c.Title + pad + "  " + CardText(c) + "\n")
		}
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}

// CardText joins a card's value and unit suffix.
func CardText(c Card) string {
	if c.Unit == "" {
		return c.Value
	}
	return c.Value + " " + c.Unit
}
