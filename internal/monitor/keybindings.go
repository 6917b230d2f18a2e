package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeySelectPrev  = "left"
	KeySelectPrevH = "h"
	KeySelectNext  = "right"
	KeySelectNextL = "l"
	KeyPanelPrev   = "shift+tab"
	KeyPanelNext   = "tab"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeyCollapse    = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input. It reports whether the key was
// handled; unhandled keys (arrows, page up/down) scroll the viewport.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		if !m.bootstrapped {
			return true, nil
		}
		return true, m.pollCmd()

	case KeySelectPrev, KeySelectPrevH:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextL:
		if m.selected < m.cardCount()-1 {
			m.selected++
		}
		return true, nil

	case KeyPanelNext:
		m.jumpPanel(1)
		return true, nil

	case KeyPanelPrev:
		m.jumpPanel(-1)
		return true, nil

	case KeySelectFirst:
		if m.cardCount() > 0 {
			m.selected = 0
		}
		return true, nil

	case KeySelectLast:
		if n := m.cardCount(); n > 0 {
			m.selected = n - 1
		}
		return true, nil
	}

	return false, nil
}

// jumpPanel moves the selection to the first card of the next (dir > 0) or
// previous panel, skipping empty panels.
func (m *Model) jumpPanel(dir int) {
	pi, _, ok := m.cardAt(m.selected)
	if !ok {
		return
	}
	for next := pi + dir; next >= 0 && next < len(m.panels); next += dir {
		if len(m.panels[next].Cards) == 0 {
			continue
		}
		idx := 0
		for i := 0; i < next; i++ {
			idx += len(m.panels[i].Cards)
		}
		m.selected = idx
		return
	}
}
