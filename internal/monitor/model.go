package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/invdash/internal/dashboard"
	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/metadata"
	"github.com/rileyhilliard/invdash/internal/poll"
)

// Screen rows reserved outside the scrolling grid.
const (
	headerHeight = 2
	footerHeight = 2
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctrl   *poll.Controller
	source string // shown in the header

	panels   []dashboard.Panel
	selected int // flat index across all cards; -1 when there are none
	history  *History

	bootstrapped bool
	interval     time.Duration
	statusLine   string
	lastErr      string
	lastUpdate   time.Time

	width    int
	height   int
	quitting bool
	showHelp bool

	spinner       spinner.Model
	viewport      viewport.Model
	viewportReady bool
}

// tickMsg signals a scheduled poll.
type tickMsg time.Time

// metadataMsg reports that bootstrap finished.
type metadataMsg struct {
	doc *metadata.Document
}

// statusMsg carries the result of one poll.
type statusMsg struct {
	update poll.Update
}

// NewModel creates a dashboard model around ctrl. source labels the header
// (usually the device URL or broker).
func NewModel(ctrl *poll.Controller, source string) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorAccent)),
	)
	return Model{
		ctrl:       ctrl,
		source:     source,
		selected:   -1,
		history:    NewHistory(DefaultHistorySize),
		interval:   ctrl.Interval(),
		statusLine: "Loading metadata...",
		spinner:    sp,
	}
}

// Init loads metadata and starts the bootstrap spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.bootstrapCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			m.refreshViewport()
			return m, cmd
		}
		if m.viewportReady {
			var vcmd tea.Cmd
			m.viewport, vcmd = m.viewport.Update(msg)
			return m, vcmd
		}

	case tea.MouseMsg:
		if m.viewportReady {
			var vcmd tea.Cmd
			m.viewport, vcmd = m.viewport.Update(msg)
			return m, vcmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()

	case spinner.TickMsg:
		if m.bootstrapped {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case metadataMsg:
		m.bootstrapped = true
		m.statusLine = "Waiting for data..."
		return m, tea.Batch(m.pollCmd(), m.tickCmd())

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.pollCmd())

	case statusMsg:
		m.applyUpdate(msg.update)
	}

	return m, nil
}

// applyUpdate folds a poll result into the model. Skipped polls change
// nothing; failed polls keep the previous panels.
func (m *Model) applyUpdate(u poll.Update) {
	if u.Skipped {
		return
	}
	if u.Interval > 0 {
		m.interval = u.Interval
	}
	if u.Err != nil {
		m.lastErr = errors.Summary(u.Err)
	} else {
		m.lastErr = ""
		m.lastUpdate = u.At
		m.panels = u.Panels
		m.history.Push(u.Snapshot)
	}
	m.statusLine = m.ctrl.StatusLine()
	m.clampSelection()
	m.refreshViewport()
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// tickCmd schedules the next poll one interval from now. Ticks are
// independent of poll completion so a slow device doesn't stretch the cadence.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) bootstrapCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return metadataMsg{doc: ctrl.Bootstrap(context.Background())}
	}
}

func (m Model) pollCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return statusMsg{update: ctrl.Poll(context.Background())}
	}
}

func (m *Model) resizeViewport() {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	if !m.viewportReady {
		m.viewport = viewport.New(m.width, h)
		m.viewport.YPosition = headerHeight
		m.viewportReady = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = h
	}
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(m.renderPanels())
}

// cardCount returns the number of cards across all panels.
func (m Model) cardCount() int {
	n := 0
	for _, p := range m.panels {
		n += len(p.Cards)
	}
	return n
}

// cardAt resolves a flat card index to its panel and card.
func (m Model) cardAt(idx int) (panel, card int, ok bool) {
	if idx < 0 {
		return 0, 0, false
	}
	for pi, p := range m.panels {
		if idx < len(p.Cards) {
			return pi, idx, true
		}
		idx -= len(p.Cards)
	}
	return 0, 0, false
}

// SelectedCard returns the selected card and its panel.
func (m Model) SelectedCard() (dashboard.Panel, dashboard.Card, bool) {
	pi, ci, ok := m.cardAt(m.selected)
	if !ok {
		return dashboard.Panel{}, dashboard.Card{}, false
	}
	return m.panels[pi], m.panels[pi].Cards[ci], true
}

func (m *Model) clampSelection() {
	n := m.cardCount()
	switch {
	case n == 0:
		m.selected = -1
	case m.selected < 0:
		m.selected = 0
	case m.selected >= n:
		m.selected = n - 1
	}
}
