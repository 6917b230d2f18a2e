package monitor

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/metadata"
	"github.com/rileyhilliard/invdash/internal/poll"
	"github.com/rileyhilliard/invdash/internal/source"
	"github.com/rileyhilliard/invdash/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStatus = `{"inverter": {"autonomy": 130, "power": 452.7}, "version": "3.0", "battery": {"voltage": 48.2, "soc": null}}`

const testNames = `{
	"inverter": {"name": "Inverter", "autonomy": {"name": "Autonomy", "unit": "min", "description": "Runtime left on battery"},
		"power": {"name": "Power", "unit": "W"}},
	"battery": {"voltage": {"name": "Voltage", "unit": "V"}}
}`

func newTestController(t *testing.T) *poll.Controller {
	t.Helper()
	snap, err := status.Decode([]byte(testStatus))
	require.NoError(t, err)
	meta, err := metadata.Decode([]byte(testNames))
	require.NoError(t, err)

	return poll.New(poll.Options{
		Status:   source.StatusFunc(func(context.Context) (*status.Snapshot, error) { return snap, nil }),
		Metadata: source.MetadataFunc(func(context.Context) (*metadata.Document, error) { return meta, nil }),
		Interval: 5 * time.Second,
	})
}

// readyModel returns a model that has bootstrapped and received one poll.
func readyModel(t *testing.T) Model {
	t.Helper()
	ctrl := newTestController(t)
	m := NewModel(ctrl, "http://192.168.4.1")

	doc := ctrl.Bootstrap(context.Background())
	next, _ := m.Update(metadataMsg{doc: doc})
	m = next.(Model)

	next, _ = m.Update(statusMsg{update: ctrl.Poll(context.Background())})
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

func TestNewModel(t *testing.T) {
	m := NewModel(newTestController(t), "http://192.168.4.1")

	assert.False(t, m.bootstrapped)
	assert.Equal(t, -1, m.selected)
	assert.Equal(t, 5*time.Second, m.interval)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading metadata")
}

func TestUpdate_MetadataStartsPolling(t *testing.T) {
	ctrl := newTestController(t)
	m := NewModel(ctrl, "dev")

	next, cmd := m.Update(metadataMsg{doc: ctrl.Bootstrap(context.Background())})
	m = next.(Model)

	assert.True(t, m.bootstrapped)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Waiting for data...", m.statusLine)
}

func TestUpdate_StatusRendersPanels(t *testing.T) {
	m := readyModel(t)

	require.Len(t, m.panels, 2)
	assert.Equal(t, 0, m.selected)
	assert.Empty(t, m.lastErr)
	assert.Contains(t, m.statusLine, "Last update:")

	view := m.View()
	assert.Contains(t, view, "Inverter")
	assert.Contains(t, view, "BATTERY")
	assert.Contains(t, view, "2h:10m")
	assert.Contains(t, view, "452.7 W")
	assert.Contains(t, view, "48.2 V")
	assert.Contains(t, view, "soc")
	assert.Contains(t, view, "Runtime left on battery", "first card's tooltip")
}

func TestUpdate_FailureKeepsPanels(t *testing.T) {
	m := readyModel(t)
	panels := m.panels

	failing := poll.Update{
		Panels: panels,
		At:     time.Now(),
		Err:    errors.New(errors.ErrFetch, "Can't reach http://192.168.4.1/api/status", ""),
	}
	next, _ := m.Update(statusMsg{update: failing})
	m = next.(Model)

	assert.Equal(t, panels, m.panels)
	assert.Contains(t, m.lastErr, "Can't reach")
	assert.Contains(t, m.View(), "BATTERY")
}

func TestUpdate_SkippedPollIgnored(t *testing.T) {
	m := readyModel(t)
	before := m.statusLine

	next, _ := m.Update(statusMsg{update: poll.Update{Skipped: true}})
	m = next.(Model)

	assert.Len(t, m.panels, 2)
	assert.Equal(t, before, m.statusLine)
}

func TestUpdate_TickSchedulesPoll(t *testing.T) {
	m := readyModel(t)
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := readyModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	assert.True(t, m.viewportReady)
	assert.Equal(t, 120, m.viewport.Width)
	assert.Equal(t, 40-headerHeight-footerHeight, m.viewport.Height)
	assert.Contains(t, m.View(), "Inverter")
}

func TestUpdate_SpinnerStopsAfterBootstrap(t *testing.T) {
	m := readyModel(t)
	_, cmd := m.Update(m.spinner.Tick())
	assert.Nil(t, cmd)
}
