// Package monitor implements the terminal dashboard for inverter status.
//
// The dashboard shows one bordered panel per status section, each holding
// a card per field with its display name, formatted value and unit. Panel
// borders cycle through eight accent colors.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View). All fetching
// and rendering decisions live in poll.Controller; the Model only turns
// controller results into screen state.
//
// # Message Flow
//
//  1. Init runs bootstrapCmd, which loads metadata; a spinner runs meanwhile
//  2. metadataMsg starts polling: one poll immediately plus the first tick
//  3. tickMsg fires every interval and schedules the next tick and a poll
//  4. statusMsg carries a poll.Update; failures keep the previous panels
//     and switch the footer to the connection error indicator
//
// Successful polls also feed History, a ring buffer per section field. The
// selected card's tooltip shows a sparkline of that field's recent values.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	r           - Poll now
//	h/l, ←/→    - Select card
//	Tab         - Jump to next panel
//	↑/↓, PgUp   - Scroll
//	?           - Toggle help overlay
package monitor
