// Package tui provides the Bubble Tea viewer: the tick loop, key and mouse
// mapping, half-block rendering, the level menu and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance a viewer by one simulation tick.
// ID names the viewer whose loop scheduled it.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastViewerID atomic.Int64

// nextViewerID hands out tick loop identities, so a loop left behind by a
// closed viewer cannot drive a new one.
func nextViewerID() int64 {
	return lastViewerID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
