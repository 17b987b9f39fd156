// Package tui provides the Bubble Tea integration for Ecoris.
// It hosts scenes, maps keys to actions and drives the frame clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecoris/internal/core"
)

// maxFrameDelta caps the time a single frame may advance the scene.
const maxFrameDelta = 0.25

// TickMsg is sent to trigger a scene step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// [0, maxFrameDelta]. The first tick counts as one nominal frame.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return 1 / float64(tickRate)
	}
	return core.ClampF(now.Sub(prev).Seconds(), 0, maxFrameDelta)
}
