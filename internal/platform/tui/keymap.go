package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecoris/internal/config"
	"github.com/vovakirdan/ecoris/internal/core"
)

// KeyMap holds the game key bindings. The dominant hand moves the piece,
// the other hand rotates it.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Forward     key.Binding
	Backward    key.Binding
	PitchCW     key.Binding
	PitchCCW    key.Binding
	YawCW       key.Binding
	YawCCW      key.Binding
	RollCW      key.Binding
	RollCCW     key.Binding
	SoftDrop    key.Binding
	HardDrop    key.Binding
	CameraLeft  key.Binding
	CameraRight key.Binding
	Confirm     key.Binding
	Screenshot  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// NewKeyMap returns the bindings for the given handedness.
// Anything other than left-handed gets the right-handed layout.
func NewKeyMap(hand config.Handedness) KeyMap {
	km := KeyMap{
		HardDrop: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "drop")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}

	if hand == config.HandLeft {
		km.Forward = key.NewBinding(key.WithKeys("w"), key.WithHelp("wasd", "move"))
		km.Left = key.NewBinding(key.WithKeys("a"))
		km.Backward = key.NewBinding(key.WithKeys("s"))
		km.Right = key.NewBinding(key.WithKeys("d"))
		km.SoftDrop = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "soft drop"))
		km.PitchCW = key.NewBinding(key.WithKeys("i"), key.WithHelp("i/k", "pitch"))
		km.PitchCCW = key.NewBinding(key.WithKeys("k"))
		km.YawCW = key.NewBinding(key.WithKeys("l"), key.WithHelp("j/l", "yaw"))
		km.YawCCW = key.NewBinding(key.WithKeys("j"))
		km.RollCW = key.NewBinding(key.WithKeys("o"), key.WithHelp("u/o", "roll"))
		km.RollCCW = key.NewBinding(key.WithKeys("u"))
		km.CameraLeft = key.NewBinding(key.WithKeys("n"), key.WithHelp("n/m", "camera"))
		km.CameraRight = key.NewBinding(key.WithKeys("m"))
		return km
	}

	km.Forward = key.NewBinding(key.WithKeys("up"), key.WithHelp("arrows", "move"))
	km.Left = key.NewBinding(key.WithKeys("left"))
	km.Backward = key.NewBinding(key.WithKeys("down"))
	km.Right = key.NewBinding(key.WithKeys("right"))
	km.SoftDrop = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "soft drop"))
	km.PitchCW = key.NewBinding(key.WithKeys("w"), key.WithHelp("w/s", "pitch"))
	km.PitchCCW = key.NewBinding(key.WithKeys("s"))
	km.YawCW = key.NewBinding(key.WithKeys("d"), key.WithHelp("a/d", "yaw"))
	km.YawCCW = key.NewBinding(key.WithKeys("a"))
	km.RollCW = key.NewBinding(key.WithKeys("e"), key.WithHelp("q/e", "roll"))
	km.RollCCW = key.NewBinding(key.WithKeys("q"))
	km.CameraLeft = key.NewBinding(key.WithKeys("z"), key.WithHelp("z/c", "camera"))
	km.CameraRight = key.NewBinding(key.WithKeys("c"))
	return km
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.HardDrop, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.SoftDrop, k.HardDrop},
		{k.PitchCW, k.YawCW, k.RollCW},
		{k.CameraLeft, k.Confirm, k.Screenshot},
		{k.Help, k.Quit},
	}
}

func (k KeyMap) actions() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Forward, core.ActionForward},
		{k.Backward, core.ActionBackward},
		{k.PitchCW, core.ActionPitchCW},
		{k.PitchCCW, core.ActionPitchCCW},
		{k.YawCW, core.ActionYawCW},
		{k.YawCCW, core.ActionYawCCW},
		{k.RollCW, core.ActionRollCW},
		{k.RollCCW, core.ActionRollCCW},
		{k.SoftDrop, core.ActionSoftDrop},
		{k.HardDrop, core.ActionHardDrop},
		{k.CameraLeft, core.ActionCameraLeft},
		{k.CameraRight, core.ActionCameraRight},
		{k.Confirm, core.ActionConfirm},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range k.actions() {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
