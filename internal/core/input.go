package core

// Action represents a semantic game action, abstracted from physical key presses.
// Key bindings (and handedness) live in the platform layer.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Move piece along -X (camera relative)
	ActionRight              // Move piece along +X (camera relative)
	ActionForward            // Move piece along -Z (camera relative)
	ActionBackward           // Move piece along +Z (camera relative)
	ActionPitchCW            // Quarter turn about X
	ActionPitchCCW           //
	ActionYawCW              // Quarter turn about Y
	ActionYawCCW             //
	ActionRollCW             // Quarter turn about Z
	ActionRollCCW            //
	ActionSoftDrop           // Drop one layer now
	ActionHardDrop           // Drop until the piece lands
	ActionCameraLeft         // Rotate view a quarter turn left
	ActionCameraRight        // Rotate view a quarter turn right
	ActionConfirm            // Enter - confirm on title/result screens
	ActionQuit               // Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionForward:     "Forward",
	ActionBackward:    "Backward",
	ActionPitchCW:     "PitchCW",
	ActionPitchCCW:    "PitchCCW",
	ActionYawCW:       "YawCW",
	ActionYawCCW:      "YawCCW",
	ActionRollCW:      "RollCW",
	ActionRollCCW:     "RollCCW",
	ActionSoftDrop:    "SoftDrop",
	ActionHardDrop:    "HardDrop",
	ActionCameraLeft:  "CameraLeft",
	ActionCameraRight: "CameraRight",
	ActionConfirm:     "Confirm",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state for one tick.
// It contains all actions that were triggered since the previous tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
