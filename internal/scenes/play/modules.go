package play

import (
	"github.com/vovakirdan/ecoris/internal/core"
)

// mover is the part of the block entity the input module drives.
type mover interface {
	Move(dx, dz int) bool
	Pitch(dir int) bool
	Yaw(dir int) bool
	Roll(dir int) bool
	SoftDrop() bool
	HardDrop() int
	SetFallInterval(seconds float64)
}

// softDropHold is how long one soft-drop press keeps the fast gravity,
// long enough to bridge terminal key repeat.
const softDropHold = 0.15

// keyAction turns frame actions into piece commands relative to the camera.
type keyAction struct {
	target       mover
	enabled      bool
	fallInterval float64
	softInterval float64
	softTimer    float64
}

func newKeyAction(target mover, fallInterval, softInterval float64) *keyAction {
	return &keyAction{
		target:       target,
		enabled:      true,
		fallInterval: fallInterval,
		softInterval: softInterval,
	}
}

func (k *keyAction) Name() string { return "KeyAction" }

func (k *keyAction) SetEnabled(enabled bool) {
	k.enabled = enabled
	if !enabled && k.softTimer > 0 {
		k.softTimer = 0
		k.target.SetFallInterval(k.fallInterval)
	}
}

var moves = []struct {
	action core.Action
	dx, dz int
}{
	{core.ActionLeft, -1, 0},
	{core.ActionRight, 1, 0},
	{core.ActionForward, 0, -1},
	{core.ActionBackward, 0, 1},
}

// Apply issues the commands of one frame. yaw is the camera orientation.
func (k *keyAction) Apply(in core.InputFrame, yaw int, dt float64) {
	if !k.enabled {
		return
	}

	if k.softTimer > 0 {
		k.softTimer -= dt
		if k.softTimer <= 0 {
			k.softTimer = 0
			k.target.SetFallInterval(k.fallInterval)
		}
	}

	for _, m := range moves {
		if in.Has(m.action) {
			dx, dz := viewDelta(m.dx, m.dz, yaw)
			k.target.Move(dx, dz)
		}
	}

	switch {
	case in.Has(core.ActionPitchCW):
		k.target.Pitch(1)
	case in.Has(core.ActionPitchCCW):
		k.target.Pitch(-1)
	}
	switch {
	case in.Has(core.ActionYawCW):
		k.target.Yaw(1)
	case in.Has(core.ActionYawCCW):
		k.target.Yaw(-1)
	}
	switch {
	case in.Has(core.ActionRollCW):
		k.target.Roll(1)
	case in.Has(core.ActionRollCCW):
		k.target.Roll(-1)
	}

	if in.Has(core.ActionHardDrop) {
		k.target.HardDrop()
		return
	}
	if in.Has(core.ActionSoftDrop) {
		k.target.SoftDrop()
		// The drop may have ended the game.
		if !k.enabled {
			return
		}
		k.softTimer = softDropHold
		k.target.SetFallInterval(k.softInterval)
	}
}

// cameraController rotates the view around the well in quarter turns.
type cameraController struct {
	enabled bool
	yaw     int
}

func newCameraController() *cameraController {
	return &cameraController{enabled: true}
}

func (c *cameraController) Name() string { return "CameraController" }

func (c *cameraController) SetEnabled(enabled bool) { c.enabled = enabled }

// Yaw returns the camera orientation in quarter turns.
func (c *cameraController) Yaw() int { return c.yaw }

// Apply rotates the camera for the actions of one frame.
func (c *cameraController) Apply(in core.InputFrame) {
	if !c.enabled {
		return
	}
	if in.Has(core.ActionCameraRight) {
		c.yaw = normalizeYaw(c.yaw + 1)
	}
	if in.Has(core.ActionCameraLeft) {
		c.yaw = normalizeYaw(c.yaw - 1)
	}
}
