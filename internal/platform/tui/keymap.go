package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var gameKeys = map[string]core.Action{
	"a":     core.ActionTurnLeft,
	"left":  core.ActionTurnLeft,
	"d":     core.ActionTurnRight,
	"right": core.ActionTurnRight,
	"w":     core.ActionThrust,
	"up":    core.ActionThrust,
	"s":     core.ActionBrake,
	"down":  core.ActionBrake,
	" ":     core.ActionFire,
	"space": core.ActionFire,
	"1":     core.ActionWeapon1,
	"2":     core.ActionWeapon2,
	"3":     core.ActionWeapon3,
	"4":     core.ActionWeapon4,
	"5":     core.ActionWeapon5,
	"6":     core.ActionWeapon6,
	"tab":   core.ActionToggleAim,
	"enter": core.ActionConfirm,
	"b":     core.ActionBack,
	"p":     core.ActionPause,
	"esc":   core.ActionPause,
	"r":     core.ActionRestart,
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if a, ok := gameKeys[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseButton returns the action a held mouse button stands for.
func (km *KeyMapper) MapMouseButton(b tea.MouseButton) core.Action {
	switch b {
	case tea.MouseButtonLeft:
		return core.ActionFire
	case tea.MouseButtonRight:
		return core.ActionThrust
	case tea.MouseButtonMiddle:
		return core.ActionBrake
	}
	return core.ActionNone
}

// MapWheel returns the scroll step of a wheel button, or 0.
func (km *KeyMapper) MapWheel(b tea.MouseButton) int {
	switch b {
	case tea.MouseButtonWheelUp:
		return 1
	case tea.MouseButtonWheelDown:
		return -1
	}
	return 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
