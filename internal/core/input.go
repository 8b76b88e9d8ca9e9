package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnLeft         // A, Left arrow
	ActionTurnRight        // D, Right arrow
	ActionThrust           // W, Up arrow, right mouse button
	ActionBrake            // S, Down arrow, middle mouse button
	ActionFire             // Space, left mouse button
	ActionWeapon1          // 1 - normal gun
	ActionWeapon2          // 2 - shotgun
	ActionWeapon3          // 3 - shield
	ActionWeapon4          // 4 - laser
	ActionWeapon5          // 5 - multi-shot
	ActionWeapon6          // 6 - shrapnel
	ActionToggleAim        // Tab - switch between pointer aim and keyboard turning
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionTurnLeft:  "TurnLeft",
	ActionTurnRight: "TurnRight",
	ActionThrust:    "Thrust",
	ActionBrake:     "Brake",
	ActionFire:      "Fire",
	ActionWeapon1:   "Weapon1",
	ActionWeapon2:   "Weapon2",
	ActionWeapon3:   "Weapon3",
	ActionWeapon4:   "Weapon4",
	ActionWeapon5:   "Weapon5",
	ActionWeapon6:   "Weapon6",
	ActionToggleAim: "ToggleAim",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// WeaponActions lists the hotkey actions in weapon order.
var WeaponActions = [...]Action{
	ActionWeapon1, ActionWeapon2, ActionWeapon3,
	ActionWeapon4, ActionWeapon5, ActionWeapon6,
}

// Pointer is the mouse position in screen cells for one frame.
type Pointer struct {
	X, Y  int
	Valid bool // false until the terminal has reported a mouse position
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Wheel is the net scroll this frame; positive scrolls up.
	Wheel int
	// Pointer is the last known mouse position.
	Pointer Pointer
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

// Clear resets actions and scroll for the next frame. The pointer position
// is sticky and survives a clear.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Wheel = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Wheel = f.Wheel
	clone.Pointer = f.Pointer
	return clone
}
