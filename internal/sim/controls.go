package sim

// Control is a held input the ship polls each frame.
type Control uint8

const (
	ControlTurnLeft Control = iota
	ControlTurnRight
	ControlThrust
	ControlBrake
	ControlFire
	ControlWeapon1
	ControlWeapon2
	ControlWeapon3
	ControlWeapon4
	ControlWeapon5
	ControlWeapon6
	ControlToggleAim
)

// weaponControls maps hotkeys to weapons in order.
var weaponControls = [WeaponCount]Control{
	ControlWeapon1, ControlWeapon2, ControlWeapon3,
	ControlWeapon4, ControlWeapon5, ControlWeapon6,
}

// Controls is the read-only input surface the ship polls.
type Controls interface {
	// Down reports whether c is held this frame.
	Down(c Control) bool
	// Wheel returns the scroll delta this frame; positive cycles forward.
	Wheel() int
	// Pointer returns the aim point in world coordinates, if one is known.
	Pointer() (Vec2, bool)
}

// NoControls is a Controls with nothing pressed.
type NoControls struct{}

func (NoControls) Down(Control) bool     { return false }
func (NoControls) Wheel() int            { return 0 }
func (NoControls) Pointer() (Vec2, bool) { return Vec2{}, false }
