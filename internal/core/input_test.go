package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionThrust)
	if !f.Has(ActionFire) || !f.Has(ActionThrust) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionBrake) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Wheel = 2
	f.Pointer = Pointer{X: 3, Y: 4, Valid: true}

	f.Clear()

	if f.Has(ActionFire) || f.Wheel != 0 {
		t.Errorf("Clear left actions or wheel: %+v", f)
	}
	if !f.Pointer.Valid || f.Pointer.X != 3 {
		t.Errorf("Clear should keep the pointer, got %+v", f.Pointer)
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionTurnLeft)
	f.Wheel = -1

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionTurnLeft) || c.Wheel != -1 {
		t.Errorf("clone changed with original: %+v", c)
	}
}

func TestActionString(t *testing.T) {
	if got := ActionWeapon4.String(); got != "Weapon4" {
		t.Errorf("ActionWeapon4.String() = %q", got)
	}
	if got := Action(999).String(); got != "Unknown" {
		t.Errorf("unknown action String() = %q", got)
	}
}
