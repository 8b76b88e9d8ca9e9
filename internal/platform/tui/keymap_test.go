package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"left turns", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTurnLeft, false},
		{"d turns right", runeKey('d'), core.ActionTurnRight, false},
		{"up thrusts", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"s brakes", runeKey('s'), core.ActionBrake, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"4 picks laser", runeKey('4'), core.ActionWeapon4, false},
		{"tab toggles aim", tea.KeyMsg{Type: tea.KeyTab}, core.ActionToggleAim, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('w'), &frame) {
		t.Fatal("w should not quit")
	}
	if !frame.Has(core.ActionThrust) {
		t.Error("frame missing thrust")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	buttons := []struct {
		button tea.MouseButton
		action core.Action
		wheel  int
	}{
		{tea.MouseButtonLeft, core.ActionFire, 0},
		{tea.MouseButtonRight, core.ActionThrust, 0},
		{tea.MouseButtonMiddle, core.ActionBrake, 0},
		{tea.MouseButtonWheelUp, core.ActionNone, 1},
		{tea.MouseButtonWheelDown, core.ActionNone, -1},
	}
	for _, tt := range buttons {
		if got := km.MapMouseButton(tt.button); got != tt.action {
			t.Errorf("MapMouseButton(%v) = %v, want %v", tt.button, got, tt.action)
		}
		if got := km.MapWheel(tt.button); got != tt.wheel {
			t.Errorf("MapWheel(%v) = %d, want %d", tt.button, got, tt.wheel)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
