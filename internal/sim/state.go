package sim

import (
	"fmt"
	"strconv"
)

// RunState is the scoring and timer record for one run.
type RunState struct {
	Score      int
	Lives      int // negative once the run is over
	Level      int // drives wave size
	Weapon     Weapon
	Ammo       [WeaponCount]int
	ShotsTaken int
	ShotsHit   int

	AmmoLockout int // milliseconds until a pickup may spawn
	ToNextLife  int // points left before an extra life

	GameOver      bool
	GameOverTimer int
	BackToMenu    bool // the game-over delay has elapsed

	ShieldRemaining int
	ShieldActive    bool
}

// Accuracy returns hits per shot in [0, 1], or 1 when nothing was fired.
func (s RunState) Accuracy() float64 {
	if s.ShotsTaken == 0 {
		return 1
	}
	return float64(s.ShotsHit) / float64(s.ShotsTaken)
}

// HUD is the text state published for an overlay.
type HUD struct {
	Score       int
	Lives       int
	LevelLabel  string
	AmmoLabel   string
	AmmoAmount  string // empty for the normal gun
	NoAmmo      bool
	ShieldLabel string // empty when no shield is up
	GameOver    bool
	Accuracy    float64
	Practice    bool
}

// AccuracyLabel formats accuracy as a percentage with two decimals.
func (h HUD) AccuracyLabel() string {
	return fmt.Sprintf("Accuracy:%%%.2f", h.Accuracy*100)
}

// HUD returns the current overlay state.
func (w *World) HUD() HUD {
	s := w.state
	h := HUD{
		Score:      s.Score,
		Lives:      s.Lives,
		LevelLabel: fmt.Sprintf("Level%d", s.Level-w.cfg.StartLevel+1),
		GameOver:   s.GameOver,
		Accuracy:   s.Accuracy(),
		Practice:   w.practice,
	}
	if s.Weapon.Valid() {
		h.AmmoLabel = Weapons[s.Weapon].Label
		if s.Weapon.Special() {
			h.AmmoAmount = strconv.Itoa(s.Ammo[s.Weapon])
			h.NoAmmo = s.Ammo[s.Weapon] == 0
		}
	}
	if s.ShieldActive {
		h.ShieldLabel = fmt.Sprintf("REMAINING:%.2f", float64(s.ShieldRemaining)/1000)
	}
	return h
}
