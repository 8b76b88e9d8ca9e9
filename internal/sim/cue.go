package sim

//go:generate go tool mockgen -destination=./mocks/cues_mock.go -package=mocks . CuePlayer

// Cue identifies a fire-and-forget sound event.
type Cue uint8

const (
	CueGun Cue = iota
	CueShotgun
	CueShieldUp
	CueLaser
	CueMulti
	CueShrapnel
	CueShotgunPickup
	CueShieldPickup
	CueLaserPickup
	CueMultiPickup
	CueShrapnelPickup
	CueSplit
	CueLevelUp
	CueExtraLife
	CueLowAmmo
	CueShieldDown

	CueCount
)

var cueNames = [CueCount]string{
	"gun", "shotgun", "shield_up", "laser", "multi", "shrapnel",
	"shotgun_pickup", "shield_pickup", "laser_pickup", "multi_pickup", "shrapnel_pickup",
	"split", "level_up", "extra_life", "low_ammo", "shield_down",
}

func (c Cue) String() string {
	if c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}

// CuePlayer plays sound cues. Play must not block; dropping a cue is fine.
type CuePlayer interface {
	Play(c Cue)
}

// NopCues discards every cue.
type NopCues struct{}

func (NopCues) Play(Cue) {}
