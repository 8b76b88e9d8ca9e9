package sim

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// World owns the live entity set and the run state.
//
// Structural changes made while a pass is running are staged: Add and Remove
// only record intent, and the staged changes are applied exactly once per
// tick, between the collision pass and the update pass.
type World struct {
	cfg    Config
	bounds Bounds

	live          []Entity
	pendingAdd    []Entity
	pendingRemove []Entity
	removing      map[Entity]struct{}
	fresh         map[Entity]struct{} // flushed this tick; skipped by the update pass

	ship     *Ship
	state    RunState
	running  bool
	practice bool
	ticks    uint64

	rng       *RNG
	cues      CuePlayer
	controls  Controls
	logger    *log.Logger
	rockSpeed func(level int) float64
}

// Option configures a World.
type Option func(*World)

// WithSeed seeds the world's RNG.
func WithSeed(seed int64) Option {
	return func(w *World) { w.rng = NewRNG(seed) }
}

// WithCues routes sound cues to p.
func WithCues(p CuePlayer) Option {
	return func(w *World) {
		if p != nil {
			w.cues = p
		}
	}
}

// WithControls sets the input the ship polls.
func WithControls(c Controls) Option {
	return func(w *World) { w.SetControls(c) }
}

// WithLogger sets the logger for run events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithPractice enables practice mode: weapons cost no ammo and the ship
// cannot be hurt.
func WithPractice(on bool) Option {
	return func(w *World) { w.practice = on }
}

// WithRockSpeed scales the drift of wave rocks by level.
func WithRockSpeed(f func(level int) float64) Option {
	return func(w *World) {
		if f != nil {
			w.rockSpeed = f
		}
	}
}

// NewWorld creates an empty world. Call Start to begin a run.
func NewWorld(cfg Config, opts ...Option) *World {
	w := &World{
		cfg:       cfg,
		bounds:    cfg.Bounds,
		removing:  make(map[Entity]struct{}),
		fresh:     make(map[Entity]struct{}),
		rng:       NewRNG(1),
		cues:      NopCues{},
		controls:  NoControls{},
		logger:    log.New(io.Discard),
		rockSpeed: func(int) float64 { return 1 },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start clears the world and begins a new run: a ship at the origin and a
// first wave sized to the starting level.
func (w *World) Start() {
	w.live = w.live[:0]
	w.pendingAdd = w.pendingAdd[:0]
	w.pendingRemove = w.pendingRemove[:0]
	clear(w.removing)
	clear(w.fresh)
	w.ticks = 0

	w.state = RunState{
		Lives:       w.cfg.StartLives,
		Level:       w.cfg.StartLevel,
		Weapon:      WeaponNormal,
		AmmoLockout: w.cfg.AmmoLockout,
		ToNextLife:  w.cfg.LifeThreshold,
	}
	w.ship = NewShip(core.V(0, 0), w.cfg.PointerAim)
	w.Spawn(w.ship)
	w.spawnWave(w.state.Level)
	w.running = true
	w.logger.Info("run started", "level", w.state.Level, "lives", w.state.Lives, "practice", w.practice)
}

// Add stages e for insertion at the next flush.
func (w *World) Add(e Entity) {
	w.pendingAdd = append(w.pendingAdd, e)
}

// Remove stages e for removal at the next flush. Removing an entity that is
// already staged has no further effect.
func (w *World) Remove(e Entity) {
	if _, ok := w.removing[e]; ok {
		return
	}
	w.removing[e] = struct{}{}
	w.pendingRemove = append(w.pendingRemove, e)
}

// Spawn inserts e straight into the live set. It must not be called while a
// pass is iterating; entities use Add instead.
func (w *World) Spawn(e Entity) {
	w.live = append(w.live, e)
}

// Tick advances the world by delta milliseconds.
//
// Entities staged during a tick are left out of that tick's update pass and
// take part in it from the next tick on.
func (w *World) Tick(delta int) {
	if delta < 0 {
		delta = 0
	}
	w.ticks++
	clear(w.fresh)
	carried := len(w.pendingAdd) // staged before this tick began

	w.state.AmmoLockout -= delta
	if w.state.GameOver {
		w.state.GameOverTimer -= delta
		if w.state.GameOverTimer < 0 && !w.state.BackToMenu {
			w.state.BackToMenu = true
			w.logger.Debug("game over delay elapsed")
		}
	}

	w.collide()
	w.flush(carried)

	rocks := 0
	for _, e := range w.live {
		if _, ok := w.fresh[e]; ok {
			continue
		}
		e.Update(w, delta)
		if e.Kind() == KindRock {
			rocks++
		}
	}
	for e := range w.fresh {
		if e.Kind() == KindRock {
			rocks++
		}
	}

	w.progress(rocks)
}

// collide runs every live pair once and lets both sides react.
func (w *World) collide() {
	for i := 0; i < len(w.live); i++ {
		a := w.live[i]
		for j := i + 1; j < len(w.live); j++ {
			b := w.live[j]
			if Collides(a, b) {
				a.OnCollide(w, b)
				b.OnCollide(w, a)
			}
		}
	}
}

// flush applies staged removals, then staged additions. Additions past index
// carried were staged during the current tick and are marked fresh. An entity
// staged for both never enters the live set.
func (w *World) flush(carried int) {
	if len(w.pendingRemove) > 0 {
		kept := w.live[:0]
		for _, e := range w.live {
			if _, gone := w.removing[e]; !gone {
				kept = append(kept, e)
			}
		}
		clear(w.live[len(kept):])
		w.live = kept
	}
	for i, e := range w.pendingAdd {
		if _, gone := w.removing[e]; gone {
			continue
		}
		w.live = append(w.live, e)
		if i >= carried {
			w.fresh[e] = struct{}{}
		}
	}
	clear(w.pendingAdd)
	w.pendingAdd = w.pendingAdd[:0]
	w.pendingRemove = w.pendingRemove[:0]
	clear(w.removing)
}

// progress handles level advance and extra lives after the update pass.
func (w *World) progress(rocks int) {
	if !w.running {
		return
	}
	if rocks == 0 {
		w.state.Level++
		placed := w.spawnWave(w.state.Level)
		w.cues.Play(CueLevelUp)
		w.logger.Info("level up", "level", w.state.Level, "rocks", placed)
	}
	if w.state.ToNextLife <= 0 {
		w.state.Lives++
		w.state.ToNextLife = w.cfg.LifeThreshold
		w.cues.Play(CueExtraLife)
		w.logger.Info("extra life", "lives", w.state.Lives, "score", w.state.Score)
	}
}

// spawnWave places up to count large rocks away from the ship and returns how
// many were placed. Placements overlapping the ship are retried; the wave is
// abandoned after too many retries.
func (w *World) spawnWave(count int) int {
	r := w.cfg.SpawnRadius
	speed := w.cfg.RockDrift * w.rockSpeed(w.state.Level)
	fails, placed := 0, 0
	for placed < count {
		pos := core.V(w.rng.Range(-r, r), w.rng.Range(-r, r))
		vel := core.V(w.rng.Range(-speed, speed), w.rng.Range(-speed, speed))
		rock := NewRock(pos, vel, MaxTier, w.randomSpin())
		if w.ship != nil && Collides(rock, w.ship) {
			fails++
			if fails > w.cfg.MaxSpawnFailures {
				w.logger.Debug("wave cut short", "placed", placed, "wanted", count)
				return placed
			}
			continue
		}
		w.Spawn(rock)
		placed++
	}
	return placed
}

func (w *World) randomSpin() float64 {
	return w.rng.Float64()*0.5 + 1
}

// newRock creates a rock with random spin.
func (w *World) newRock(pos, vel Vec2, tier int) *Rock {
	return NewRock(pos, vel, tier, w.randomSpin())
}

// RockDestroyed scores a destroyed rock of the given tier.
func (w *World) RockDestroyed(tier int) {
	if tier < 1 || tier > MaxTier {
		return
	}
	w.cues.Play(CueSplit)
	points := (MaxTier + 1 - tier) * 100
	w.state.Score += points
	w.state.ToNextLife -= points
}

// PlayerHit costs a life; losing the last one ends the run.
func (w *World) PlayerHit() {
	w.state.Lives--
	if w.state.Lives < 0 && !w.state.GameOver {
		w.state.GameOver = true
		w.state.GameOverTimer = w.cfg.GameOverDelay
		if w.ship != nil {
			w.Remove(w.ship)
		}
		w.logger.Info("game over", "score", w.state.Score, "level", w.state.Level, "accuracy", w.state.Accuracy())
	}
}

// ShotFired records a fire action and plays the weapon's cue.
func (w *World) ShotFired(weapon Weapon) {
	if !weapon.Valid() {
		return
	}
	spec := Weapons[weapon]
	w.state.ShotsTaken += spec.Counted
	w.cues.Play(spec.Fired)
}

// AddAmmo changes the ammo for weapon by delta, never below zero, and shows
// that weapon on the HUD. pickup plays the weapon's pickup cue.
func (w *World) AddAmmo(weapon Weapon, delta int, pickup bool) {
	if !weapon.Valid() {
		return
	}
	if weapon.Special() {
		w.state.Ammo[weapon] = max(0, w.state.Ammo[weapon]+delta)
		if pickup {
			w.cues.Play(Weapons[weapon].Pickup)
		}
	}
	w.SelectWeapon(weapon)
}

// Ammo returns the ammo held for weapon; the normal gun always reports 0.
func (w *World) Ammo(weapon Weapon) int {
	if !weapon.Special() {
		return 0
	}
	return w.state.Ammo[weapon]
}

// SelectWeapon shows weapon on the HUD.
func (w *World) SelectWeapon(weapon Weapon) {
	if weapon.Valid() {
		w.state.Weapon = weapon
	}
}

// SetShieldRemaining publishes the shield's remaining milliseconds.
func (w *World) SetShieldRemaining(ms int) {
	w.state.ShieldRemaining = ms
	w.state.ShieldActive = true
}

// ClearShieldRemaining hides the shield timer.
func (w *World) ClearShieldRemaining() {
	w.state.ShieldRemaining = 0
	w.state.ShieldActive = false
}

// SuccessfulShot counts a hit for accuracy.
func (w *World) SuccessfulShot() {
	w.state.ShotsHit++
}

// SpawnPickup drops a random pickup at pos and restarts the lockout.
func (w *World) SpawnPickup(pos Vec2) {
	w.state.AmmoLockout = w.cfg.AmmoLockout
	weapon := drawPickupWeapon(w.rng.Float64())
	d := w.cfg.PickupDrift
	vel := core.V(w.rng.Range(-d, d), w.rng.Range(-d, d))
	w.Add(NewPickup(pos, vel, weapon, w.randomSpin(), w.cfg.PickupLife))
}

// OutOfAmmo plays the low-ammo cue.
func (w *World) OutOfAmmo() {
	w.cues.Play(CueLowAmmo)
}

// ReadyToSpawn reports whether the pickup lockout has elapsed.
func (w *World) ReadyToSpawn() bool {
	return w.state.AmmoLockout <= 0
}

// ShieldDown plays the shield-down cue.
func (w *World) ShieldDown() {
	w.cues.Play(CueShieldDown)
}

// Practice reports whether practice mode is on.
func (w *World) Practice() bool { return w.practice }

// Controls returns the input the ship polls.
func (w *World) Controls() Controls { return w.controls }

// SetControls replaces the polled input; nil means nothing pressed.
func (w *World) SetControls(c Controls) {
	if c == nil {
		c = NoControls{}
	}
	w.controls = c
}

// State returns a copy of the run state.
func (w *World) State() RunState { return w.state }

// Ship returns the player's ship, which stays valid after it is removed.
func (w *World) Ship() *Ship { return w.ship }

// Bounds returns the playfield half-extents.
func (w *World) Bounds() Bounds { return w.bounds }

// Ticks returns how many ticks have run since Start.
func (w *World) Ticks() uint64 { return w.ticks }

// Entities returns the live set in update order. The slice must not be modified.
func (w *World) Entities() []Entity { return w.live }

// Count returns the number of live entities of kind k.
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.live {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

// Render draws every live entity in update order.
func (w *World) Render(c Canvas) {
	for _, e := range w.live {
		e.Render(c)
	}
}
