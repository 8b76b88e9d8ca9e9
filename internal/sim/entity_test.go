package sim

import (
	"math"
	"sort"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestRockSplitYieldsTwoOpposedChildren(t *testing.T) {
	for _, tier := range []int{3, 2} {
		cues := &cueLog{}
		w := newTestWorld(WithCues(cues))
		w.state.ToNextLife = 25000
		rock := NewRock(core.V(0, 0), core.V(1, 1), tier, 1)
		reason := newProbe(1, 0, 0.5)

		rock.Split(w, reason)

		kids := pending(w, KindRock)
		if len(kids) != 2 {
			t.Fatalf("tier %d: children = %d, expected 2", tier, len(kids))
		}
		a, b := kids[0].(*Rock), kids[1].(*Rock)
		if a.Tier() != tier-1 || b.Tier() != tier-1 {
			t.Errorf("tier %d: child tiers = %d, %d", tier, a.Tier(), b.Tier())
		}
		sum := a.Body().Vel.Add(b.Body().Vel)
		if !near(sum.X, 0) || !near(sum.Y, 0) {
			t.Errorf("tier %d: child momenta not antiparallel, sum = %+v", tier, sum)
		}
		if !near(a.Body().Vel.Len(), b.Body().Vel.Len()) || a.Body().Vel.Len() == 0 {
			t.Errorf("tier %d: child speeds differ or are zero", tier)
		}

		// The offset is perpendicular to the line from the impact to the rock.
		off := a.Body().Pos.Sub(rock.Body().Pos)
		if !near(off.Dot(core.V(-1, 0)), 0) {
			t.Errorf("tier %d: child offset %+v not perpendicular to impact", tier, off)
		}
		if !near(off.Len(), float64(tier)*0.2) {
			t.Errorf("tier %d: offset length = %v, expected %v", tier, off.Len(), float64(tier)*0.2)
		}

		if !contains(w.pendingRemove, rock) {
			t.Errorf("tier %d: parent not staged for removal", tier)
		}
		if cues.count(CueSplit) != 1 {
			t.Errorf("tier %d: split cues = %d", tier, cues.count(CueSplit))
		}
	}
}

func TestRockSplitsOnlyOnce(t *testing.T) {
	w := newTestWorld()
	rock := NewRock(core.V(0, 0), core.V(0, 0), 3, 1)
	reason := newProbe(1, 0, 0.5)

	rock.Split(w, reason)
	rock.Split(w, reason)

	if got := len(pending(w, KindRock)); got != 2 {
		t.Errorf("children = %d, expected 2", got)
	}
	if w.state.Score != 100 {
		t.Errorf("score = %d, expected 100", w.state.Score)
	}
}

func TestDeadCentreSplitStillSeparates(t *testing.T) {
	w := newTestWorld()
	rock := NewRock(core.V(3, 3), core.V(0, 0), 2, 1)
	rock.Split(w, newProbe(3, 3, 0.5))

	kids := pending(w, KindRock)
	if len(kids) != 2 {
		t.Fatalf("children = %d, expected 2", len(kids))
	}
	if kids[0].Body().Pos.Dist(kids[1].Body().Pos) == 0 {
		t.Error("children spawned on top of each other")
	}
}

func TestSmallRockPickupRate(t *testing.T) {
	const trials = 20000

	run := func(lockout int) float64 {
		w := newTestWorld()
		spawned := 0
		for range trials {
			w.state.AmmoLockout = lockout
			rock := NewRock(core.V(0, 0), core.V(0, 0), 1, 1)
			rock.Split(w, newProbe(1, 0, 0.5))
			if n := len(pending(w, KindRock)); n != 0 {
				t.Fatalf("small rock produced %d children", n)
			}
			spawned += len(pending(w, KindPickup))
			w.pendingAdd = w.pendingAdd[:0]
			w.pendingRemove = w.pendingRemove[:0]
			clear(w.removing)
		}
		return float64(spawned) / trials
	}

	if rate := run(0); math.Abs(rate-0.10) > 0.015 {
		t.Errorf("unlocked pickup rate = %.4f, expected about 0.10", rate)
	}
	if rate := run(250); rate != 0 {
		t.Errorf("locked pickup rate = %.4f, expected 0", rate)
	}
}

func TestRockBouncesAndReversesSpin(t *testing.T) {
	rock := NewRock(core.V(2, 1), core.V(0, 0), 3, 1.2)
	rock.OnCollide(nil, newProbe(0, 0, 1))

	if v := rock.Body().Vel; !near(v.X, 2) || !near(v.Y, 1) {
		t.Errorf("vel = %+v, expected (2, 1)", v)
	}
	if !near(rock.Spin(), -1.2) {
		t.Errorf("spin = %v, expected -1.2", rock.Spin())
	}
}

func TestShotgunFiresThreeShotsForOneAmmo(t *testing.T) {
	cues := &cueLog{}
	w := newTestWorld(WithCues(cues), WithControls(hold(ControlFire)))
	ship := NewShip(core.V(0, 0), false)
	w.ship = ship
	w.Spawn(ship)
	w.state.Ammo[WeaponShotgun] = 8
	ship.ChangeWeapon(w, WeaponShotgun)

	w.Tick(16)

	if got := w.Ammo(WeaponShotgun); got != 7 {
		t.Errorf("ammo = %d, expected 7", got)
	}
	shots := pending(w, KindShot)
	if len(shots) != 3 {
		t.Fatalf("shots = %d, expected 3", len(shots))
	}
	headings := make([]float64, 0, 3)
	for _, s := range shots {
		headings = append(headings, core.HeadingOf(s.Body().Vel))
	}
	sort.Float64s(headings)
	if !near(headings[1]-headings[0], 15) || !near(headings[2]-headings[1], 15) {
		t.Errorf("headings %v are not 15 degrees apart", headings)
	}
	if w.state.ShotsTaken != 3 {
		t.Errorf("ShotsTaken = %d, expected 3", w.state.ShotsTaken)
	}
	if cues.count(CueShotgun) != 1 {
		t.Errorf("shotgun cues = %d, expected 1", cues.count(CueShotgun))
	}
}

func TestDepletedWeaponFallsBackToNormal(t *testing.T) {
	for _, weapon := range []Weapon{WeaponShotgun, WeaponShield, WeaponLaser, WeaponMulti, WeaponShrapnel} {
		t.Run(weapon.String(), func(t *testing.T) {
			cues := &cueLog{}
			w := newTestWorld(WithCues(cues), WithControls(hold(ControlFire)))
			ship := NewShip(core.V(0, 0), false)
			w.Spawn(ship)
			ship.ChangeWeapon(w, weapon)

			w.Tick(16)

			if ship.Weapon() != WeaponNormal {
				t.Errorf("weapon = %v, expected normal", ship.Weapon())
			}
			if w.state.Weapon != WeaponNormal {
				t.Errorf("HUD weapon = %v, expected normal", w.state.Weapon)
			}
			if got := w.Ammo(weapon); got != 0 {
				t.Errorf("ammo = %d, expected 0", got)
			}
			if got := cues.count(CueLowAmmo); got != 1 {
				t.Errorf("low-ammo cues = %d, expected 1", got)
			}
			if n := len(w.pendingAdd); n != 0 {
				t.Errorf("fired %d entities with no ammo", n)
			}
			if ship.Immune() {
				t.Error("no shield should have been raised")
			}
		})
	}
}

func TestPracticeFiresWithoutAmmo(t *testing.T) {
	w := newTestWorld(WithPractice(true), WithControls(hold(ControlFire)))
	ship := NewShip(core.V(0, 0), false)
	w.Spawn(ship)
	ship.ChangeWeapon(w, WeaponLaser)

	w.Tick(16)

	if ship.Weapon() != WeaponLaser {
		t.Errorf("weapon = %v, expected laser", ship.Weapon())
	}
	if got := len(pending(w, KindShot)); got != 1 {
		t.Errorf("shots = %d, expected 1", got)
	}
}

func TestPracticeShipIsNeverHurt(t *testing.T) {
	w := newTestWorld(WithPractice(true))
	ship := NewShip(core.V(0, 0), false)
	w.ship = ship
	w.Spawn(ship)
	w.Spawn(NewRock(core.V(1, 0), core.V(0, 0), 3, 1))
	w.state.Lives = 0

	w.Tick(16)

	if w.State().GameOver || w.State().Lives != 0 {
		t.Errorf("practice ship was hurt: %+v", w.State())
	}
}

func TestShieldActivationRevertsToNormal(t *testing.T) {
	cues := &cueLog{}
	w := newTestWorld(WithCues(cues), WithControls(hold(ControlFire)))
	ship := NewShip(core.V(0, 0), false)
	w.Spawn(ship)
	w.state.Ammo[WeaponShield] = 1
	ship.ChangeWeapon(w, WeaponShield)

	w.Tick(16)

	shields := pending(w, KindShield)
	if len(shields) != 1 {
		t.Fatalf("shields = %d, expected 1", len(shields))
	}
	if !ship.Immune() {
		t.Error("raising a shield should make the ship immune")
	}
	if ship.Weapon() != WeaponNormal {
		t.Errorf("weapon = %v, expected normal after shield", ship.Weapon())
	}
	if w.Ammo(WeaponShield) != 0 || w.state.ShotsTaken != 0 {
		t.Errorf("ammo = %d, shots = %d", w.Ammo(WeaponShield), w.state.ShotsTaken)
	}
	if cues.count(CueShieldUp) != 1 {
		t.Errorf("shield-up cues = %d, expected 1", cues.count(CueShieldUp))
	}
}

func TestShieldAbsorbsRocks(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		w := newTestWorld()
		ship := NewShip(core.V(0, 0), false)
		shield := NewShield(ship, 25000, 3.5, 1000)

		for range n {
			rock := NewRock(core.V(2, 0), core.V(0, 0), 3, 1)
			shield.OnCollide(w, rock)
		}
		shield.Update(w, 100)

		expected := 25000 - 100 - 1000*n
		if shield.Remaining() != expected {
			t.Errorf("%d hits: remaining = %d, expected %d", n, shield.Remaining(), expected)
		}
		if got := len(pending(w, KindRock)); got != 2*n {
			t.Errorf("%d hits: rock children = %d, expected %d", n, got, 2*n)
		}
	}
}

func TestShieldIgnoresDestroyedRock(t *testing.T) {
	w := newTestWorld()
	ship := NewShip(core.V(0, 0), false)
	shield := NewShield(ship, 25000, 3.5, 1000)
	rock := NewRock(core.V(2, 0), core.V(0, 0), 3, 1)
	rock.Split(w, ship)

	shield.OnCollide(w, rock)

	if shield.Remaining() != 25000 {
		t.Errorf("remaining = %d, expected 25000", shield.Remaining())
	}
}

func TestShieldExpires(t *testing.T) {
	cues := &cueLog{}
	w := newTestWorld(WithCues(cues))
	ship := NewShip(core.V(0, 0), false)
	ship.body.Vel = core.V(3, 0)
	shield := NewShield(ship, 500, 3.5, 1000)

	shield.Update(w, 400)
	if !w.state.ShieldActive || w.state.ShieldRemaining != 100 {
		t.Errorf("shield timer = %v/%d", w.state.ShieldActive, w.state.ShieldRemaining)
	}
	if v := shield.Body().Vel; !near(v.X, 3) {
		t.Errorf("shield should follow ship velocity, got %+v", v)
	}

	shield.Update(w, 100)
	if ship.Immune() {
		t.Error("expired shield should drop immunity")
	}
	if w.state.ShieldActive {
		t.Error("expired shield should clear the HUD timer")
	}
	if !contains(w.pendingRemove, shield) {
		t.Error("expired shield should be removed")
	}
	if cues.count(CueShieldDown) != 1 {
		t.Errorf("shield-down cues = %d, expected 1", cues.count(CueShieldDown))
	}
}

func TestOverlappingShieldsKeepImmunity(t *testing.T) {
	w := newTestWorld()
	ship := NewShip(core.V(0, 0), false)
	first := NewShield(ship, 100, 3.5, 1000)
	_ = NewShield(ship, 5000, 3.5, 1000)

	first.Update(w, 200)

	if !ship.Immune() {
		t.Error("second shield should keep the ship immune")
	}
}

func TestShotHitsRock(t *testing.T) {
	tests := []struct {
		name        string
		params      ShotParams
		removed     bool
		branchShots int
	}{
		{"normal shot is consumed", Weapons[WeaponNormal].Shot, true, 0},
		{"laser passes through", Weapons[WeaponLaser].Shot, false, 0},
		{"shrapnel branches", Weapons[WeaponShrapnel].Shot, true, 2},
		{"tiny shrapnel does not branch", ShotParams{Life: 100, Size: 0.45, Destroyable: true, Branch: true}, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			shot := NewShot(core.V(0, 0), core.V(0, 50), tc.params)
			rock := NewRock(core.V(0, 1), core.V(0, 0), 1, 1)

			shot.OnCollide(w, rock)

			if w.state.ShotsHit != 1 {
				t.Errorf("ShotsHit = %d, expected 1", w.state.ShotsHit)
			}
			if !rock.Destroyed() {
				t.Error("rock should be split")
			}
			if got := contains(w.pendingRemove, shot); got != tc.removed {
				t.Errorf("shot removed = %v, expected %v", got, tc.removed)
			}
			branches := pending(w, KindShot)
			if len(branches) != tc.branchShots {
				t.Fatalf("branch shots = %d, expected %d", len(branches), tc.branchShots)
			}
			for _, b := range branches {
				child := b.(*Shot)
				if !near(child.Size(), tc.params.Size/1.5) {
					t.Errorf("branch size = %v, expected %v", child.Size(), tc.params.Size/1.5)
				}
				if !child.Params().Branch || !child.Params().Destroyable {
					t.Error("branch shots should branch again and be destroyable")
				}
				diff := math.Abs(core.HeadingOf(child.Body().Vel) - core.HeadingOf(shot.Body().Vel))
				if !near(diff, 15) {
					t.Errorf("branch heading differs by %v, expected 15", diff)
				}
			}
		})
	}
}

func TestShotIgnoresDestroyedRock(t *testing.T) {
	w := newTestWorld()
	rock := NewRock(core.V(0, 1), core.V(0, 0), 1, 1)
	rock.Split(w, newProbe(0, 0, 1))
	shot := NewShot(core.V(0, 0), core.V(0, 50), Weapons[WeaponNormal].Shot)

	shot.OnCollide(w, rock)

	if w.state.ShotsHit != 0 || contains(w.pendingRemove, shot) {
		t.Error("a shot should pass through a rock that is already destroyed")
	}
}

func TestShotExpires(t *testing.T) {
	w := newTestWorld()
	shot := NewShot(core.V(0, 0), core.V(10, 0), ShotParams{Life: 100, Size: 1, TrailLife: 50})

	shot.Update(w, 100)
	if contains(w.pendingRemove, shot) {
		t.Fatal("shot with zero life left should survive this frame")
	}
	if !near(shot.Body().Pos.X, 1) {
		t.Errorf("shot x = %v, expected 1", shot.Body().Pos.X)
	}

	shot.Update(w, 1)
	if !contains(w.pendingRemove, shot) {
		t.Error("shot past its life should be removed")
	}
}

func TestPickupGrantsAmmoToShip(t *testing.T) {
	cues := &cueLog{}
	w := newTestWorld(WithCues(cues))
	ship := NewShip(core.V(0, 0), false)
	pickup := NewPickup(core.V(1, 0), core.V(0, 0), WeaponShotgun, 1, 20000)
	w.Spawn(ship)
	w.Spawn(pickup)

	w.Tick(16)

	if got := w.Ammo(WeaponShotgun); got != 8 {
		t.Errorf("shotgun ammo = %d, expected 8", got)
	}
	if ship.Weapon() != WeaponShotgun {
		t.Errorf("weapon = %v, expected shotgun", ship.Weapon())
	}
	if contains(w.Entities(), pickup) {
		t.Error("pickup should be consumed")
	}
	if cues.count(CueShotgunPickup) != 1 {
		t.Errorf("pickup cues = %d, expected 1", cues.count(CueShotgunPickup))
	}
}

func TestPickupGrants(t *testing.T) {
	expected := map[Weapon]int{
		WeaponShotgun:  8,
		WeaponShield:   1,
		WeaponLaser:    3,
		WeaponMulti:    25,
		WeaponShrapnel: 4,
	}
	for weapon, grant := range expected {
		w := newTestWorld()
		NewPickup(core.V(0, 0), core.V(0, 0), weapon, 1, 100).OnCollide(w, NewShip(core.V(0, 0), false))
		if got := w.Ammo(weapon); got != grant {
			t.Errorf("%v pickup granted %d, expected %d", weapon, got, grant)
		}
	}
}

func TestPickupExpires(t *testing.T) {
	w := newTestWorld()
	p := NewPickup(core.V(0, 0), core.V(0, 0), WeaponLaser, 1, 100)

	p.Update(w, 99)
	if contains(w.pendingRemove, p) {
		t.Fatal("pickup removed early")
	}
	p.Update(w, 1)
	if !contains(w.pendingRemove, p) {
		t.Error("pickup should expire at zero life")
	}
}

func TestShipTurnAffectsThrustNextFrame(t *testing.T) {
	w := newTestWorld(WithControls(hold(ControlTurnLeft, ControlThrust)))
	ship := NewShip(core.V(0, 0), false)
	w.Spawn(ship)

	w.Tick(20)

	// Thrust used the initial forward (0, 1); the turn applies from now on.
	if v := ship.Body().Vel; !near(v.X, 0) || !near(v.Y, 20.0/50) {
		t.Errorf("vel after first frame = %+v, expected (0, 0.4)", v)
	}
	if !near(ship.Body().Rotation, 4) {
		t.Errorf("rotation = %v, expected 4", ship.Body().Rotation)
	}
	if f := ship.Forward(); !near(f.X, core.Heading(4).X) || !near(f.Y, core.Heading(4).Y) {
		t.Errorf("forward = %+v, expected heading of 4 degrees", f)
	}
}

func TestShipTurnRightWraps(t *testing.T) {
	w := newTestWorld(WithControls(hold(ControlTurnRight)))
	ship := NewShip(core.V(0, 0), false)
	w.Spawn(ship)

	w.Tick(20)

	if !near(ship.Body().Rotation, 356) {
		t.Errorf("rotation = %v, expected 356", ship.Body().Rotation)
	}
}

func TestShipPointerAimIsImmediate(t *testing.T) {
	target := core.V(10, 0)
	in := hold(ControlThrust)
	in.pointer = &target
	w := newTestWorld(WithControls(in))
	ship := NewShip(core.V(0, 0), true)
	w.Spawn(ship)

	w.Tick(50)

	if !near(ship.Body().Rotation, 90) {
		t.Errorf("rotation = %v, expected 90", ship.Body().Rotation)
	}
	if v := ship.Body().Vel; !near(v.X, 1) || !near(v.Y, 0) {
		t.Errorf("thrust should follow the pointer this frame, vel = %+v", v)
	}
}

func TestShipBrake(t *testing.T) {
	w := newTestWorld(WithControls(hold(ControlBrake)))
	ship := NewShip(core.V(0, 0), false)
	ship.body.Vel = core.V(3.009, 0)
	w.Spawn(ship)

	w.Tick(16)

	if !near(ship.Body().Vel.X, 3) {
		t.Errorf("braked vx = %v, expected 3", ship.Body().Vel.X)
	}
}

func TestShipAimToggleDebounce(t *testing.T) {
	w := newTestWorld(WithControls(hold(ControlToggleAim)))
	ship := NewShip(core.V(0, 0), true)
	w.Spawn(ship)

	w.Tick(100)
	if ship.PointerAim() {
		t.Fatal("first press should toggle aim off")
	}
	w.Tick(100)
	w.Tick(100)
	if ship.PointerAim() {
		t.Fatal("held toggle flipped again inside the debounce window")
	}
	w.Tick(100)
	if !ship.PointerAim() {
		t.Error("toggle should flip again once the debounce elapses")
	}
}

func TestShipWheelCyclesWithWrap(t *testing.T) {
	tests := []struct {
		name     string
		from     Weapon
		wheel    int
		expected Weapon
	}{
		{"up from normal", WeaponNormal, 1, WeaponShotgun},
		{"down from normal wraps", WeaponNormal, -1, WeaponShrapnel},
		{"up from shrapnel wraps", WeaponShrapnel, 1, WeaponNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := hold()
			in.wheel = tc.wheel
			w := newTestWorld(WithControls(in))
			ship := NewShip(core.V(0, 0), false)
			w.Spawn(ship)
			ship.ChangeWeapon(w, tc.from)

			w.Tick(16)

			if ship.Weapon() != tc.expected {
				t.Errorf("weapon = %v, expected %v", ship.Weapon(), tc.expected)
			}
		})
	}
}

func TestShipHotkeysSetInterval(t *testing.T) {
	for i, c := range weaponControls {
		w := newTestWorld(WithControls(hold(c)))
		ship := NewShip(core.V(0, 0), false)
		w.Spawn(ship)

		w.Tick(16)

		weapon := Weapon(i)
		if ship.Weapon() != weapon {
			t.Errorf("hotkey %d selected %v", i+1, ship.Weapon())
		}
		if ship.Interval() != Weapons[weapon].Interval {
			t.Errorf("%v interval = %d, expected %d", weapon, ship.Interval(), Weapons[weapon].Interval)
		}
	}

	w := newTestWorld()
	ship := NewShip(core.V(0, 0), false)
	ship.ChangeWeapon(w, Weapon(17))
	if ship.Weapon() != WeaponNormal {
		t.Error("unknown weapon should be ignored")
	}
}

func TestShipFireRate(t *testing.T) {
	w := newTestWorld(WithControls(hold(ControlFire)))
	ship := NewShip(core.V(0, 0), false)
	w.Spawn(ship)

	fired := 0
	for range 60 {
		w.Tick(10)
		fired += len(pending(w, KindShot))
		w.pendingAdd = w.pendingAdd[:0]
	}

	// 600ms of held fire with a 300ms interval: t=10 and t=310.
	if fired != 2 {
		t.Errorf("fired %d shots, expected 2", fired)
	}
}

func TestShipHitBouncesAndCostsLife(t *testing.T) {
	w := newTestWorld()
	ship := NewShip(core.V(0, 0), false)
	w.ship = ship
	rock := NewRock(core.V(-1, 0), core.V(0, 0), 3, 1)

	ship.OnCollide(w, rock)

	if w.state.Lives != -1 {
		t.Errorf("lives = %d, expected -1", w.state.Lives)
	}
	if v := ship.Body().Vel; !near(v.X, 1) || !near(v.Y, 0) {
		t.Errorf("ship vel = %+v, expected (1, 0)", v)
	}
	if !rock.Destroyed() {
		t.Error("ship contact should split the rock")
	}
}

func TestImmuneShipIsNotHurt(t *testing.T) {
	w := newTestWorld()
	w.state.Lives = 2
	ship := NewShip(core.V(0, 0), false)
	NewShield(ship, 1000, 3.5, 1000)

	ship.OnCollide(w, NewRock(core.V(-1, 0), core.V(0, 0), 3, 1))

	if w.state.Lives != 2 {
		t.Errorf("lives = %d, expected 2", w.state.Lives)
	}
}
