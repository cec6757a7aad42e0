package game

import (
	"testing"
)

// TestProjectileExpiresWithoutImpact verifies lifetime expiry removes a
// projectile silently.
func TestProjectileExpiresWithoutImpact(t *testing.T) {
	w := newTestWorld(t, nil)
	shooter := addTestActor(t, w, "shooter")
	shooter.Position = Vec3{Y: 50} // far above anything

	def, _ := w.weapons.Get(WeaponPlasma)
	shooter.GiveWeapon(def, def.InitialAmmo)
	if err := shooter.Equip(WeaponPlasma); err != nil {
		t.Fatalf("Equip failed: %v", err)
	}

	if _, err := w.fire(shooter); err != nil {
		t.Fatalf("fire failed: %v", err)
	}
	if len(w.projectiles) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(w.projectiles))
	}

	combatEvents := 0
	for i := 0; i < int((def.ProjLifetime+0.5)/0.05); i++ {
		for _, ev := range w.Step(0.05) {
			if ev.Kind == EventProjectileImpact || ev.Kind == EventDamage {
				combatEvents++
			}
		}
	}
	if len(w.projectiles) != 0 {
		t.Errorf("Projectile should be gone after lifetime, %d remain", len(w.projectiles))
	}
	if combatEvents != 0 {
		t.Errorf("Expiry should deal no damage, saw %d combat events", combatEvents)
	}
}

// TestProjectileCollisionBeatsExpiry verifies a projectile that would both
// hit and expire on the same tick deals its impact.
func TestProjectileCollisionBeatsExpiry(t *testing.T) {
	w := newTestWorld(t, wallSpace{blockAt: 0.5})
	owner := addTestActor(t, w, "owner")

	w.projectiles = append(w.projectiles, &Projectile{
		ID:       "p1",
		Kind:     ProjectilePlasma,
		Weapon:   WeaponPlasma,
		Owner:    owner.ID,
		Position: Vec3{Y: 1},
		Velocity: Vec3{Z: 20},
		Lifetime: 0.01, // expires this tick
		Damage:   30,
		Radius:   0.15,
	})

	events := w.Step(0.05)

	impact := false
	for _, ev := range events {
		if ev.Kind == EventProjectileImpact {
			impact = true
		}
	}
	if !impact {
		t.Error("Collision should be checked before lifetime expiry")
	}
	if len(w.projectiles) != 0 {
		t.Errorf("Projectile should be removed, %d remain", len(w.projectiles))
	}
}

// TestCrouchRequiresHeadroomToStand verifies an actor under a low ceiling
// stays crouched even when crouch is released.
func TestCrouchRequiresHeadroomToStand(t *testing.T) {
	w := newTestWorld(t, wallSpace{lowRoof: true})
	a := addTestActor(t, w, "crawler")

	w.applyIntent(a, Intent{Crouch: true})
	if a.State != StateCrouch {
		t.Fatalf("Expected crouch state, got %v", a.State)
	}

	w.applyIntent(a, Intent{Crouch: false})
	if a.State != StateCrouch {
		t.Errorf("Actor without headroom should stay crouched, got %v", a.State)
	}

	// Same release with clear headroom stands up.
	w2 := newTestWorld(t, nil)
	b := addTestActor(t, w2, "walker")
	w2.applyIntent(b, Intent{Crouch: true})
	w2.applyIntent(b, Intent{Crouch: false})
	if b.State == StateCrouch {
		t.Error("Actor with headroom should stand up")
	}
}

// TestMovementStates verifies the locomotion state machine transitions.
func TestMovementStates(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "runner")

	tests := []struct {
		name   string
		intent Intent
		want   MovementState
	}{
		{"idle", Intent{}, StateIdle},
		{"walk", Intent{Move: Vec3{Z: 1}}, StateWalk},
		{"run", Intent{Move: Vec3{Z: 1}, Run: true}, StateRun},
		{"crouch", Intent{Crouch: true}, StateCrouch},
		{"jump", Intent{Jump: true}, StateJump},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.State = StateIdle
			a.Grounded = true
			a.Velocity = Vec3{}
			w.applyIntent(a, tt.intent)
			if a.State != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, a.State)
			}
		})
	}
}

// TestJumpLandsBackToIdle verifies the jump -> fall -> idle arc.
func TestJumpLandsBackToIdle(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "jumper")

	if err := w.QueueIntent(a.ID, Intent{Jump: true}); err != nil {
		t.Fatalf("QueueIntent failed: %v", err)
	}
	w.Step(0.05)
	if a.Grounded {
		t.Fatal("Actor should be airborne after jumping")
	}

	stepSeconds(w, 3)
	if !a.Grounded {
		t.Fatal("Actor should have landed")
	}
	if a.State != StateIdle {
		t.Errorf("Landed actor should be idle, got %v", a.State)
	}
}

// TestRespawnAfterDelay verifies a dead actor returns with baseline loadout
// after the respawn delay.
func TestRespawnAfterDelay(t *testing.T) {
	w := newTestWorld(t, nil)
	killer := addTestActor(t, w, "killer")
	victim := addTestActor(t, w, "victim")
	victim.Health = 1
	victim.Armor = 50

	w.queueImpact(killer.ID, victim.ID, 500)
	w.resolveImpacts()
	if !victim.IsDead() {
		t.Fatal("Victim should be dead")
	}

	stepSeconds(w, w.cfg.RespawnDelay-0.2)
	if !victim.IsDead() {
		t.Fatal("Victim respawned too early")
	}

	stepSeconds(w, 0.5)
	if victim.IsDead() {
		t.Fatal("Victim should have respawned")
	}
	if victim.Health != victim.MaxHealth {
		t.Errorf("Respawned with health %v, want %v", victim.Health, victim.MaxHealth)
	}
	if victim.Armor != victim.MaxArmor {
		t.Errorf("Respawned with armor %v, want %v", victim.Armor, victim.MaxArmor)
	}
	if !victim.Owns(w.cfg.DefaultWeapon) {
		t.Error("Respawned actor should own the default weapon")
	}
	if victim.LastDamager != "" {
		t.Error("Respawn should clear the last damager")
	}
}

// TestSpawnGrantsFullHealthAndArmor verifies a joining actor starts at both
// maximums, same as a respawn.
func TestSpawnGrantsFullHealthAndArmor(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "fresh")
	if a.Health != a.MaxHealth {
		t.Errorf("Spawned with health %v, want %v", a.Health, a.MaxHealth)
	}
	if a.Armor != a.MaxArmor {
		t.Errorf("Spawned with armor %v, want %v", a.Armor, a.MaxArmor)
	}
}

// TestQueueIntentUnknownActor verifies input for a missing actor is rejected.
func TestQueueIntentUnknownActor(t *testing.T) {
	w := newTestWorld(t, nil)
	if err := w.QueueIntent("ghost", Intent{}); err != ErrNoSuchActor {
		t.Errorf("Expected ErrNoSuchActor, got %v", err)
	}
}

// TestScoreboardOrdering verifies frags desc, deaths asc, id tie-break.
func TestScoreboardOrdering(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "alpha")
	b := addTestActor(t, w, "bravo")
	c := addTestActor(t, w, "charlie")
	a.Frags, a.Deaths = 3, 2
	b.Frags, b.Deaths = 5, 0
	c.Frags, c.Deaths = 3, 1

	got := w.Scoreboard()
	want := []string{"bravo", "charlie", "alpha"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Scoreboard order %v, want %v", got, want)
		}
	}
}
