package game

import "testing"

func addMedkit(w *World, pos Vec3, cooldown float64) *TriggerVolume {
	tr := &TriggerVolume{
		ID:        "medkit-1",
		Kind:      TriggerItemPickup,
		Center:    pos,
		Extents:   Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Item:      ItemMedkit,
		Cooldown:  cooldown,
		Available: true,
	}
	w.triggers = append(w.triggers, tr)
	return tr
}

// TestPickupGrantsOnce verifies two actors overlapping the same pickup on
// one tick heal exactly one of them.
func TestPickupGrantsOnce(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "a")
	b := addTestActor(t, w, "b")
	a.Health, b.Health = 50, 50
	a.Position = Vec3{X: 5, Z: 5}
	b.Position = Vec3{X: 5, Z: 5}
	addMedkit(w, Vec3{X: 5, Z: 5}, 10)

	w.updateTriggers(0.05)

	healed := 0
	if a.Health > 50 {
		healed++
	}
	if b.Health > 50 {
		healed++
	}
	if healed != 1 {
		t.Errorf("Exactly one actor should be healed, got %d", healed)
	}
}

// TestPickupSkipsFullHealth verifies a medkit is left for someone who needs it.
func TestPickupSkipsFullHealth(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "full")
	a.Position = Vec3{X: 5, Z: 5}
	tr := addMedkit(w, Vec3{X: 5, Z: 5}, 10)

	w.updateTriggers(0.05)
	if !tr.Available {
		t.Error("Full-health actor should not consume a medkit")
	}
}

// TestPickupCooldownRespawn verifies a taken pickup returns after its
// cooldown.
func TestPickupCooldownRespawn(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "a")
	a.Health = 50
	a.Position = Vec3{X: 5, Z: 5}
	tr := addMedkit(w, Vec3{X: 5, Z: 5}, 1)

	w.updateTriggers(0.05)
	if tr.Available {
		t.Fatal("Pickup should be consumed")
	}

	a.Position = Vec3{} // step away
	for i := 0; i < 25; i++ {
		w.updateTriggers(0.05)
	}
	if !tr.Available {
		t.Error("Pickup should respawn after its cooldown")
	}
}

// TestDroppedItemDespawns verifies a world drop disappears at end of life.
func TestDroppedItemDespawns(t *testing.T) {
	w := newTestWorld(t, nil)
	w.triggers = append(w.triggers, &TriggerVolume{
		ID:           "drop-1",
		Kind:         TriggerItemPickup,
		Center:       Vec3{X: 5, Z: 5},
		Extents:      Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Item:         ItemKind(WeaponRocket),
		Available:    true,
		Despawns:     true,
		LifetimeLeft: 1,
	})

	for i := 0; i < 25; i++ {
		w.updateTriggers(0.05)
	}
	if len(w.triggers) != 0 {
		t.Errorf("Dropped item should despawn, %d triggers remain", len(w.triggers))
	}
}

// TestWeaponPickupGrantsAmmoWhenOwned verifies picking up an owned weapon
// tops up its ammo instead.
func TestWeaponPickupGrantsAmmoWhenOwned(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "a")
	def, _ := w.weapons.Get(WeaponM4)
	a.Slot(WeaponM4).Ammo = 10
	a.Position = Vec3{X: 5, Z: 5}

	w.triggers = append(w.triggers, &TriggerVolume{
		ID:        "m4-1",
		Kind:      TriggerItemPickup,
		Center:    Vec3{X: 5, Z: 5},
		Extents:   Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Item:      ItemKind(WeaponM4),
		Cooldown:  10,
		Available: true,
	})
	w.updateTriggers(0.05)

	if got := a.Slot(WeaponM4).Ammo; got != 10+def.PickupAmmo {
		t.Errorf("Expected ammo %d, got %d", 10+def.PickupAmmo, got)
	}
}

// TestAmmoBoxNeedsWeapon verifies a loose ammo box is useless without the
// matching weapon.
func TestAmmoBoxNeedsWeapon(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "a")
	a.Position = Vec3{X: 5, Z: 5}

	tr := &TriggerVolume{
		ID:        "cells-1",
		Kind:      TriggerItemPickup,
		Center:    Vec3{X: 5, Z: 5},
		Extents:   Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Item:      ItemCells,
		Cooldown:  10,
		Available: true,
	}
	w.triggers = append(w.triggers, tr)
	w.updateTriggers(0.05)

	if !tr.Available {
		t.Error("Ammo for an unowned weapon should not be consumed")
	}
	if a.Owns(WeaponPlasma) {
		t.Error("Ammo box should not grant the weapon itself")
	}
}

// TestJumpPadLaunches verifies pad overlap replaces the actor's velocity.
func TestJumpPadLaunches(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "a")
	a.Position = Vec3{X: 5, Z: 5}

	w.triggers = append(w.triggers, &TriggerVolume{
		ID:      "pad-1",
		Kind:    TriggerJumpPad,
		Center:  Vec3{X: 5, Z: 5},
		Extents: Vec3{X: 1, Y: 1, Z: 1},
		Launch:  Vec3{Y: 9, Z: 3},
	})
	w.updateTriggers(0.05)

	if a.Velocity != (Vec3{Y: 9, Z: 3}) {
		t.Errorf("Expected launch velocity, got %+v", a.Velocity)
	}
	if a.Grounded {
		t.Error("Launched actor should be airborne")
	}
}

// TestDeathZoneKills verifies the kill volume defeats armor outright.
func TestDeathZoneKills(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "a")
	a.Armor = 100
	a.Position = Vec3{X: 5, Z: 5}

	w.triggers = append(w.triggers, &TriggerVolume{
		ID:      "lava-1",
		Kind:    TriggerDeathZone,
		Center:  Vec3{X: 5, Z: 5},
		Extents: Vec3{X: 1, Y: 1, Z: 1},
	})
	w.updateTriggers(0.05)
	w.resolveImpacts()

	if !a.IsDead() {
		t.Error("Actor in a death zone should die regardless of armor")
	}
}
