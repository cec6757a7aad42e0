package game

import "testing"

// TestSnapshotRestoreRoundTrip verifies a restored world carries the same
// actors, projectiles, triggers and scoreboard.
func TestSnapshotRestoreRoundTrip(t *testing.T) {
	w := newTestWorld(t, nil)
	shooter := addTestActor(t, w, "shooter")
	victim := addTestActor(t, w, "victim")
	addBot(t, w, "bot")

	victim.Health = 1
	w.queueImpact(shooter.ID, victim.ID, 100)
	stepSeconds(w, 1)

	def, _ := w.weapons.Get(WeaponPlasma)
	shooter.GiveWeapon(def, def.InitialAmmo)
	shooter.Equip(WeaponPlasma)
	if _, err := w.fire(shooter); err != nil {
		t.Fatalf("fire failed: %v", err)
	}

	snap := w.Snapshot()
	restored, err := Restore(snap, WorldParams{
		Level:   snap.Level,
		Config:  DefaultConfig(),
		Match:   MatchConfig{},
		Physics: openSpace{},
		Spawns:  testSpawns(),
	})
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if restored.Tick() != w.Tick() {
		t.Errorf("Tick %d, want %d", restored.Tick(), w.Tick())
	}
	if len(restored.actors) != len(w.actors) {
		t.Fatalf("Actor count %d, want %d", len(restored.actors), len(w.actors))
	}
	for _, id := range w.order {
		orig := w.actors[id]
		got, ok := restored.Actor(id)
		if !ok {
			t.Fatalf("Actor %s missing after restore", id)
		}
		if got.Health != orig.Health || got.Frags != orig.Frags || got.Deaths != orig.Deaths {
			t.Errorf("Actor %s state mismatch after restore", id)
		}
		if got.Position != orig.Position {
			t.Errorf("Actor %s position mismatch", id)
		}
		if len(got.Inventory) != len(orig.Inventory) {
			t.Errorf("Actor %s inventory size mismatch", id)
		}
	}
	if len(restored.projectiles) != len(w.projectiles) {
		t.Errorf("Projectile count %d, want %d", len(restored.projectiles), len(w.projectiles))
	}
	if len(restored.triggers) != len(w.triggers) {
		t.Errorf("Trigger count %d, want %d", len(restored.triggers), len(w.triggers))
	}
	if restored.match.Frags[shooter.ID] != w.match.Frags[shooter.ID] {
		t.Error("Scoreboard mismatch after restore")
	}
}

// TestSnapshotRebuildsBotBrains verifies bot actors come back controllable
// even though brains never serialize.
func TestSnapshotRebuildsBotBrains(t *testing.T) {
	w := newTestWorld(t, nil)
	addBot(t, w, "bot")

	snap := w.Snapshot()
	for i := range snap.Actors {
		if snap.Actors[i].Brain != nil {
			t.Error("Snapshot should not carry bot brains")
		}
	}

	restored, err := Restore(snap, WorldParams{
		Level:   snap.Level,
		Config:  DefaultConfig(),
		Match:   MatchConfig{},
		Physics: openSpace{},
		Spawns:  testSpawns(),
	})
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	got, ok := restored.Actor("bot")
	if !ok {
		t.Fatal("Bot missing after restore")
	}
	if got.Brain == nil {
		t.Error("Restored bot should get a fresh brain")
	}

	// The restored world must be steppable.
	restored.Step(0.05)
}

// TestSnapshotPreservesEndingHold verifies a snapshot taken during the
// scoreboard hold restores with the remaining hold intact instead of ending
// on the next step.
func TestSnapshotPreservesEndingHold(t *testing.T) {
	w := newTestWorld(t, nil)
	w.match = NewMatchState(MatchConfig{FragLimit: 1, EndingHold: 5})
	killer := addTestActor(t, w, "killer")
	victim := addTestActor(t, w, "victim")
	victim.Health = 1
	victim.Armor = 0

	w.queueImpact(killer.ID, victim.ID, 100)
	stepSeconds(w, 0.5)
	if w.match.Phase != PhaseEnding {
		t.Fatalf("Expected ending phase, got %v", w.match.Phase)
	}

	snap := w.Snapshot()
	if snap.Match.EndingLeft <= 0 {
		t.Fatalf("Snapshot should carry the remaining hold, got %v", snap.Match.EndingLeft)
	}

	restored, err := Restore(snap, WorldParams{
		Level:   snap.Level,
		Config:  DefaultConfig(),
		Match:   MatchConfig{},
		Physics: openSpace{},
		Spawns:  testSpawns(),
	})
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	restored.Step(0.05)
	if restored.match.Phase != PhaseEnding {
		t.Errorf("Restored match should still be in its hold, got %v", restored.match.Phase)
	}

	stepSeconds(restored, 6)
	if restored.match.Phase != PhaseEnded {
		t.Errorf("Hold should still run out after restore, got %v", restored.match.Phase)
	}
}

// TestSnapshotIsDeepCopy verifies later simulation does not mutate a taken
// snapshot.
func TestSnapshotIsDeepCopy(t *testing.T) {
	w := newTestWorld(t, nil)
	a := addTestActor(t, w, "a")

	snap := w.Snapshot()
	before := snap.Actors[0].Health

	b := addTestActor(t, w, "b")
	a.Health = 1
	w.queueImpact(b.ID, a.ID, 500)
	stepSeconds(w, 0.1)

	if snap.Actors[0].Health != before {
		t.Error("Snapshot should be isolated from later simulation")
	}
	if len(snap.Actors) != 1 {
		t.Error("Snapshot actor list should not grow")
	}
}
