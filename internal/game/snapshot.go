package game

// Snapshot is a complete, self-contained copy of the simulation state at a
// tick boundary. One schema serves both the persistence layer (msgpack) and
// the HTTP state endpoint (json). Bot brains are excluded: they rebuild
// their plans from restored state.
type Snapshot struct {
	Level       string          `json:"level" msgpack:"level"`
	Tick        uint64          `json:"tick" msgpack:"tick"`
	Time        float64         `json:"time" msgpack:"time"`
	Actors      []Actor         `json:"actors" msgpack:"actors"`
	Projectiles []Projectile    `json:"projectiles" msgpack:"projectiles"`
	Triggers    []TriggerVolume `json:"triggers" msgpack:"triggers"`
	Match       MatchState      `json:"match" msgpack:"match"`
	ProjSeq     uint64          `json:"projSeq" msgpack:"proj_seq"`
	DropSeq     uint64          `json:"dropSeq" msgpack:"drop_seq"`
}

// Snapshot captures the current world state. Always taken between steps, so
// there are never queued impacts or half-applied intents to carry.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Level:       w.level,
		Tick:        w.tick,
		Time:        w.elapsed,
		Actors:      make([]Actor, 0, len(w.order)),
		Projectiles: make([]Projectile, 0, len(w.projectiles)),
		Triggers:    make([]TriggerVolume, 0, len(w.triggers)),
		Match:       *w.match,
		ProjSeq:     w.projSeq,
		DropSeq:     w.dropSeq,
	}
	for _, id := range w.order {
		a := *w.actors[id]
		a.Brain = nil
		a.Inventory = cloneInventory(w.actors[id].Inventory)
		snap.Actors = append(snap.Actors, a)
	}
	for _, p := range w.projectiles {
		snap.Projectiles = append(snap.Projectiles, *p)
	}
	for _, t := range w.triggers {
		snap.Triggers = append(snap.Triggers, *t)
	}
	snap.Match.Frags = cloneCounts(w.match.Frags)
	snap.Match.Deaths = cloneCounts(w.match.Deaths)
	return snap
}

// Restore rebuilds a world from a snapshot. The physics, nav graph and
// weapon table are runtime collaborators that never serialize, so the caller
// supplies them again through the same params a fresh world takes.
func Restore(snap Snapshot, p WorldParams) (*World, error) {
	w, err := NewWorld(p)
	if err != nil {
		return nil, err
	}
	w.level = snap.Level
	w.tick = snap.Tick
	w.elapsed = snap.Time
	w.projSeq = snap.ProjSeq
	w.dropSeq = snap.DropSeq

	match := snap.Match
	match.Frags = cloneCounts(snap.Match.Frags)
	match.Deaths = cloneCounts(snap.Match.Deaths)
	if match.Frags == nil {
		match.Frags = map[string]int{}
	}
	if match.Deaths == nil {
		match.Deaths = map[string]int{}
	}
	w.match = &match

	for i := range snap.Actors {
		a := snap.Actors[i]
		a.Inventory = cloneInventory(snap.Actors[i].Inventory)
		if a.Inventory == nil {
			a.Inventory = map[WeaponKind]*WeaponSlot{}
		}
		if a.Controller == ControllerBot {
			a.Brain = &BotBrain{}
		}
		w.actors[a.ID] = &a
		w.order = append(w.order, a.ID)
	}
	w.projectiles = make([]*Projectile, 0, len(snap.Projectiles))
	for i := range snap.Projectiles {
		p := snap.Projectiles[i]
		w.projectiles = append(w.projectiles, &p)
	}
	w.triggers = make([]*TriggerVolume, 0, len(snap.Triggers))
	for i := range snap.Triggers {
		t := snap.Triggers[i]
		w.triggers = append(w.triggers, &t)
	}
	return w, nil
}

func cloneInventory(in map[WeaponKind]*WeaponSlot) map[WeaponKind]*WeaponSlot {
	if in == nil {
		return nil
	}
	out := make(map[WeaponKind]*WeaponSlot, len(in))
	for k, v := range in {
		slot := *v
		out[k] = &slot
	}
	return out
}

func cloneCounts(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
