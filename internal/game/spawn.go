package game

// SpawnPoint is a candidate respawn location. Points keep their level-file
// declaration order, which is the deterministic tie-break.
type SpawnPoint struct {
	Position Vec3    `json:"position" msgpack:"position"`
	Yaw      float64 `json:"yaw" msgpack:"yaw"`
}

// pickSpawn selects the spawn point with the fewest living enemies inside
// the clear radius. Ties keep the earliest declared point, so the choice is
// a pure function of world state.
func (w *World) pickSpawn(forActor *Actor) SpawnPoint {
	best := w.spawns[0]
	bestCount := w.spawnCrowding(best, forActor)
	for _, sp := range w.spawns[1:] {
		if count := w.spawnCrowding(sp, forActor); count < bestCount {
			bestCount = count
			best = sp
		}
	}
	return best
}

// spawnCrowding counts the live enemies within the clear radius of a point.
func (w *World) spawnCrowding(sp SpawnPoint, forActor *Actor) int {
	count := 0
	for _, id := range w.order {
		a := w.actors[id]
		if a.ID == forActor.ID || a.IsDead() {
			continue
		}
		if forActor.Team != TeamNone && a.Team == forActor.Team {
			continue
		}
		if sp.Position.DistanceTo(a.Position) <= w.cfg.SpawnClearRadius {
			count++
		}
	}
	return count
}

// respawn places a dead actor at a freshly picked spawn point with baseline
// health, armor and the default weapon.
func (w *World) respawn(a *Actor) {
	sp := w.pickSpawn(a)
	a.Position = sp.Position
	a.Yaw = sp.Yaw
	a.Velocity = Vec3{}
	a.Grounded = true
	a.State = StateIdle
	a.Health = a.MaxHealth
	a.Armor = a.MaxArmor
	a.RespawnIn = 0
	a.LastDamager = ""
	a.Inventory = map[WeaponKind]*WeaponSlot{}
	a.Equipped = WeaponNone
	if def, ok := w.weapons.Get(w.cfg.DefaultWeapon); ok {
		a.GiveWeapon(def, def.InitialAmmo)
	}
	if a.Brain != nil {
		a.Brain.Reset()
	}
	w.emit(Event{Kind: EventRespawn, Actor: a.ID, Position: a.Position})
}
