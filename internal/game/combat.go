package game

import "fmt"

// pendingImpact is a queued damage application. All damage funnels through
// this queue so deaths resolve at one point in the tick, after movement and
// projectiles have run.
type pendingImpact struct {
	attacker    string // weak reference, may be gone or empty
	victim      string
	damage      float64
	bypassArmor bool
}

func (w *World) queueImpact(attacker, victim string, damage float64) {
	w.queueImpactRaw(attacker, victim, damage, false)
}

func (w *World) queueImpactRaw(attacker, victim string, damage float64, bypassArmor bool) {
	w.impacts = append(w.impacts, pendingImpact{attacker: attacker, victim: victim, damage: damage, bypassArmor: bypassArmor})
}

// resolveImpacts applies all queued damage in queue order. Impacts on actors
// that died earlier in the same queue are dropped, so a kill is credited
// exactly once however many projectiles land together.
func (w *World) resolveImpacts() {
	impacts := w.impacts
	w.impacts = w.impacts[:0]
	for _, imp := range impacts {
		victim, ok := w.actors[imp.victim]
		if !ok || victim.IsDead() {
			continue
		}
		w.applyDamage(imp.attacker, victim, imp.damage, imp.bypassArmor)
	}
}

// applyDamage splits damage between armor and health and handles death.
// Armor absorbs a fixed fraction of incoming damage, up to what armor
// remains; the rest goes to health.
func (w *World) applyDamage(attacker string, victim *Actor, damage float64, bypassArmor bool) {
	if damage <= 0 {
		return
	}
	absorbed := 0.0
	if !bypassArmor && victim.Armor > 0 {
		absorbed = damage * w.cfg.ArmorAbsorb
		if absorbed > victim.Armor {
			absorbed = victim.Armor
		}
		victim.Armor -= absorbed
	}
	victim.Health -= damage - absorbed
	if attacker != "" && attacker != victim.ID {
		victim.LastDamager = attacker
	}
	w.emit(Event{Kind: EventDamage, Actor: attacker, Target: victim.ID, Amount: damage - absorbed})

	if victim.Health <= 0 {
		victim.Health = 0
		w.kill(victim)
	}
}

// kill transitions an actor to Dead, credits the scoreboard, drops the
// actor's weapons as world pickups and arms the respawn timer.
func (w *World) kill(victim *Actor) {
	victim.State = StateDead
	victim.Velocity = Vec3{}
	victim.RespawnIn = w.cfg.RespawnDelay
	victim.Deaths++

	killer := victim.LastDamager
	if killer == victim.ID {
		killer = "" // self-kills score no frags
	}
	if k, ok := w.actors[killer]; ok && killer != "" {
		k.Frags++
		w.match.RecordFrag(k.ID, k.Team)
	}
	w.match.RecordDeath(victim.ID)
	w.emit(Event{Kind: EventDeath, Actor: killer, Target: victim.ID, Position: victim.Position})

	w.dropInventory(victim)
	victim.Inventory = map[WeaponKind]*WeaponSlot{}
	victim.Equipped = WeaponNone
}

// dropInventory scatters the victim's weapons around the corpse as
// despawning pickups.
func (w *World) dropInventory(victim *Actor) {
	i := 0
	for _, kind := range w.weapons.Kinds() {
		if !victim.Owns(kind) {
			continue
		}
		offset := YawToDir(victim.Yaw + float64(i)*1.7).Scale(0.6)
		w.triggers = append(w.triggers, &TriggerVolume{
			ID:           fmt.Sprintf("drop-%s-%d", kind, w.nextDropID()),
			Kind:         TriggerItemPickup,
			Center:       victim.Position.Add(offset).Add(Vec3{Y: 0.2}),
			Extents:      Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			Item:         ItemKind(kind),
			Available:    true,
			Despawns:     true,
			LifetimeLeft: w.cfg.DropLifetime,
		})
		i++
	}
}

// fire resolves a fire request for the equipped weapon: cooldown and ammo
// gates, then either an instant ray hit or a spawned projectile.
func (w *World) fire(a *Actor) (FireOutcome, error) {
	if a.IsDead() {
		return FireOutcome{}, ErrActorDead
	}
	if a.Equipped == WeaponNone {
		return FireOutcome{}, ErrNotOwned
	}
	def, ok := w.weapons.Get(a.Equipped)
	if !ok {
		return FireOutcome{}, ErrUnknownWeapon
	}
	slot := a.Slot(a.Equipped)
	if slot == nil {
		return FireOutcome{}, ErrNotOwned
	}
	if w.elapsed-slot.LastFire < def.FireInterval {
		return FireOutcome{}, ErrOnCooldown
	}
	if slot.Ammo <= 0 {
		return FireOutcome{}, ErrOutOfAmmo
	}

	slot.Ammo--
	slot.LastFire = w.elapsed
	out := FireOutcome{Weapon: def.Kind, AmmoLeft: slot.Ammo}
	w.emit(Event{Kind: EventFire, Actor: a.ID, Weapon: def.Kind, Position: a.Eye()})

	dir := a.Facing()
	origin := a.Eye()

	if def.Projectile == ProjectileNone {
		hit := w.hitscan(a, origin, dir)
		out.Hit = &hit
		if hit.ActorID != "" {
			w.queueImpact(a.ID, hit.ActorID, def.Damage)
		}
		return out, nil
	}

	p := &Projectile{
		ID:       fmt.Sprintf("proj-%d", w.nextProjID()),
		Kind:     def.Projectile,
		Weapon:   def.Kind,
		Owner:    a.ID,
		Position: origin.Add(dir.Scale(ActorRadius + def.ProjRadius + 0.05)),
		Velocity: dir.Scale(def.MuzzleSpeed),
		Lifetime: def.ProjLifetime,
		Damage:   def.Damage,
		Radius:   def.ProjRadius,
	}
	w.projectiles = append(w.projectiles, p)
	out.ProjectileID = p.ID
	return out, nil
}

// hitscan resolves an instant shot: nearest of static geometry and actor
// bodies along the ray wins.
func (w *World) hitscan(shooter *Actor, origin, dir Vec3) RayHitResult {
	maxDist := 1000.0
	if hit, ok := w.physics.Raycast(origin, dir, maxDist); ok {
		maxDist = hit.Distance
	}
	step := dir.Scale(maxDist)
	if a, t := w.sweepActors(origin, step, 0, shooter.ID); a != nil {
		point := origin.Add(step.Scale(t))
		return RayHitResult{ActorID: a.ID, Point: point, Normal: dir.Scale(-1)}
	}
	point := origin.Add(dir.Scale(maxDist))
	return RayHitResult{Point: point, Normal: dir.Scale(-1)}
}

// whip resolves a melee strike. The target must be alive; range and facing
// were already gated by whoever built the intent, but a hard distance cap
// holds regardless so a stale intent cannot hit across the map.
func (w *World) whip(a *Actor, targetID string) error {
	if a.IsDead() {
		return ErrActorDead
	}
	if w.elapsed-a.LastWhip < w.cfg.WhipInterval {
		return ErrOnCooldown
	}
	target, ok := w.actors[targetID]
	if !ok {
		return ErrNoSuchActor
	}
	if target.IsDead() {
		return ErrTargetAlreadyDead
	}
	if a.Position.DistanceTo(target.Position) > w.cfg.WhipRange*1.5 {
		return ErrNoSuchActor
	}
	a.LastWhip = w.elapsed
	w.queueImpact(a.ID, targetID, w.cfg.WhipDamage)
	return nil
}
