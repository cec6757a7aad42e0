package game

import (
	"github.com/mrDIMAS/rusty-shooter/internal/game/nav"
)

// BotBrain is per-bot decision state. It survives between ticks but not
// between lives or snapshots: everything in it can be rebuilt from world
// state, so it is deliberately not serialized.
type BotBrain struct {
	TargetID     string
	GoalTrigger  string
	Path         []Vec3
	PathIdx      int
	RepathAt     float64
	BackoffUntil float64
}

// Reset drops all transient plans, used on respawn.
func (b *BotBrain) Reset() {
	*b = BotBrain{}
}

const waypointReach = 0.6

// decideBot builds one tick's intent for a bot-controlled actor. Perception
// runs through the same ray queries every actor is subject to; a bot only
// ever reacts to hostiles it can actually see.
func (w *World) decideBot(a *Actor) Intent {
	brain := a.Brain
	if brain == nil {
		return Intent{}
	}

	if target := w.acquireTarget(a); target != nil {
		brain.TargetID = target.ID
		return w.combatIntent(a, target)
	}
	brain.TargetID = ""
	return w.roamIntent(a)
}

// acquireTarget returns the nearest live hostile inside the vision cone with
// a clear line of sight, or nil.
func (w *World) acquireTarget(a *Actor) *Actor {
	var best *Actor
	bestDist := w.cfg.VisionRange
	for _, id := range w.order {
		other := w.actors[id]
		if other.ID == a.ID || other.IsDead() {
			continue
		}
		if a.Team != TeamNone && other.Team == a.Team {
			continue
		}
		d := a.Position.DistanceTo(other.Position)
		if d > bestDist {
			continue
		}
		toOther := other.Position.Sub(a.Position).Flat()
		if AngleBetween(a.Facing(), toOther) > w.cfg.VisionHalfAngle {
			continue
		}
		if !w.lineOfSight(a, other) {
			continue
		}
		best = other
		bestDist = d
	}
	return best
}

// lineOfSight reports whether no static geometry blocks the eye-to-eye
// segment between two actors.
func (w *World) lineOfSight(a, b *Actor) bool {
	from := a.Eye()
	to := b.Eye()
	span := to.Sub(from)
	dist := span.Len()
	if dist < 1e-9 {
		return true
	}
	hit, blocked := w.physics.Raycast(from, span.Normalized(), dist)
	return !blocked || hit.Distance >= dist-1e-6
}

// combatIntent aims at the target, picks the best loaded weapon and holds
// the preferred engagement distance.
func (w *World) combatIntent(a *Actor, target *Actor) Intent {
	intent := Intent{
		Aim: target.Position.Sub(a.Position).Flat(),
	}

	weapon := w.bestLoadedWeapon(a)
	if weapon != WeaponNone && weapon != a.Equipped {
		intent.Equip = weapon
	}

	dist := a.Position.DistanceTo(target.Position)
	if dist <= w.cfg.WhipRange && AngleBetween(a.Facing(), intent.Aim) <= w.cfg.WhipHalfAngle {
		intent.Whip = true
		intent.WhipTarget = target.ID
		return intent
	}

	if weapon != WeaponNone {
		intent.Fire = true
	}

	// With every owned weapon dry there is nothing to shoot with, so the
	// engagement distance collapses to whip range and the bot closes in.
	preferred := w.cfg.WhipRange
	if def, ok := w.weapons.Get(weapon); ok {
		preferred = def.EffectiveRange
	}
	switch {
	case dist > preferred+1:
		intent.Move = intent.Aim
		intent.Run = true
	case dist < preferred-2:
		intent.Move = intent.Aim.Scale(-1)
	}
	return intent
}

// bestLoadedWeapon returns the highest-priority owned weapon with ammo.
func (w *World) bestLoadedWeapon(a *Actor) WeaponKind {
	for _, kind := range w.weapons.ByPriority() {
		if slot := a.Slot(kind); slot != nil && slot.Ammo > 0 {
			return kind
		}
	}
	return WeaponNone
}

// roamIntent walks the bot along a nav path toward the most attractive
// available pickup. Paths are refreshed on a cadence and on arrival; a
// failed search backs the bot off so it does not spin on an unreachable
// goal every tick.
func (w *World) roamIntent(a *Actor) Intent {
	brain := a.Brain
	if w.elapsed < brain.BackoffUntil {
		return Intent{}
	}
	if brain.Path == nil || brain.PathIdx >= len(brain.Path) || w.elapsed >= brain.RepathAt {
		w.planRoute(a)
	}
	if brain.PathIdx >= len(brain.Path) {
		return Intent{}
	}

	waypoint := brain.Path[brain.PathIdx]
	if a.Position.Flat().DistanceTo(waypoint.Flat()) < waypointReach {
		brain.PathIdx++
		if brain.PathIdx >= len(brain.Path) {
			return Intent{}
		}
		waypoint = brain.Path[brain.PathIdx]
	}

	dir := waypoint.Sub(a.Position).Flat()
	return Intent{Move: dir, Aim: dir}
}

// planRoute picks a goal pickup and runs a graph search toward it. Goals
// are scored by path cost so a nearby medkit beats a far rocket launcher.
func (w *World) planRoute(a *Actor) {
	brain := a.Brain
	brain.Path = nil
	brain.PathIdx = 0
	brain.RepathAt = w.elapsed + w.cfg.RepathInterval

	if w.nav == nil || w.nav.Len() == 0 {
		brain.BackoffUntil = w.elapsed + w.cfg.PathBackoff
		return
	}
	start, ok := w.nav.Nearest(navPoint(a.Position))
	if !ok {
		brain.BackoffUntil = w.elapsed + w.cfg.PathBackoff
		return
	}

	var bestPath []int
	bestCost := 0.0
	bestTrigger := ""
	for _, t := range w.triggers {
		if t.Kind != TriggerItemPickup || !t.Available {
			continue
		}
		if !w.wantsItem(a, t.Item) {
			continue
		}
		goal, ok := w.nav.Nearest(navPoint(t.Center))
		if !ok {
			continue
		}
		path, err := w.nav.FindPath(start, goal)
		if err != nil {
			continue
		}
		cost := w.nav.PathCost(path)
		if bestPath == nil || cost < bestCost {
			bestPath, bestCost, bestTrigger = path, cost, t.ID
		}
	}

	if bestPath == nil {
		// Nothing worth walking to: patrol a random node instead.
		goal := w.rng.Intn(w.nav.Len())
		path, err := w.nav.FindPath(start, goal)
		if err != nil {
			brain.BackoffUntil = w.elapsed + w.cfg.PathBackoff
			return
		}
		bestPath = path
	}

	brain.GoalTrigger = bestTrigger
	brain.Path = make([]Vec3, len(bestPath))
	for i, id := range bestPath {
		brain.Path[i] = vecFromNav(w.nav.Position(id))
	}
}

// wantsItem reports whether a pickup would actually grant the bot anything.
func (w *World) wantsItem(a *Actor, item ItemKind) bool {
	if item == ItemMedkit {
		return a.Health < a.MaxHealth
	}
	if weapon, ok := ammoFor(item); ok {
		def, defOK := w.weapons.Get(weapon)
		if !defOK {
			return false
		}
		slot := a.Slot(weapon)
		return slot != nil && slot.Ammo < def.MaxAmmo
	}
	def, ok := w.weapons.Get(WeaponKind(item))
	if !ok {
		return false
	}
	if !a.Owns(def.Kind) {
		return true
	}
	slot := a.Slot(def.Kind)
	return slot.Ammo < def.MaxAmmo
}

func navPoint(v Vec3) nav.Point { return nav.Point{X: v.X, Y: v.Y, Z: v.Z} }

func vecFromNav(p nav.Point) Vec3 { return Vec3{X: p.X, Y: p.Y, Z: p.Z} }
