package game

// TriggerKind classifies what a volume does when an actor overlaps it.
type TriggerKind string

const (
	TriggerJumpPad    TriggerKind = "jump_pad"
	TriggerDeathZone  TriggerKind = "death_zone"
	TriggerItemPickup TriggerKind = "item_pickup"
)

// ItemKind identifies pickup contents. Weapon kinds double as item kinds:
// picking up a weapon item grants the weapon, or tops up ammo if owned.
type ItemKind string

const (
	ItemMedkit  ItemKind = "medkit"
	ItemAmmo556 ItemKind = "ammo556"
	ItemAmmo762 ItemKind = "ammo762"
	ItemCells   ItemKind = "cells"
	ItemRockets ItemKind = "rockets"
)

// MedkitHeal is the health restored by a medkit, capped at max health.
const MedkitHeal = 20.0

// ammoFor maps loose ammo boxes to the weapon they feed.
func ammoFor(item ItemKind) (WeaponKind, bool) {
	switch item {
	case ItemAmmo556:
		return WeaponM4, true
	case ItemAmmo762:
		return WeaponAk47, true
	case ItemCells:
		return WeaponPlasma, true
	case ItemRockets:
		return WeaponRocket, true
	}
	return WeaponNone, false
}

// TriggerVolume is an axis-aligned box region with a gameplay effect.
// Pickups are themselves triggers with a respawn cooldown; dropped weapons
// are pickups with a despawn lifetime instead.
type TriggerVolume struct {
	ID      string      `json:"id" msgpack:"id"`
	Kind    TriggerKind `json:"kind" msgpack:"kind"`
	Center  Vec3        `json:"center" msgpack:"center"`
	Extents Vec3        `json:"extents" msgpack:"extents"` // half-sizes per axis

	// Launch is the velocity applied by a jump pad.
	Launch Vec3 `json:"launch,omitempty" msgpack:"launch"`

	// Item is the pickup contents, TriggerItemPickup only.
	Item ItemKind `json:"item,omitempty" msgpack:"item"`

	// Cooldown is the pickup respawn interval in seconds. Zero means the
	// pickup never respawns once taken.
	Cooldown     float64 `json:"cooldown,omitempty" msgpack:"cooldown"`
	Available    bool    `json:"available" msgpack:"available"`
	CooldownLeft float64 `json:"cooldownLeft,omitempty" msgpack:"cooldown_left"`

	// Despawns marks a world-dropped item that is removed when LifetimeLeft
	// reaches zero rather than respawning.
	Despawns     bool    `json:"despawns,omitempty" msgpack:"despawns"`
	LifetimeLeft float64 `json:"lifetimeLeft,omitempty" msgpack:"lifetime_left"`
}

// Contains reports whether a point is inside the volume.
func (t *TriggerVolume) Contains(p Vec3) bool {
	d := p.Sub(t.Center)
	return d.X >= -t.Extents.X && d.X <= t.Extents.X &&
		d.Y >= -t.Extents.Y && d.Y <= t.Extents.Y &&
		d.Z >= -t.Extents.Z && d.Z <= t.Extents.Z
}

// OverlapsActor tests the actor's body segment against the volume. The feet
// and the body center both count so that low pads still catch a jumping actor.
func (t *TriggerVolume) OverlapsActor(a *Actor) bool {
	return t.Contains(a.Position) || t.Contains(a.Position.Add(Vec3{Y: ActorHeight / 2}))
}

// updateTriggers ticks pickup cooldowns and despawn lifetimes, then applies
// trigger effects to every live actor. Each pickup grants at most one actor
// per availability window: the first overlap in world order consumes it.
func (w *World) updateTriggers(dt float64) {
	n := 0
	for _, t := range w.triggers {
		if t.Kind == TriggerItemPickup {
			if t.Despawns {
				t.LifetimeLeft -= dt
				if t.LifetimeLeft <= 0 {
					continue // dropped item rots away
				}
			} else if !t.Available {
				t.CooldownLeft -= dt
				if t.CooldownLeft <= 0 && t.Cooldown > 0 {
					t.Available = true
					t.CooldownLeft = 0
				}
			}
		}
		w.triggers[n] = t
		n++
	}
	w.triggers = w.triggers[:n]

	for _, id := range w.order {
		a := w.actors[id]
		if a.IsDead() {
			continue
		}
		for _, t := range w.triggers {
			if !t.OverlapsActor(a) {
				continue
			}
			switch t.Kind {
			case TriggerJumpPad:
				a.Velocity = t.Launch
				a.Grounded = false
				a.State = StateJump
				w.emit(Event{Kind: EventJumpPad, Actor: a.ID, Position: t.Center})
			case TriggerDeathZone:
				// Bypasses armor entirely.
				w.queueImpactRaw(a.LastDamager, a.ID, a.Health+a.Armor+1, true)
			case TriggerItemPickup:
				if !t.Available {
					continue
				}
				if !w.grantItem(a, t.Item) {
					continue // full health / full ammo, leave it for others
				}
				t.Available = false
				t.CooldownLeft = t.Cooldown
				if t.Despawns {
					t.LifetimeLeft = 0 // consumed, removed next update
				}
				w.emit(Event{Kind: EventPickup, Actor: a.ID, Item: t.Item, Position: t.Center})
			}
		}
	}
}

// grantItem applies pickup contents and reports whether anything was granted.
func (w *World) grantItem(a *Actor, item ItemKind) bool {
	if item == ItemMedkit {
		if a.Health >= a.MaxHealth {
			return false
		}
		a.Heal(MedkitHeal)
		return true
	}
	if weapon, ok := ammoFor(item); ok {
		def, defOK := w.weapons.Get(weapon)
		if !defOK {
			return false
		}
		return a.AddAmmo(def, def.PickupAmmo)
	}
	// Weapon item: grant the weapon, or top up ammo if already owned.
	def, ok := w.weapons.Get(WeaponKind(item))
	if !ok {
		return false
	}
	if a.Owns(def.Kind) {
		return a.AddAmmo(def, def.PickupAmmo)
	}
	a.GiveWeapon(def, def.InitialAmmo)
	return true
}
