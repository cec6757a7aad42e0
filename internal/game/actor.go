package game

// MovementState is the actor locomotion state machine.
type MovementState int

const (
	StateIdle MovementState = iota
	StateWalk
	StateRun
	StateCrouch
	StateJump
	StateFall
	StateDead
)

func (s MovementState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalk:
		return "walk"
	case StateRun:
		return "run"
	case StateCrouch:
		return "crouch"
	case StateJump:
		return "jump"
	case StateFall:
		return "fall"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ControllerKind tags who drives an actor each tick. Both kinds produce the
// same Intent type, so everything downstream of the decision phase is
// controller-agnostic.
type ControllerKind int

const (
	ControllerPlayer ControllerKind = iota
	ControllerBot
)

// Team is reserved for the team-based modes. Deathmatch actors stay TeamNone.
type Team int

const (
	TeamNone Team = iota
	TeamRed
	TeamBlue
)

// Actor body dimensions, shared by movement and the crouch headroom check.
const (
	ActorRadius       = 0.35
	ActorHeight       = 1.8
	ActorCrouchHeight = 1.0
	ActorEyeHeight    = 1.6
)

// Movement tuning.
const (
	WalkSpeed   = 2.5
	RunSpeed    = 5.0
	CrouchSpeed = 1.2
	JumpSpeed   = 6.0
)

// WeaponSlot is per-actor, per-weapon mutable state.
type WeaponSlot struct {
	Ammo     int     `json:"ammo" msgpack:"ammo"`
	LastFire float64 `json:"lastFire" msgpack:"last_fire"`
}

// Actor is any controllable entity: one concrete record for both players and
// bots, dispatched on Controller. Created on match entry, destroyed only at
// match teardown; death is a state transition, not removal.
type Actor struct {
	ID         string         `json:"id" msgpack:"id"`
	Name       string         `json:"name" msgpack:"name"`
	Team       Team           `json:"team" msgpack:"team"`
	Controller ControllerKind `json:"controller" msgpack:"controller"`

	Position Vec3    `json:"position" msgpack:"position"`
	Velocity Vec3    `json:"velocity" msgpack:"velocity"`
	Yaw      float64 `json:"yaw" msgpack:"yaw"`
	Grounded bool    `json:"grounded" msgpack:"grounded"`

	State     MovementState `json:"state" msgpack:"state"`
	Health    float64       `json:"health" msgpack:"health"`
	MaxHealth float64       `json:"maxHealth" msgpack:"max_health"`
	Armor     float64       `json:"armor" msgpack:"armor"`
	MaxArmor  float64       `json:"maxArmor" msgpack:"max_armor"`

	Inventory map[WeaponKind]*WeaponSlot `json:"inventory" msgpack:"inventory"`
	Equipped  WeaponKind                 `json:"equipped" msgpack:"equipped"`

	// Weak reference for kill attribution; resolved through the actor table,
	// never a direct pointer.
	LastDamager string `json:"lastDamager" msgpack:"last_damager"`

	// Remaining respawn delay, meaningful only while Dead.
	RespawnIn float64 `json:"respawnIn" msgpack:"respawn_in"`

	LastWhip float64 `json:"-" msgpack:"last_whip"`

	Frags  int `json:"frags" msgpack:"frags"`
	Deaths int `json:"deaths" msgpack:"deaths"`

	// Bot decision state, nil for player-controlled actors. Not part of the
	// persisted snapshot: brains rebuild their plan from world state.
	Brain *BotBrain `json:"-" msgpack:"-"`
}

// IsDead reports whether the actor is in the Dead movement state.
func (a *Actor) IsDead() bool { return a.State == StateDead }

// Owns reports whether the actor has picked up the given weapon.
func (a *Actor) Owns(kind WeaponKind) bool {
	_, ok := a.Inventory[kind]
	return ok
}

// Slot returns the mutable weapon slot, or nil if not owned.
func (a *Actor) Slot(kind WeaponKind) *WeaponSlot {
	return a.Inventory[kind]
}

// Equip switches the current weapon. Switching is instantaneous at this
// layer; animation lockout belongs to the animation collaborator.
func (a *Actor) Equip(kind WeaponKind) error {
	if a.IsDead() {
		return ErrActorDead
	}
	if !a.Owns(kind) {
		return ErrNotOwned
	}
	a.Equipped = kind
	return nil
}

// GiveWeapon adds a weapon to the inventory with the given ammo, or tops up
// ammo if the weapon is already owned. Returns true if the weapon was new.
func (a *Actor) GiveWeapon(def WeaponDefinition, ammo int) bool {
	if slot, ok := a.Inventory[def.Kind]; ok {
		slot.Ammo += ammo
		if slot.Ammo > def.MaxAmmo {
			slot.Ammo = def.MaxAmmo
		}
		return false
	}
	if ammo > def.MaxAmmo {
		ammo = def.MaxAmmo
	}
	// LastFire starts one interval in the past so a fresh weapon can fire
	// immediately.
	a.Inventory[def.Kind] = &WeaponSlot{Ammo: ammo, LastFire: -def.FireInterval}
	if a.Equipped == WeaponNone {
		a.Equipped = def.Kind
	}
	return true
}

// AddAmmo tops up an owned weapon and reports whether anything was added.
func (a *Actor) AddAmmo(def WeaponDefinition, ammo int) bool {
	slot, ok := a.Inventory[def.Kind]
	if !ok {
		return false
	}
	if slot.Ammo >= def.MaxAmmo {
		return false
	}
	slot.Ammo += ammo
	if slot.Ammo > def.MaxAmmo {
		slot.Ammo = def.MaxAmmo
	}
	return true
}

// Heal restores health up to the maximum.
func (a *Actor) Heal(amount float64) {
	if a.IsDead() {
		return
	}
	a.Health += amount
	if a.Health > a.MaxHealth {
		a.Health = a.MaxHealth
	}
}

// Eye returns the eye position used for vision and hitscan origins.
func (a *Actor) Eye() Vec3 {
	return a.Position.Add(Vec3{Y: ActorEyeHeight})
}

// Facing returns the flat forward vector.
func (a *Actor) Facing() Vec3 { return YawToDir(a.Yaw) }
