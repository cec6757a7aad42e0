package game

// EventKind tags gameplay events emitted by the simulation each tick.
type EventKind string

const (
	EventSpawn            EventKind = "spawn"
	EventRespawn          EventKind = "respawn"
	EventFire             EventKind = "fire"
	EventProjectileImpact EventKind = "projectile_impact"
	EventDamage           EventKind = "damage"
	EventDeath            EventKind = "death"
	EventPickup           EventKind = "pickup"
	EventJumpPad          EventKind = "jump_pad"
	EventMatchEnding      EventKind = "match_ending"
	EventMatchEnd         EventKind = "match_end"
)

// Event is a single gameplay occurrence. Consumers (the log writer, the
// websocket hub, the match store) receive the same flat record; fields that
// do not apply to a kind stay zero.
type Event struct {
	Kind   EventKind  `json:"kind"`
	Tick   uint64     `json:"tick"`
	Time   float64    `json:"time"`
	Actor  string     `json:"actor,omitempty"`
	Target string     `json:"target,omitempty"`
	Weapon WeaponKind `json:"weapon,omitempty"`
	Item   ItemKind   `json:"item,omitempty"`
	Amount float64    `json:"amount,omitempty"`

	Position Vec3 `json:"position,omitempty"`
}

// emit stamps the event with the current tick and appends it to the tick's
// outgoing buffer. The buffer is handed to the caller of Step and reset.
func (w *World) emit(ev Event) {
	ev.Tick = w.tick
	ev.Time = w.elapsed
	w.events = append(w.events, ev)
}
