package game

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/mrDIMAS/rusty-shooter/internal/game/nav"
)

// World is the authoritative simulation state: every actor, projectile and
// trigger volume, plus the match scoreboard. It is not safe for concurrent
// use; the runner serializes all access behind its lock.
type World struct {
	cfg     Config
	weapons WeaponTable
	physics Physics
	nav     *nav.Graph
	rng     *rand.Rand

	level   string
	tick    uint64
	elapsed float64

	actors map[string]*Actor
	order  []string // stable iteration order, actor join order

	projectiles []*Projectile
	triggers    []*TriggerVolume
	spawns      []SpawnPoint
	match       *MatchState

	impacts []pendingImpact
	events  []Event
	queued  map[string]Intent

	projSeq uint64
	dropSeq uint64
}

// WorldParams collects everything a world is built from. Level loading
// produces one of these; tests build them by hand.
type WorldParams struct {
	Level    string
	Config   Config
	Match    MatchConfig
	Physics  Physics
	Nav      *nav.Graph
	Spawns   []SpawnPoint
	Triggers []*TriggerVolume
	Weapons  WeaponTable
}

// NewWorld validates the parameters and builds an empty world ready for
// actors to join.
func NewWorld(p WorldParams) (*World, error) {
	if len(p.Spawns) == 0 {
		return nil, ErrNoSpawnPoints
	}
	if p.Physics == nil {
		return nil, errors.New("world: physics collaborator is required")
	}
	if p.Weapons == nil {
		p.Weapons = DefaultWeaponTable()
	}
	return &World{
		cfg:      p.Config,
		weapons:  p.Weapons,
		physics:  p.Physics,
		nav:      p.Nav,
		rng:      rand.New(rand.NewSource(p.Config.Seed)),
		level:    p.Level,
		actors:   map[string]*Actor{},
		triggers: p.Triggers,
		spawns:   p.Spawns,
		match:    NewMatchState(p.Match),
		queued:   map[string]Intent{},
	}, nil
}

// Match exposes the scoreboard and phase for read-only callers.
func (w *World) Match() *MatchState { return w.match }

// Actor looks up an actor by id.
func (w *World) Actor(id string) (*Actor, bool) {
	a, ok := w.actors[id]
	return a, ok
}

// Tick returns the number of completed simulation steps.
func (w *World) Tick() uint64 { return w.tick }

// AddActor joins a new player or bot to the match and spawns it immediately.
func (w *World) AddActor(id, name string, controller ControllerKind, team Team) (*Actor, error) {
	if w.match.Done() {
		return nil, ErrMatchEnded
	}
	if _, exists := w.actors[id]; exists {
		return nil, errors.Errorf("world: actor %q already joined", id)
	}
	a := &Actor{
		ID:         id,
		Name:       name,
		Team:       team,
		Controller: controller,
		MaxHealth:  100,
		MaxArmor:   100,
		Inventory:  map[WeaponKind]*WeaponSlot{},
	}
	if controller == ControllerBot {
		a.Brain = &BotBrain{}
	}
	w.actors[id] = a
	w.order = append(w.order, id)

	sp := w.pickSpawn(a)
	a.Position = sp.Position
	a.Yaw = sp.Yaw
	a.Grounded = true
	a.State = StateIdle
	a.Health = a.MaxHealth
	a.Armor = a.MaxArmor
	// LastWhip starts one interval in the past so melee works from the
	// first tick.
	a.LastWhip = -w.cfg.WhipInterval
	if def, ok := w.weapons.Get(w.cfg.DefaultWeapon); ok {
		a.GiveWeapon(def, def.InitialAmmo)
	}
	w.emit(Event{Kind: EventSpawn, Actor: id, Position: a.Position})
	return a, nil
}

// QueueIntent records a player's input for the next step. One intent per
// actor per tick; a second queue before the step replaces the first.
func (w *World) QueueIntent(actorID string, intent Intent) error {
	if _, ok := w.actors[actorID]; !ok {
		return ErrNoSuchActor
	}
	w.queued[actorID] = intent
	return nil
}

// Step advances the simulation by dt seconds and returns the tick's events.
// Phase order is fixed: decisions, intents, movement, projectiles, triggers,
// damage resolution, match rules. The returned slice is reused next tick.
func (w *World) Step(dt float64) []Event {
	w.events = w.events[:0]
	if w.match.Done() {
		return nil
	}

	intents := w.collectIntents()
	for _, id := range w.order {
		a := w.actors[id]
		if intent, ok := intents[id]; ok && !a.IsDead() {
			w.applyIntent(a, intent)
		}
	}

	w.integrateActors(dt)
	w.integrateProjectiles(dt)
	w.updateTriggers(dt)
	w.resolveImpacts()
	w.advanceMatch(dt)
	w.verifyState()

	w.tick++
	w.elapsed += dt
	return w.events
}

// collectIntents merges bot decisions with queued player input. The queue
// drains every tick so stale input never replays.
func (w *World) collectIntents() map[string]Intent {
	intents := make(map[string]Intent, len(w.order))
	for _, id := range w.order {
		a := w.actors[id]
		if a.IsDead() {
			continue
		}
		if a.Controller == ControllerBot {
			intents[id] = w.decideBot(a)
		} else {
			// Players act on queued input only; no input means stand still
			// this tick, never replay of a stale intent.
			intents[id] = w.queued[id]
		}
	}
	for id := range w.queued {
		delete(w.queued, id)
	}
	return intents
}

// applyIntent runs one actor's requested actions through the state machine.
func (w *World) applyIntent(a *Actor, intent Intent) {
	if !intent.Aim.IsZero() {
		a.Yaw = DirToYaw(intent.Aim.Flat())
	}
	if intent.Equip != WeaponNone && intent.Equip != a.Equipped {
		_ = a.Equip(intent.Equip) // not owned: input noise, drop it
	}

	// Locomotion. Standing up from a crouch requires headroom; without it
	// the actor stays crouched no matter what the input says.
	crouched := a.State == StateCrouch
	if intent.Crouch {
		crouched = true
	} else if crouched {
		if w.physics.Headroom(a.Position, ActorHeight) {
			crouched = false
		}
	}

	speed := WalkSpeed
	switch {
	case crouched:
		speed = CrouchSpeed
	case intent.Run:
		speed = RunSpeed
	}

	move := intent.Move.Flat().Normalized()
	a.Velocity.X = move.X * speed
	a.Velocity.Z = move.Z * speed

	if a.Grounded {
		switch {
		case intent.Jump && !crouched:
			a.Velocity.Y = JumpSpeed
			a.Grounded = false
			a.State = StateJump
		case crouched:
			a.State = StateCrouch
		case move.IsZero():
			a.State = StateIdle
		case intent.Run:
			a.State = StateRun
		default:
			a.State = StateWalk
		}
	}

	if intent.Whip {
		_ = w.whip(a, intent.WhipTarget)
	} else if intent.Fire {
		_, _ = w.fire(a)
	}
}

// integrateActors applies gravity, resolves movement against level geometry
// and ticks respawn timers for the dead.
func (w *World) integrateActors(dt float64) {
	for _, id := range w.order {
		a := w.actors[id]
		if a.IsDead() {
			a.RespawnIn -= dt
			if a.RespawnIn <= 0 {
				w.respawn(a)
			}
			continue
		}

		if !a.Grounded {
			a.Velocity.Y -= w.cfg.Gravity * dt
		}
		pos, grounded := w.physics.Integrate(a.Position, a.Velocity, dt, ActorRadius)
		a.Position = pos

		if grounded && !a.Grounded {
			a.Velocity.Y = 0
			if a.State == StateJump || a.State == StateFall {
				a.State = StateIdle
			}
		} else if !grounded && a.Grounded {
			if a.State != StateJump {
				a.State = StateFall
			}
		} else if !grounded && a.State == StateJump && a.Velocity.Y < 0 {
			a.State = StateFall
		}
		a.Grounded = grounded
	}
}

// advanceMatch feeds the rules engine and emits phase-transition events.
func (w *World) advanceMatch(dt float64) {
	before := w.match.Phase
	w.match.Advance(dt)
	after := w.match.Phase
	if before == after {
		return
	}
	switch after {
	case PhaseEnding:
		w.emit(Event{Kind: EventMatchEnding, Actor: w.match.Winner})
	case PhaseEnded:
		w.emit(Event{Kind: EventMatchEnd, Actor: w.match.Winner})
	}
}

// verifyState panics on broken simulation invariants. A violated invariant
// is a bug in the step code, never a recoverable condition, so the world
// refuses to keep running on corrupt state.
func (w *World) verifyState() {
	for _, id := range w.order {
		a := w.actors[id]
		if a.Health < 0 || a.Health > a.MaxHealth {
			panic(fmt.Sprintf("actor %s health %v out of range", id, a.Health))
		}
		if a.Armor < 0 || a.Armor > a.MaxArmor {
			panic(fmt.Sprintf("actor %s armor %v out of range", id, a.Armor))
		}
		if a.IsDead() != (a.Health <= 0) {
			panic(fmt.Sprintf("actor %s dead-state/health mismatch", id))
		}
		if a.IsDead() && a.Equipped != WeaponNone {
			panic(fmt.Sprintf("actor %s dead with equipped weapon", id))
		}
	}
}

// Scoreboard returns actor ids sorted by frags descending, deaths ascending,
// then id for a stable total order.
func (w *World) Scoreboard() []string {
	ids := make([]string, len(w.order))
	copy(ids, w.order)
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := w.actors[ids[i]], w.actors[ids[j]]
		if a.Frags != b.Frags {
			return a.Frags > b.Frags
		}
		if a.Deaths != b.Deaths {
			return a.Deaths < b.Deaths
		}
		return a.ID < b.ID
	})
	return ids
}

func (w *World) nextProjID() uint64 {
	w.projSeq++
	return w.projSeq
}

func (w *World) nextDropID() uint64 {
	w.dropSeq++
	return w.dropSeq
}
