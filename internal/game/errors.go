package game

import "errors"

// User-recoverable outcomes. These are data, not faults: callers surface
// them as HUD feedback or no-ops and the tick always continues.
var (
	ErrOutOfAmmo         = errors.New("out of ammo")
	ErrOnCooldown        = errors.New("weapon on cooldown")
	ErrNotOwned          = errors.New("weapon not owned")
	ErrTargetAlreadyDead = errors.New("target already dead")
	ErrActorDead         = errors.New("actor is dead")
	ErrNoSuchActor       = errors.New("no such actor")
	ErrUnknownWeapon     = errors.New("unknown weapon kind")
)

// Hard rejections: a level without spawn points is configuration-fatal and
// detected before the first tick; an ended match accepts no new actors.
var (
	ErrNoSpawnPoints = errors.New("level has no spawn points")
	ErrMatchEnded    = errors.New("match already ended")
)
