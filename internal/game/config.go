package game

import "math"

// Config is the simulation tuning knob set. Values are content, not code:
// matches tweak them without touching the rules.
type Config struct {
	// Seed drives the deterministic random source. Two worlds built with the
	// same seed, level and intent stream replay identically.
	Seed int64

	// ArmorAbsorb is the fraction of incoming damage armor soaks up, as long
	// as armor remains.
	ArmorAbsorb float64

	// RespawnDelay is the seconds an actor stays dead before respawning.
	RespawnDelay float64

	// DropLifetime is how long dropped weapons stay in the world.
	DropLifetime float64

	// SpawnClearRadius scores spawn points by enemy proximity; enemies inside
	// this radius make a point maximally undesirable.
	SpawnClearRadius float64

	// DefaultWeapon is granted on every spawn.
	DefaultWeapon WeaponKind

	Gravity float64

	// Bot perception.
	VisionRange     float64
	VisionHalfAngle float64

	// Melee.
	WhipRange     float64
	WhipHalfAngle float64
	WhipDamage    float64
	WhipInterval  float64

	// Bot pathing cadence.
	RepathInterval float64
	PathBackoff    float64
}

// DefaultConfig returns stock deathmatch tuning.
func DefaultConfig() Config {
	return Config{
		Seed:             1,
		ArmorAbsorb:      0.5,
		RespawnDelay:     4.0,
		DropLifetime:     20.0,
		SpawnClearRadius: 5.0,
		DefaultWeapon:    WeaponM4,
		Gravity:          9.81,
		VisionRange:      15.0,
		VisionHalfAngle:  math.Pi / 3,
		WhipRange:        1.0,
		WhipHalfAngle:    math.Pi / 3,
		WhipDamage:       20.0,
		WhipInterval:     0.5,
		RepathInterval:   1.0,
		PathBackoff:      2.0,
	}
}
