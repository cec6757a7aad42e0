package game

import "sort"

// WeaponKind identifies a weapon in the content table.
type WeaponKind string

const (
	WeaponM4     WeaponKind = "m4"
	WeaponAk47   WeaponKind = "ak47"
	WeaponPlasma WeaponKind = "plasma"
	WeaponRocket WeaponKind = "rocket"
	WeaponNone   WeaponKind = ""
)

// ProjectileKind identifies what a weapon spawns when fired. Empty means the
// weapon is instant-hit and resolves through a ray query instead.
type ProjectileKind string

const (
	ProjectileBullet ProjectileKind = "bullet"
	ProjectilePlasma ProjectileKind = "plasma_ball"
	ProjectileRocket ProjectileKind = "rocket"
	ProjectileNone   ProjectileKind = ""
)

// WeaponDefinition is static, content-defined weapon data. Instances never
// mutate it; per-actor state (ammo, last fire time) lives in WeaponSlot.
type WeaponDefinition struct {
	Kind           WeaponKind
	Name           string
	FireInterval   float64 // seconds between shots
	Damage         float64 // per hit / per projectile impact
	Projectile     ProjectileKind
	MuzzleSpeed    float64 // m/s, projectile weapons only
	ProjLifetime   float64 // seconds, projectile weapons only
	ProjRadius     float64 // collision radius, projectile weapons only
	MaxAmmo        int
	InitialAmmo    int     // granted with a fresh weapon pickup or on respawn
	PickupAmmo     int     // granted for an already-owned weapon or its ammo box
	EffectiveRange float64 // preferred engagement distance for bots
	Priority       int     // bot preference, higher wins
}

// WeaponTable maps weapon kinds to their definitions.
type WeaponTable map[WeaponKind]WeaponDefinition

// DefaultWeaponTable returns the stock weapon set.
func DefaultWeaponTable() WeaponTable {
	return WeaponTable{
		WeaponM4: {
			Kind:           WeaponM4,
			Name:           "M4",
			FireInterval:   0.1,
			Damage:         15,
			Projectile:     ProjectileNone, // hitscan
			MaxAmmo:        200,
			InitialAmmo:    120,
			PickupAmmo:     60,
			EffectiveRange: 12,
			Priority:       1,
		},
		WeaponAk47: {
			Kind:           WeaponAk47,
			Name:           "AK47",
			FireInterval:   0.15,
			Damage:         15,
			Projectile:     ProjectileBullet,
			MuzzleSpeed:    40,
			ProjLifetime:   10,
			ProjRadius:     0.05,
			MaxAmmo:        260,
			InitialAmmo:    90,
			PickupAmmo:     60,
			EffectiveRange: 10,
			Priority:       2,
		},
		WeaponPlasma: {
			Kind:           WeaponPlasma,
			Name:           "Plasma Rifle",
			FireInterval:   0.25,
			Damage:         30,
			Projectile:     ProjectilePlasma,
			MuzzleSpeed:    15,
			ProjLifetime:   10,
			ProjRadius:     0.15,
			MaxAmmo:        120,
			InitialAmmo:    40,
			PickupAmmo:     40,
			EffectiveRange: 8,
			Priority:       3,
		},
		WeaponRocket: {
			Kind:           WeaponRocket,
			Name:           "Rocket Launcher",
			FireInterval:   1.0,
			Damage:         30,
			Projectile:     ProjectileRocket,
			MuzzleSpeed:    25,
			ProjLifetime:   10,
			ProjRadius:     0.2,
			MaxAmmo:        20,
			InitialAmmo:    5,
			PickupAmmo:     5,
			EffectiveRange: 9,
			Priority:       4,
		},
	}
}

// Get returns the definition for kind and whether it exists.
func (t WeaponTable) Get(kind WeaponKind) (WeaponDefinition, bool) {
	def, ok := t[kind]
	return def, ok
}

// Kinds returns all weapon kinds in a stable order.
func (t WeaponTable) Kinds() []WeaponKind {
	kinds := make([]WeaponKind, 0, len(t))
	for k := range t {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ByPriority returns kinds sorted by descending bot priority, stable by kind.
func (t WeaponTable) ByPriority() []WeaponKind {
	kinds := t.Kinds()
	sort.SliceStable(kinds, func(i, j int) bool {
		return t[kinds[i]].Priority > t[kinds[j]].Priority
	})
	return kinds
}

// FireOutcome describes a successful fire call.
type FireOutcome struct {
	Weapon       WeaponKind
	AmmoLeft     int
	ProjectileID string // set when a projectile was spawned
	Hit          *RayHitResult
}

// RayHitResult is the result of an instant-hit shot.
type RayHitResult struct {
	ActorID string // empty for static geometry
	Point   Vec3
	Normal  Vec3
}
