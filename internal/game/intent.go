package game

// Intent is one tick's worth of desired actions for a single actor. Player
// input and bot decisions both reduce to this type, so the actor state
// machine consumes them uniformly.
type Intent struct {
	// Move is the desired flat movement direction (not necessarily unit
	// length; it is normalized before use). Zero means stand still.
	Move Vec3

	Run    bool
	Crouch bool
	Jump   bool

	// Aim is the desired facing/fire direction. Zero keeps the current yaw.
	Aim Vec3

	// Fire requests a shot from the equipped weapon this tick.
	Fire bool

	// Equip requests a weapon switch before anything else is applied.
	Equip WeaponKind

	// Whip requests a melee strike against the given actor. The caller is
	// responsible for the distance-and-angle gate; the combat resolver is
	// distance-agnostic.
	Whip       bool
	WhipTarget string
}
