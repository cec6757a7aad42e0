package game

import "math"

// Projectile is a live round in flight. Created by a fire event, destroyed
// on terminal collision or lifetime expiry; the two terminal conditions are
// mutually exclusive and collision wins when both occur in the same tick.
type Projectile struct {
	ID       string         `json:"id" msgpack:"id"`
	Kind     ProjectileKind `json:"kind" msgpack:"kind"`
	Weapon   WeaponKind     `json:"weapon" msgpack:"weapon"`
	Owner    string         `json:"owner" msgpack:"owner"` // weak actor reference
	Position Vec3           `json:"position" msgpack:"position"`
	Velocity Vec3           `json:"velocity" msgpack:"velocity"`
	Lifetime float64        `json:"lifetime" msgpack:"lifetime"`
	Damage   float64        `json:"damage" msgpack:"damage"`
	Radius   float64        `json:"radius" msgpack:"radius"`
}

// integrateProjectiles advances all projectiles one step and resolves their
// terminal conditions. Collision checks run before the lifetime check, so a
// projectile that would both hit and expire in the same tick deals damage.
func (w *World) integrateProjectiles(dt float64) {
	n := 0
	for _, p := range w.projectiles {
		from := p.Position
		to := from.Add(p.Velocity.Scale(dt))
		step := to.Sub(from)
		dist := step.Len()

		// Actor sweep: nearest live actor whose capsule the segment enters.
		hitActor, actorT := w.sweepActors(from, step, p.Radius, p.Owner)

		// Static geometry along the travel segment.
		surfaceT := 2.0
		var surface SurfaceHit
		if dist > 1e-9 {
			if hit, ok := w.physics.Raycast(from, step.Normalized(), dist); ok {
				surfaceT = hit.Distance / dist
				surface = hit
			}
		}

		switch {
		case hitActor != nil && actorT <= surfaceT:
			impactAt := from.Add(step.Scale(actorT))
			w.emit(Event{Kind: EventProjectileImpact, Actor: p.Owner, Target: hitActor.ID, Weapon: p.Weapon, Position: impactAt})
			w.queueImpact(p.Owner, hitActor.ID, p.Damage)
			continue // projectile removed
		case surfaceT <= 1.0:
			w.emit(Event{Kind: EventProjectileImpact, Actor: p.Owner, Weapon: p.Weapon, Position: surface.Point})
			continue // removed on world geometry
		}

		p.Position = to
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			// Silent expiry: no impact event, no damage.
			continue
		}

		w.projectiles[n] = p
		n++
	}
	w.projectiles = w.projectiles[:n]
}

// sweepActors finds the first live actor hit along a movement segment,
// returning the actor and the normalized hit parameter in [0, 1]. Bodies are
// approximated as vertical cylinders from the feet to the head.
func (w *World) sweepActors(from, step Vec3, radius float64, owner string) (*Actor, float64) {
	var best *Actor
	bestT := 2.0
	for _, id := range w.order {
		a := w.actors[id]
		if a.ID == owner || a.IsDead() {
			continue
		}
		t, ok := segmentCylinder(from, step, a.Position, ActorHeight, ActorRadius+radius)
		if ok && t < bestT {
			bestT = t
			best = a
		}
	}
	return best, bestT
}

// segmentCylinder intersects the segment from+step*t, t in [0,1], with a
// vertical cylinder standing at base.
func segmentCylinder(from, step, base Vec3, height, radius float64) (float64, bool) {
	// Horizontal quadratic against the cylinder side.
	mx, mz := from.X-base.X, from.Z-base.Z
	a := step.X*step.X + step.Z*step.Z
	c := mx*mx + mz*mz - radius*radius

	var t float64
	switch {
	case a < 1e-12:
		// Vertical or stationary segment: must already be inside the circle.
		if c > 0 {
			return 0, false
		}
		t = 0
	case c <= 0:
		t = 0 // starts inside the circle
	default:
		b := mx*step.X + mz*step.Z
		disc := b*b - a*c
		if disc < 0 {
			return 0, false
		}
		t = (-b - math.Sqrt(disc)) / a
		if t < 0 || t > 1 {
			return 0, false
		}
	}

	// Height gate at the crossing point, allowing the collision radius to
	// catch grazing shots at the head and feet.
	y := from.Y + step.Y*t
	if y < base.Y-radius || y > base.Y+height+radius {
		return 0, false
	}
	return t, true
}
