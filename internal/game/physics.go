package game

// SurfaceHit is the result of a ray query against static level geometry.
type SurfaceHit struct {
	Point    Vec3
	Normal   Vec3
	Distance float64
}

// Physics is the ray-query/movement collaborator. The simulation core never
// implements collision primitives itself; it delegates every geometric
// question to this interface. Actor-vs-actor intersection stays in the core
// because actor positions are simulation state.
type Physics interface {
	// Raycast returns the nearest static-geometry hit along the ray, if any.
	Raycast(origin, dir Vec3, maxDistance float64) (SurfaceHit, bool)

	// Integrate resolves a desired move against static geometry and returns
	// the final position plus whether the body ended the step on the ground.
	Integrate(pos, vel Vec3, dt, radius float64) (Vec3, bool)

	// Headroom reports whether a capsule of the given height fits at pos
	// without clipping overhead geometry. Used to gate crouch -> stand.
	Headroom(pos Vec3, height float64) bool
}
