// Package physics is a minimal static-geometry collision space: axis-aligned
// boxes over a flat floor. It implements the ray and movement queries the
// simulation needs without pulling in a full physics engine.
package physics

import (
	"math"

	"github.com/mrDIMAS/rusty-shooter/internal/game"
)

// AABB is an axis-aligned box given by its two corners.
type AABB struct {
	Min game.Vec3 `json:"min"`
	Max game.Vec3 `json:"max"`
}

// Contains reports whether a point is inside the box.
func (b AABB) Contains(p game.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Space is a read-only collection of wall boxes over a floor plane. Built at
// level load, queried concurrently without locks.
type Space struct {
	walls  []AABB
	floorY float64
}

// NewSpace builds a space from wall boxes and the floor height.
func NewSpace(walls []AABB, floorY float64) *Space {
	return &Space{walls: walls, floorY: floorY}
}

// Raycast returns the nearest wall or floor hit along the ray.
func (s *Space) Raycast(origin, dir game.Vec3, maxDistance float64) (game.SurfaceHit, bool) {
	best := game.SurfaceHit{Distance: maxDistance}
	found := false

	for _, b := range s.walls {
		if t, n, ok := rayBox(origin, dir, b); ok && t <= best.Distance {
			best = game.SurfaceHit{
				Point:    origin.Add(dir.Scale(t)),
				Normal:   n,
				Distance: t,
			}
			found = true
		}
	}

	// Floor plane.
	if dir.Y < -1e-9 {
		t := (s.floorY - origin.Y) / dir.Y
		if t >= 0 && t <= best.Distance {
			best = game.SurfaceHit{
				Point:    origin.Add(dir.Scale(t)),
				Normal:   game.Vec3{Y: 1},
				Distance: t,
			}
			found = true
		}
	}
	return best, found
}

// Integrate moves a body and resolves collisions: walls push the body out
// horizontally, the floor clamps it vertically. Returns the final position
// and whether the body rests on the floor or a wall top.
func (s *Space) Integrate(pos, vel game.Vec3, dt, radius float64) (game.Vec3, bool) {
	next := pos.Add(vel.Scale(dt))

	for _, b := range s.walls {
		next = pushOut(next, radius, b)
	}

	grounded := false
	if next.Y <= s.floorY {
		next.Y = s.floorY
		grounded = true
	} else {
		// Standing on a wall top counts as grounded.
		for _, b := range s.walls {
			if next.Y <= b.Max.Y && next.Y >= b.Max.Y-0.05 &&
				next.X >= b.Min.X-radius && next.X <= b.Max.X+radius &&
				next.Z >= b.Min.Z-radius && next.Z <= b.Max.Z+radius {
				next.Y = b.Max.Y
				grounded = true
				break
			}
		}
	}
	return next, grounded
}

// Headroom reports whether a vertical segment of the given height starting
// at pos stays clear of all wall boxes.
func (s *Space) Headroom(pos game.Vec3, height float64) bool {
	const samples = 4
	for i := 0; i <= samples; i++ {
		p := pos.Add(game.Vec3{Y: height * float64(i) / samples})
		for _, b := range s.walls {
			if b.Contains(p) {
				return false
			}
		}
	}
	return true
}

// pushOut resolves a circle (the body footprint) against one box by moving
// it along the smallest horizontal penetration axis. Bodies above the box
// top are left alone so they can stand on it.
func pushOut(pos game.Vec3, radius float64, b AABB) game.Vec3 {
	if pos.Y >= b.Max.Y || pos.Y+1e-6 < b.Min.Y {
		return pos
	}
	cx := clampf(pos.X, b.Min.X, b.Max.X)
	cz := clampf(pos.Z, b.Min.Z, b.Max.Z)
	dx, dz := pos.X-cx, pos.Z-cz
	distSq := dx*dx + dz*dz
	if distSq >= radius*radius {
		return pos
	}
	if distSq > 1e-12 {
		dist := math.Sqrt(distSq)
		scale := (radius - dist) / dist
		pos.X += dx * scale
		pos.Z += dz * scale
		return pos
	}
	// Center inside the box: exit along the smallest penetration.
	left := pos.X - b.Min.X + radius
	right := b.Max.X - pos.X + radius
	back := pos.Z - b.Min.Z + radius
	front := b.Max.Z - pos.Z + radius
	min := left
	pos.X = b.Min.X - radius
	if right < min {
		min = right
		pos.X, pos.Z = b.Max.X+radius, cz
	}
	if back < min {
		min = back
		pos.X, pos.Z = cx, b.Min.Z-radius
	}
	if front < min {
		pos.X, pos.Z = cx, b.Max.Z+radius
	}
	return pos
}

// rayBox is the slab intersection test; returns the entry distance and the
// hit normal.
func rayBox(origin, dir game.Vec3, b AABB) (float64, game.Vec3, bool) {
	tMin, tMax := 0.0, math.Inf(1)
	normal := game.Vec3{}

	axes := [3]struct {
		o, d, lo, hi float64
		n            game.Vec3
	}{
		{origin.X, dir.X, b.Min.X, b.Max.X, game.Vec3{X: 1}},
		{origin.Y, dir.Y, b.Min.Y, b.Max.Y, game.Vec3{Y: 1}},
		{origin.Z, dir.Z, b.Min.Z, b.Max.Z, game.Vec3{Z: 1}},
	}
	for _, ax := range axes {
		if math.Abs(ax.d) < 1e-12 {
			if ax.o < ax.lo || ax.o > ax.hi {
				return 0, normal, false
			}
			continue
		}
		t1 := (ax.lo - ax.o) / ax.d
		t2 := (ax.hi - ax.o) / ax.d
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tMin {
			tMin = t1
			normal = ax.n.Scale(sign)
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, normal, false
		}
	}
	if tMin <= 0 {
		return 0, normal, false // origin inside or box behind
	}
	return tMin, normal, true
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
