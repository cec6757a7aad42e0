package game

import "testing"

// openSpace is a test physics collaborator with no geometry at all: rays
// never hit, movement is unobstructed over a floor at y=0, headroom is
// always clear.
type openSpace struct{}

func (openSpace) Raycast(origin, dir Vec3, maxDistance float64) (SurfaceHit, bool) {
	return SurfaceHit{}, false
}

func (openSpace) Integrate(pos, vel Vec3, dt, radius float64) (Vec3, bool) {
	next := pos.Add(vel.Scale(dt))
	if next.Y <= 0 {
		next.Y = 0
		return next, true
	}
	return next, false
}

func (openSpace) Headroom(pos Vec3, height float64) bool { return true }

// wallSpace blocks every ray beyond a fixed distance and denies headroom,
// for line-of-sight and crouch tests.
type wallSpace struct {
	openSpace
	blockAt float64
	lowRoof bool
}

func (w wallSpace) Raycast(origin, dir Vec3, maxDistance float64) (SurfaceHit, bool) {
	if w.blockAt > 0 && w.blockAt <= maxDistance {
		return SurfaceHit{
			Point:    origin.Add(dir.Scale(w.blockAt)),
			Normal:   dir.Scale(-1),
			Distance: w.blockAt,
		}, true
	}
	return SurfaceHit{}, false
}

func (w wallSpace) Headroom(pos Vec3, height float64) bool {
	if w.lowRoof {
		return height <= ActorCrouchHeight
	}
	return true
}

func testSpawns() []SpawnPoint {
	return []SpawnPoint{
		{Position: Vec3{X: -10, Z: -10}},
		{Position: Vec3{X: 10, Z: -10}},
		{Position: Vec3{X: 10, Z: 10}},
		{Position: Vec3{X: -10, Z: 10}},
	}
}

// newTestWorld builds a world on open ground with default tuning.
func newTestWorld(t *testing.T, physics Physics) *World {
	t.Helper()
	if physics == nil {
		physics = openSpace{}
	}
	w, err := NewWorld(WorldParams{
		Level:   "test",
		Config:  DefaultConfig(),
		Match:   MatchConfig{Mode: ModeDeathmatch},
		Physics: physics,
		Spawns:  testSpawns(),
	})
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

func addTestActor(t *testing.T, w *World, id string) *Actor {
	t.Helper()
	a, err := w.AddActor(id, id, ControllerPlayer, TeamNone)
	if err != nil {
		t.Fatalf("AddActor(%s) failed: %v", id, err)
	}
	return a
}

// stepSeconds advances the world in fixed 50ms ticks.
func stepSeconds(w *World, seconds float64) {
	const dt = 0.05
	steps := int(seconds/dt + 0.5)
	for i := 0; i < steps; i++ {
		w.Step(dt)
	}
}
