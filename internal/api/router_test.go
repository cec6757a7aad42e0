package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mrDIMAS/rusty-shooter/internal/game"
)

type stubPhysics struct{}

func (stubPhysics) Raycast(origin, dir game.Vec3, maxDistance float64) (game.SurfaceHit, bool) {
	return game.SurfaceHit{}, false
}

func (stubPhysics) Integrate(pos, vel game.Vec3, dt, radius float64) (game.Vec3, bool) {
	return pos.Add(vel.Scale(dt)), true
}

func (stubPhysics) Headroom(pos game.Vec3, height float64) bool { return true }

func newTestServer(t *testing.T) (*Server, *game.Runner) {
	t.Helper()
	world, err := game.NewWorld(game.WorldParams{
		Level:   "test",
		Config:  game.DefaultConfig(),
		Match:   game.MatchConfig{Mode: game.ModeDeathmatch},
		Physics: stubPhysics{},
		Spawns:  []game.SpawnPoint{{Position: game.Vec3{}}},
	})
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	if _, err := world.AddActor("p1", "Player One", game.ControllerPlayer, game.TeamNone); err != nil {
		t.Fatalf("AddActor failed: %v", err)
	}
	runner := game.NewRunner(world, 30)
	return NewServer(runner, NewHub()), runner
}

// TestHealthEndpoint verifies the liveness route.
func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	ts := httptest.NewServer(server.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

// TestStateEndpoint verifies the snapshot JSON shape.
func TestStateEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	ts := httptest.NewServer(server.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/state")
	if err != nil {
		t.Fatalf("GET /state failed: %v", err)
	}
	defer resp.Body.Close()

	var snap game.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if snap.Level != "test" {
		t.Errorf("Expected level test, got %q", snap.Level)
	}
	if len(snap.Actors) != 1 || snap.Actors[0].ID != "p1" {
		t.Errorf("Expected actor p1 in snapshot, got %+v", snap.Actors)
	}
}

// TestScoreboardEndpoint verifies ordering and shape.
func TestScoreboardEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	ts := httptest.NewServer(server.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/scoreboard")
	if err != nil {
		t.Fatalf("GET /scoreboard failed: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Phase   game.MatchPhase   `json:"phase"`
		Entries []scoreboardEntry `json:"entries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if body.Phase != game.PhaseInProgress {
		t.Errorf("Expected in-progress phase, got %q", body.Phase)
	}
	if len(body.Entries) != 1 || body.Entries[0].ActorID != "p1" {
		t.Errorf("Expected single entry for p1, got %+v", body.Entries)
	}
}
