package nav

import "testing"

// grid builds a 3x3 lattice with unit spacing, ids row-major.
func grid(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	for z := 0; z < 3; z++ {
		for x := 0; x < 3; x++ {
			g.AddNode(Point{X: float64(x), Z: float64(z)})
		}
	}
	for z := 0; z < 3; z++ {
		for x := 0; x < 3; x++ {
			id := z*3 + x
			if x < 2 {
				g.Link(id, id+1, 0)
			}
			if z < 2 {
				g.Link(id, id+3, 0)
			}
		}
	}
	return g
}

// TestFindPathStraightLine verifies the shortest route across the grid.
func TestFindPathStraightLine(t *testing.T) {
	g := grid(t)
	path, err := g.FindPath(0, 2)
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}
	want := []int{0, 1, 2}
	if len(path) != len(want) {
		t.Fatalf("Path %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("Path %v, want %v", path, want)
		}
	}
}

// TestFindPathCornerToCorner verifies diagonal routes cost four hops.
func TestFindPathCornerToCorner(t *testing.T) {
	g := grid(t)
	path, err := g.FindPath(0, 8)
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}
	if len(path) != 5 {
		t.Errorf("Expected 5 nodes corner to corner, got %v", path)
	}
	if got := g.PathCost(path); got != 4 {
		t.Errorf("Expected cost 4, got %v", got)
	}
}

// TestFindPathSameNode verifies the trivial path.
func TestFindPathSameNode(t *testing.T) {
	g := grid(t)
	path, err := g.FindPath(4, 4)
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}
	if len(path) != 1 || path[0] != 4 {
		t.Errorf("Expected [4], got %v", path)
	}
}

// TestFindPathDisconnected verifies ErrNoPath for an unreachable island.
func TestFindPathDisconnected(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(Point{})
	b := g.AddNode(Point{X: 1})
	island := g.AddNode(Point{X: 100})
	g.Link(a, b, 0)

	if _, err := g.FindPath(a, island); err != ErrNoPath {
		t.Errorf("Expected ErrNoPath, got %v", err)
	}
}

// TestNearest verifies closest-node lookup.
func TestNearest(t *testing.T) {
	g := grid(t)
	id, ok := g.Nearest(Point{X: 1.9, Z: 0.1})
	if !ok || id != 2 {
		t.Errorf("Expected node 2, got %d (ok=%v)", id, ok)
	}

	empty := NewGraph()
	if _, ok := empty.Nearest(Point{}); ok {
		t.Error("Empty graph should have no nearest node")
	}
}

// TestConnected verifies reachability detection.
func TestConnected(t *testing.T) {
	g := grid(t)
	if !g.Connected() {
		t.Error("Grid should be connected")
	}

	g.AddNode(Point{X: 100})
	if g.Connected() {
		t.Error("Graph with an island should not be connected")
	}

	if NewGraph().Connected() {
		t.Error("Empty graph should not count as connected")
	}
}

// TestLinkDefaultsToEuclidean verifies zero cost links use distance.
func TestLinkDefaultsToEuclidean(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(Point{})
	b := g.AddNode(Point{X: 3, Z: 4})
	g.Link(a, b, 0)

	path, err := g.FindPath(a, b)
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}
	if got := g.PathCost(path); got != 5 {
		t.Errorf("Expected cost 5, got %v", got)
	}
}
