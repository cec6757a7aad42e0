// Package nav implements the level navigation graph used by bot pathing:
// hand-placed waypoint nodes, undirected weighted links and A* search.
package nav

import (
	"math"

	"github.com/pkg/errors"
)

// ErrNoPath is returned when no sequence of links joins two nodes.
var ErrNoPath = errors.New("nav: no path between nodes")

// Point is a node position in world space. The package carries its own
// vector type so it stays free of simulation imports.
type Point struct {
	X, Y, Z float64
}

func (p Point) distanceTo(o Point) float64 {
	dx, dy, dz := o.X-p.X, o.Y-p.Y, o.Z-p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

type edge struct {
	to   int
	cost float64
}

// Graph is a waypoint graph. Nodes are identified by insertion index; links
// are undirected. Graphs are built once at level load and read-only after,
// so queries need no locking.
type Graph struct {
	nodes []Point
	adj   [][]edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a node and returns its id.
func (g *Graph) AddNode(p Point) int {
	g.nodes = append(g.nodes, p)
	g.adj = append(g.adj, nil)
	return len(g.nodes) - 1
}

// Link connects two nodes in both directions. A non-positive cost means
// "use the euclidean distance".
func (g *Graph) Link(a, b int, cost float64) {
	if a < 0 || b < 0 || a >= len(g.nodes) || b >= len(g.nodes) || a == b {
		return
	}
	if cost <= 0 {
		cost = g.nodes[a].distanceTo(g.nodes[b])
	}
	g.adj[a] = append(g.adj[a], edge{to: b, cost: cost})
	g.adj[b] = append(g.adj[b], edge{to: a, cost: cost})
}

// Len returns the node count.
func (g *Graph) Len() int { return len(g.nodes) }

// Position returns the node position.
func (g *Graph) Position(id int) Point { return g.nodes[id] }

// Nearest returns the id of the node closest to p.
func (g *Graph) Nearest(p Point) (int, bool) {
	if len(g.nodes) == 0 {
		return 0, false
	}
	best, bestDist := 0, math.Inf(1)
	for i, n := range g.nodes {
		if d := n.distanceTo(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}

// Connected reports whether every node is reachable from node 0. Levels with
// bots must ship a connected graph, so this runs during validation.
func (g *Graph) Connected() bool {
	if len(g.nodes) == 0 {
		return false
	}
	seen := make([]bool, len(g.nodes))
	queue := []int{0}
	seen[0] = true
	count := 1
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[n] {
			if !seen[e.to] {
				seen[e.to] = true
				count++
				queue = append(queue, e.to)
			}
		}
	}
	return count == len(g.nodes)
}
