package nav

import "container/heap"

type searchNode struct {
	id    int
	score float64 // g + heuristic
	index int
}

type openSet []*searchNode

func (s openSet) Len() int            { return len(s) }
func (s openSet) Less(i, j int) bool  { return s[i].score < s[j].score }
func (s openSet) Swap(i, j int)       { s[i], s[j] = s[j], s[i]; s[i].index = i; s[j].index = j }
func (s *openSet) Push(x interface{}) { n := x.(*searchNode); n.index = len(*s); *s = append(*s, n) }
func (s *openSet) Pop() interface{} {
	old := *s
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*s = old[:len(old)-1]
	return n
}

// FindPath runs A* from one node to another and returns the node ids along
// the path, inclusive of both endpoints. The euclidean distance heuristic is
// admissible because link costs default to euclidean distance.
func (g *Graph) FindPath(from, to int) ([]int, error) {
	if from < 0 || to < 0 || from >= len(g.nodes) || to >= len(g.nodes) {
		return nil, ErrNoPath
	}
	if from == to {
		return []int{from}, nil
	}

	goal := g.nodes[to]
	gScore := make(map[int]float64, len(g.nodes))
	cameFrom := make(map[int]int, len(g.nodes))
	gScore[from] = 0

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &searchNode{id: from, score: g.nodes[from].distanceTo(goal)})
	inOpen := map[int]bool{from: true}

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		delete(inOpen, current.id)
		if current.id == to {
			return reconstruct(cameFrom, from, to), nil
		}
		for _, e := range g.adj[current.id] {
			tentative := gScore[current.id] + e.cost
			if known, ok := gScore[e.to]; ok && tentative >= known {
				continue
			}
			gScore[e.to] = tentative
			cameFrom[e.to] = current.id
			if !inOpen[e.to] {
				heap.Push(open, &searchNode{id: e.to, score: tentative + g.nodes[e.to].distanceTo(goal)})
				inOpen[e.to] = true
			}
		}
	}
	return nil, ErrNoPath
}

// PathCost sums the link costs along a node path.
func (g *Graph) PathCost(path []int) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += g.nodes[path[i-1]].distanceTo(g.nodes[path[i]])
	}
	return total
}

func reconstruct(cameFrom map[int]int, from, to int) []int {
	path := []int{to}
	for cur := to; cur != from; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
