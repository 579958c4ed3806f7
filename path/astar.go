// Package path finds shortest walks over grid tiles, tile corners and
// triangle faces.
package path

import (
	"container/heap"

	"github.com/gravitas-015/gridcore/hex"
	"github.com/gravitas-015/gridcore/triangle"
)

// AStar computes a shortest path using the A* algorithm.
// - start, goal: nodes of any comparable type
// - h: admissible heuristic (e.g., hex.Distance to goal)
// - neighbors: returns adjacent nodes to explore
// - cost: edge cost between two adjacent nodes (values < 1 count as 1)
// Returns the path including start and goal, or nil if no path exists.
func AStar[N comparable](start, goal N,
	h func(n N) int,
	neighbors func(n N) []N,
	cost func(a, b N) int,
) []N {
	if start == goal {
		return []N{start}
	}
	open := &nodePQ[N]{}
	heap.Init(open)
	seq := 0
	push := func(n N, g, f int) {
		heap.Push(open, &pqNode[N]{n: n, g: g, f: f, seq: seq})
		seq++
	}

	g := map[N]int{start: 0}
	came := map[N]N{}
	closed := map[N]bool{}
	push(start, 0, h(start))

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode[N]).n
		if closed[cur] {
			continue
		}
		closed[cur] = true
		if cur == goal {
			path := []N{goal}
			for n := goal; n != start; {
				n = came[n]
				path = append(path, n)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		for _, nb := range neighbors(cur) {
			if closed[nb] {
				continue
			}
			step := 1
			if cost != nil {
				step = max(cost(cur, nb), 1)
			}
			tentative := g[cur] + step
			if old, ok := g[nb]; !ok || tentative < old {
				g[nb] = tentative
				came[nb] = cur
				push(nb, tentative, tentative+h(nb))
			}
		}
	}
	return nil
}

type pqNode[N any] struct {
	n   N
	g   int
	f   int
	seq int
}

// nodePQ orders by f, prefers deeper nodes on ties and then insertion order
// so results are deterministic.
type nodePQ[N any] []*pqNode[N]

func (p nodePQ[N]) Len() int { return len(p) }
func (p nodePQ[N]) Less(i, j int) bool {
	if p[i].f != p[j].f {
		return p[i].f < p[j].f
	}
	if p[i].g != p[j].g {
		return p[i].g > p[j].g
	}
	return p[i].seq < p[j].seq
}
func (p nodePQ[N]) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p *nodePQ[N]) Push(x any)   { *p = append(*p, x.(*pqNode[N])) }
func (p *nodePQ[N]) Pop() any {
	old := *p
	n := len(old)
	x := old[n-1]
	*p = old[:n-1]
	return x
}

// HeuristicTo is the hex distance heuristic.
func HeuristicTo(goal hex.Axial) func(a hex.Axial) int {
	return func(a hex.Axial) int { return hex.Distance(a, goal) }
}

// NeighborsWithinDisc limits tile neighbors to the disc of radius R around
// center.
func NeighborsWithinDisc(center hex.Axial, R int) func(a hex.Axial) []hex.Axial {
	return func(a hex.Axial) []hex.Axial {
		out := make([]hex.Axial, 0, 6)
		for _, b := range a.Neighbors() {
			if hex.Distance(center, b) <= R {
				out = append(out, b)
			}
		}
		return out
	}
}

// NeighborsFromUnion returns the six axial neighbors that exist in the
// union and are passable.
func NeighborsFromUnion(union map[hex.Axial]bool, passable func(a hex.Axial) bool) func(a hex.Axial) []hex.Axial {
	return func(a hex.Axial) []hex.Axial {
		out := make([]hex.Axial, 0, 6)
		for _, b := range a.Neighbors() {
			if union[b] && passable(b) {
				out = append(out, b)
			}
		}
		return out
	}
}

// VertexHeuristicTo counts the edges between a corner and goal.
func VertexHeuristicTo(goal hex.Vertex) func(v hex.Vertex) int {
	return func(v hex.Vertex) int { return v.Distance(goal) }
}

// VertexNeighbors walks along tile edges. Corners that touch no tile of the
// disc around center are skipped.
func VertexNeighbors(center hex.Axial, R int) func(v hex.Vertex) []hex.Vertex {
	return func(v hex.Vertex) []hex.Vertex {
		vs, ok := v.AdjacentVertices()
		if !ok {
			return nil
		}
		out := make([]hex.Vertex, 0, 3)
		for _, w := range vs {
			hexes, _ := w.AdjacentHexes()
			for _, h := range hexes {
				if hex.Distance(center, h) <= R {
					out = append(out, w)
					break
				}
			}
		}
		return out
	}
}

// EdgesAlong returns the edges walked by a corner path. It reports false if
// two consecutive corners are not joined by an edge.
func EdgesAlong(vertices []hex.Vertex) ([]hex.Edge, bool) {
	if len(vertices) < 2 {
		return nil, true
	}
	out := make([]hex.Edge, 0, len(vertices)-1)
	for i := 1; i < len(vertices); i++ {
		e, ok := hex.EdgeBetween(vertices[i-1], vertices[i])
		if !ok {
			return nil, false
		}
		out = append(out, e)
	}
	return out, true
}

// FaceHeuristicTo counts the edge crossings between a face and goal.
func FaceHeuristicTo(goal triangle.Coord) func(c triangle.Coord) int {
	return func(c triangle.Coord) int { return c.Distance(goal) }
}

// FaceNeighborsWithin limits face neighbors to n steps of center.
func FaceNeighborsWithin(center triangle.Coord, n int) func(c triangle.Coord) []triangle.Coord {
	return func(c triangle.Coord) []triangle.Coord {
		out := make([]triangle.Coord, 0, 3)
		for _, nb := range c.Neighbors() {
			if nb.Distance(center) <= n {
				out = append(out, nb)
			}
		}
		return out
	}
}
