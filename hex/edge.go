package hex

import (
	"cmp"
	"fmt"
)

// EdgeDirection selects one of the three edges a tile owns.
type EdgeDirection int

const (
	West EdgeDirection = iota
	NorthWest
	NorthEast
)

func (d EdgeDirection) String() string {
	switch d {
	case West:
		return "west"
	case NorthWest:
		return "north_west"
	case NorthEast:
		return "north_east"
	}
	return fmt.Sprintf("edge_direction(%d)", int(d))
}

// Edge is a tile side. Every side has exactly one address: the tile that
// owns it as its west, north-west or north-east side.
type Edge struct {
	Q   int           `json:"q" yaml:"q"`
	R   int           `json:"r" yaml:"r"`
	Dir EdgeDirection `json:"dir" yaml:"dir"`
}

// Hex returns the owning tile.
func (e Edge) Hex() Axial { return Axial{e.Q, e.R} }

// Edge returns the side of a facing direction d.
func (a Axial) Edge(d Direction) Edge {
	switch DirectionFromInt(int(d)) {
	case Front:
		return Edge{a.Q + 1, a.R, West}
	case FrontRight:
		return Edge{a.Q, a.R + 1, NorthWest}
	case BackRight:
		return Edge{a.Q - 1, a.R + 1, NorthEast}
	case Back:
		return Edge{a.Q, a.R, West}
	case BackLeft:
		return Edge{a.Q, a.R, NorthWest}
	}
	return Edge{a.Q, a.R, NorthEast}
}

// Edges returns the six sides of a clockwise from the north-east.
func (a Axial) Edges() [6]Edge {
	q, r := a.Q, a.R
	return [6]Edge{
		{q, r, NorthEast},
		{q + 1, r, West},
		{q, r + 1, NorthWest},
		{q - 1, r + 1, NorthEast},
		{q, r, West},
		{q, r, NorthWest},
	}
}

// AdjacentHexes returns the two tiles on either side, the owner first.
func (e Edge) AdjacentHexes() [2]Axial {
	switch e.Dir {
	case West:
		return [2]Axial{{e.Q, e.R}, {e.Q - 1, e.R}}
	case NorthWest:
		return [2]Axial{{e.Q, e.R}, {e.Q, e.R - 1}}
	}
	return [2]Axial{{e.Q, e.R}, {e.Q + 1, e.R - 1}}
}

// AdjacentEdges returns the four edges sharing an endpoint with e.
func (e Edge) AdjacentEdges() [4]Edge {
	q, r := e.Q, e.R
	switch e.Dir {
	case West:
		return [4]Edge{
			{q - 1, r + 1, NorthEast},
			{q, r, NorthWest},
			{q - 1, r + 1, NorthWest},
			{q - 1, r, NorthEast},
		}
	case NorthWest:
		return [4]Edge{
			{q + 1, r - 1, West},
			{q, r, NorthEast},
			{q, r, West},
			{q - 1, r, NorthEast},
		}
	}
	return [4]Edge{
		{q + 1, r, NorthWest},
		{q + 1, r, West},
		{q, r, NorthWest},
		{q + 1, r - 1, West},
	}
}

// Endpoints returns the two corners of e, the first one leftmost going
// clockwise around the owner.
func (e Edge) Endpoints() [2]Vertex {
	a := e.Hex()
	switch e.Dir {
	case West:
		return [2]Vertex{a.Vertex(VertexDownLeft), a.Vertex(VertexUpLeft)}
	case NorthWest:
		return [2]Vertex{a.Vertex(VertexUpLeft), a.Vertex(VertexUp)}
	}
	return [2]Vertex{a.Vertex(VertexUp), a.Vertex(VertexUpRight)}
}

// Distance approximates the distance between edges by their first
// endpoints.
func (e Edge) Distance(b Edge) int {
	return e.Endpoints()[0].Distance(b.Endpoints()[0])
}

// EdgeBetween returns the edge joining two adjacent vertices.
func EdgeBetween(v, w Vertex) (Edge, bool) {
	es, ok := v.AdjacentEdges()
	if !ok {
		return Edge{}, false
	}
	for _, e := range es {
		ends := e.Endpoints()
		if (ends[0] == v && ends[1] == w) || (ends[0] == w && ends[1] == v) {
			return e, true
		}
	}
	return Edge{}, false
}

// CompareEdge orders edges by q, r and then direction.
func CompareEdge(a, b Edge) int {
	if d := Compare(a.Hex(), b.Hex()); d != 0 {
		return d
	}
	return cmp.Compare(a.Dir, b.Dir)
}

func (e Edge) String() string { return fmt.Sprintf("edge(%d, %d, %s)", e.Q, e.R, e.Dir) }
