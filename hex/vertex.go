package hex

import (
	"fmt"

	"github.com/gravitas-015/gridcore/internal/num"
	"github.com/gravitas-015/gridcore/triangle"
)

// Spin tells which side of a vertex holds two tiles. An Up vertex has one
// tile below it and two above.
type Spin int

const (
	SpinUp Spin = iota
	SpinDown
)

func (s Spin) String() string {
	switch s {
	case SpinUp:
		return "up"
	case SpinDown:
		return "down"
	}
	return fmt.Sprintf("spin(%d)", int(s))
}

// VertexDirection is one of the six corners of a tile, numbered clockwise
// from the top.
type VertexDirection int

const (
	VertexUp VertexDirection = iota
	VertexUpRight
	VertexDownRight
	VertexDown
	VertexDownLeft
	VertexUpLeft
)

var vertexOffsets = [6]triangle.Coord{
	{X: 1, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 1},
	{X: 0, Y: 0, Z: 1},
}

var vertexDirectionNames = [6]string{"up", "up_right", "down_right", "down", "down_left", "up_left"}

// VertexDirectionFromInt wraps any integer onto the six corners.
func VertexDirectionFromInt(i int) VertexDirection { return VertexDirection(num.RemEuclid(i, 6)) }

// Offset returns the triangle face of the corner relative to the tile centre.
func (d VertexDirection) Offset() triangle.Coord { return vertexOffsets[num.RemEuclid(int(d), 6)] }

// Spin of the vertex in this corner.
func (d VertexDirection) Spin() Spin {
	if num.RemEuclid(int(d), 2) == 0 {
		return SpinUp
	}
	return SpinDown
}

func (d VertexDirection) Rotate(k int) VertexDirection { return VertexDirectionFromInt(int(d) + k) }

func (d VertexDirection) Opposite() VertexDirection { return d.Rotate(3) }

func (d VertexDirection) String() string {
	if d >= 0 && int(d) < len(vertexDirectionNames) {
		return vertexDirectionNames[d]
	}
	return fmt.Sprintf("vertex_direction(%d)", int(d))
}

// Vertex is a corner shared by up to three tiles. Tile centres are lattice
// points of a triangular grid and their corners are the faces around them.
type Vertex struct {
	Coord triangle.Coord `json:"coord" yaml:"coord"`
}

// NewVertex returns corner d of tile a.
func NewVertex(a Axial, d VertexDirection) Vertex {
	return Vertex{a.Triangle().Add(d.Offset())}
}

// Vertex returns corner d of a.
func (a Axial) Vertex(d VertexDirection) Vertex { return NewVertex(a, d) }

// Vertices returns the six corners of a clockwise from the top.
func (a Axial) Vertices() [6]Vertex {
	var out [6]Vertex
	for i := range out {
		out[i] = NewVertex(a, VertexDirection(i))
	}
	return out
}

// sharedCorners lists the two corners a tile shares with its neighbour in
// each direction.
var sharedCorners = [6][2]VertexDirection{
	{VertexUpRight, VertexDownRight},
	{VertexDownRight, VertexDown},
	{VertexDown, VertexDownLeft},
	{VertexDownLeft, VertexUpLeft},
	{VertexUpLeft, VertexUp},
	{VertexUp, VertexUpRight},
}

// SharedVertices returns the two corners a and b have in common, or false if
// they are not neighbours.
func (a Axial) SharedVertices(b Axial) ([2]Vertex, bool) {
	d := b.Sub(a)
	for i, v := range Directions {
		if v == d {
			c := sharedCorners[i]
			return [2]Vertex{a.Vertex(c[0]), a.Vertex(c[1])}, true
		}
	}
	return [2]Vertex{}, false
}

// SharedVertex returns the corner where a, b and c meet.
func (a Axial) SharedVertex(b, c Axial) (Vertex, bool) {
	ab, ok := a.SharedVertices(b)
	if !ok {
		return Vertex{}, false
	}
	ac, ok := a.SharedVertices(c)
	if !ok {
		return Vertex{}, false
	}
	for _, v := range ab {
		if v == ac[0] || v == ac[1] {
			return v, true
		}
	}
	return Vertex{}, false
}

// Valid reports whether v names a real corner.
func (v Vertex) Valid() bool { return v.Coord.IsFace() }

// ToAxial returns the tile that owns v as its Up or Down corner, and the
// spin of v.
func (v Vertex) ToAxial() (Axial, Spin, bool) {
	if !v.Valid() {
		return Axial{}, 0, false
	}
	if v.Coord.Orientation() == triangle.Up {
		o := v.Coord.Sub(vertexOffsets[VertexUp])
		return Axial{o.X, o.Y}, SpinUp, true
	}
	o := v.Coord.Sub(vertexOffsets[VertexDown])
	return Axial{o.X, o.Y}, SpinDown, true
}

// AdjacentHexes returns the three tiles meeting at v, the owner first.
func (v Vertex) AdjacentHexes() ([3]Axial, bool) {
	o, spin, ok := v.ToAxial()
	if !ok {
		return [3]Axial{}, false
	}
	if spin == SpinUp {
		return [3]Axial{o, {o.Q, o.R - 1}, {o.Q + 1, o.R - 1}}, true
	}
	return [3]Axial{o, {o.Q, o.R + 1}, {o.Q - 1, o.R + 1}}, true
}

// AdjacentVertices returns the three corners one edge away.
func (v Vertex) AdjacentVertices() ([3]Vertex, bool) {
	if !v.Valid() {
		return [3]Vertex{}, false
	}
	ns := v.Coord.Neighbors()
	return [3]Vertex{{ns[0]}, {ns[1]}, {ns[2]}}, true
}

// AdjacentEdges returns the three edges ending at v.
func (v Vertex) AdjacentEdges() ([3]Edge, bool) {
	o, spin, ok := v.ToAxial()
	if !ok {
		return [3]Edge{}, false
	}
	q, r := o.Q, o.R
	if spin == SpinUp {
		return [3]Edge{
			{q + 1, r - 1, West},
			{q, r, NorthEast},
			{q, r, NorthWest},
		}, true
	}
	return [3]Edge{
		{q, r + 1, NorthWest},
		{q, r + 1, West},
		{q - 1, r + 1, NorthEast},
	}, true
}

// Distance counts the edges walked between two vertices.
func (v Vertex) Distance(b Vertex) int { return v.Coord.Distance(b.Coord) }

// Rotate turns v clockwise about the centre of tile center by k sixths.
func (v Vertex) Rotate(center Axial, k int) Vertex {
	return Vertex{v.Coord.RotateAbout(center.Triangle(), -k)}
}

// CompareVertex orders vertices by their triangle coordinate.
func CompareVertex(a, b Vertex) int { return triangle.Compare(a.Coord, b.Coord) }

func (v Vertex) String() string { return "vertex" + v.Coord.String() }
