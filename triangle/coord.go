// Package triangle implements coordinates on a triangular lattice.
//
// A Coord (x, y, z) names either a lattice point (sum 0) or a triangular face
// (sum 1 or 2). Faces with an even sum point up, odd ones point down.
package triangle

import (
	"cmp"
	"fmt"
	"math"

	"github.com/gravitas-015/gridcore/internal/num"
)

// Coord is a triangle-lattice coordinate.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Orientation of a face.
type Orientation int

const (
	Up Orientation = iota
	Down
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// Direction names the three edges of a face.
type Direction int

const (
	Left Direction = iota
	Right
	Base
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Base:
		return "base"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Axis selects one component of a Coord.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

var (
	sqrt3     = math.Sqrt(3)
	sqrt3div3 = sqrt3 / 3
	sqrt3div6 = sqrt3 / 6
)

// Sum returns x+y+z.
func (c Coord) Sum() int { return c.X + c.Y + c.Z }

// IsFace reports whether c names a triangle (sum 1 or 2).
func (c Coord) IsFace() bool {
	s := c.Sum()
	return s == 1 || s == 2
}

// IsPoint reports whether c names a lattice point.
func (c Coord) IsPoint() bool { return c.Sum() == 0 }

// Orientation is Up for even sums and Down for odd ones.
func (c Coord) Orientation() Orientation {
	if num.RemEuclid(c.Sum(), 2) == 0 {
		return Up
	}
	return Down
}

func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y, c.Z - o.Z} }
func (c Coord) Neg() Coord        { return Coord{-c.X, -c.Y, -c.Z} }

// Component returns the value on axis a.
func (c Coord) Component(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	}
	return c.Z
}

func unit(a Axis) Coord {
	switch a {
	case AxisX:
		return Coord{1, 0, 0}
	case AxisY:
		return Coord{0, 1, 0}
	}
	return Coord{0, 0, 1}
}

// Solve returns the third component that makes a face of orientation o.
func Solve(a, b int, o Orientation) int {
	if o == Up {
		return 2 - a - b
	}
	return 1 - a - b
}

// WithVertexZ recomputes z so that c is a lattice point.
func (c Coord) WithVertexZ() Coord { return Coord{c.X, c.Y, -c.X - c.Y} }

// WithFaceZ recomputes z so that c is a face of orientation o.
func (c Coord) WithFaceZ(o Orientation) Coord { return Coord{c.X, c.Y, Solve(c.X, c.Y, o)} }

// Neighbor returns the face across edge d.
func (c Coord) Neighbor(d Direction) Coord {
	if c.Orientation() == Up {
		switch d {
		case Left:
			return Coord{c.X - 1, c.Y, c.Z}
		case Base:
			return Coord{c.X, c.Y - 1, c.Z}
		default:
			return Coord{c.X, c.Y, c.Z - 1}
		}
	}
	switch d {
	case Left:
		return Coord{c.X, c.Y, c.Z + 1}
	case Base:
		return Coord{c.X, c.Y + 1, c.Z}
	default:
		return Coord{c.X + 1, c.Y, c.Z}
	}
}

// Neighbors returns the faces across the left, right and base edges.
func (c Coord) Neighbors() [3]Coord {
	return [3]Coord{c.Neighbor(Left), c.Neighbor(Right), c.Neighbor(Base)}
}

// AreNeighbors reports whether every coordinate shares an edge with c.
func (c Coord) AreNeighbors(coords ...Coord) bool {
	ns := c.Neighbors()
	for _, o := range coords {
		if o != ns[0] && o != ns[1] && o != ns[2] {
			return false
		}
	}
	return true
}

// Rotate turns c about the origin by k sixths of a turn.
func (c Coord) Rotate(k int) Coord {
	x, y, z := c.X, c.Y, c.Z
	switch num.RemEuclid(k, 6) {
	case 1:
		return Coord{1 - z, 1 - x, 1 - y}
	case 2:
		return Coord{y, z, x}
	case 3:
		return Coord{1 - x, 1 - y, 1 - z}
	case 4:
		return Coord{z, x, y}
	case 5:
		return Coord{1 - y, 1 - z, 1 - x}
	}
	return c
}

// RotateAbout turns c about center by k sixths of a turn.
func (c Coord) RotateAbout(center Coord, k int) Coord {
	return center.Add(c.Sub(center).Rotate(k))
}

// ReflectX mirrors c across the vertical axis.
func (c Coord) ReflectX() Coord { return Coord{c.Z, c.Y, c.X} }

// ReflectY mirrors c across the horizontal axis.
func (c Coord) ReflectY() Coord { return Coord{1 - c.Z, 1 - c.Y, 1 - c.X} }

// Cartesian returns the centre of c with unit edge length.
func (c Coord) Cartesian() (x, y float64) {
	fx, fy, fz := float64(c.X), float64(c.Y), float64(c.Z)
	x = 0.5*fx - 0.5*fz
	y = -sqrt3div6*fx + sqrt3div3*fy - sqrt3div6*fz
	return
}

// NearestFace returns the face containing the cartesian point (px, py).
func NearestFace(px, py float64) Coord {
	return Coord{
		X: int(math.Ceil(px - sqrt3div3*py)),
		Y: int(math.Floor(2*sqrt3div3*py)) + 1,
		Z: int(math.Ceil(-px - sqrt3div3*py)),
	}
}

// Lerp interpolates between the centres of c and b and returns the face there.
func (c Coord) Lerp(b Coord, t float64) Coord {
	ax, ay := c.Cartesian()
	bx, by := b.Cartesian()
	return NearestFace(num.Lerp(ax, bx, t), num.Lerp(ay, by, t))
}

// Distance returns the number of edge crossings between two faces.
func Distance(a, b Coord) int {
	return num.Abs(a.X-b.X) + num.Abs(a.Y-b.Y) + num.Abs(a.Z-b.Z)
}

func (c Coord) Distance(b Coord) int { return Distance(c, b) }

// SharedAxis returns the first axis on which a and b agree.
func SharedAxis(a, b Coord) (Axis, bool) {
	switch {
	case a.X == b.X:
		return AxisX, true
	case a.Y == b.Y:
		return AxisY, true
	case a.Z == b.Z:
		return AxisZ, true
	}
	return 0, false
}

// Range returns the faces within n steps of c.
func (c Coord) Range(n int) []Coord {
	var out []Coord
	sum := c.Sum()
	for dx := -n; dx <= n; dx++ {
		for dy := max(-n-dx, -n); dy <= min(n-dx, n); dy++ {
			dz := 1 - (sum + dx + dy)
			for _, z := range [2]int{dz, dz + 1} {
				if num.Abs(dx)+num.Abs(dy)+num.Abs(z) <= n {
					out = append(out, Coord{c.X + dx, c.Y + dy, c.Z + z})
				}
			}
		}
	}
	return out
}

// Compare orders coordinates by x, then y, then z.
func Compare(a, b Coord) int {
	if d := cmp.Compare(a.X, b.X); d != 0 {
		return d
	}
	if d := cmp.Compare(a.Y, b.Y); d != 0 {
		return d
	}
	return cmp.Compare(a.Z, b.Z)
}

func (c Coord) String() string { return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z) }
