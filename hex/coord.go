// Package hex implements axial coordinates for a pointy-top hexagonal grid,
// together with addresses for the vertices and edges between tiles.
package hex

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/gravitas-015/gridcore/internal/num"
	"github.com/gravitas-015/gridcore/triangle"
)

// Axial represents axial coordinates (q, r) for pointy-top orientation.
// The third cube component is always s = -q-r.
type Axial struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// Axis names a cube axis to reflect across.
type Axis int

const (
	AxisQ Axis = iota
	AxisR
	AxisS
)

func (a Axis) String() string {
	switch a {
	case AxisQ:
		return "q"
	case AxisR:
		return "r"
	case AxisS:
		return "s"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// S returns the derived cube component.
func (a Axial) S() int { return -a.Q - a.R }

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Sub returns a-b in axial space.
func (a Axial) Sub(b Axial) Axial { return Axial{a.Q - b.Q, a.R - b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Div divides both components by k, truncating toward zero.
// It panics if k is zero.
func (a Axial) Div(k int) Axial {
	if k == 0 {
		panic("hex: division by zero")
	}
	return Axial{a.Q / k, a.R / k}
}

func (a Axial) Neg() Axial { return Axial{-a.Q, -a.R} }

// SwizzleL rotates the cube components left: (q, r, s) -> (r, s, q).
func (a Axial) SwizzleL() Axial { return Axial{a.R, a.S()} }

// SwizzleR rotates the cube components right: (q, r, s) -> (s, q, r).
func (a Axial) SwizzleR() Axial { return Axial{a.S(), a.Q} }

// MakeVector returns a moved magnitude tiles in direction dir.
func (a Axial) MakeVector(magnitude, dir int) Axial {
	return a.Add(DirectionFromInt(dir).Vector().Mul(magnitude))
}

// Distance returns hex distance between two axial coords.
func Distance(a, b Axial) int {
	d := a.Sub(b)
	return (num.Abs(d.Q) + num.Abs(d.Q+d.R) + num.Abs(d.R)) / 2
}

func (a Axial) Distance(b Axial) int { return Distance(a, b) }

// Neighbor returns the adjacent tile in direction d.
func (a Axial) Neighbor(d Direction) Axial { return a.Add(d.Vector()) }

// Neighbors returns the six adjacent tiles clockwise from Front.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for i, d := range Directions {
		out[i] = a.Add(d)
	}
	return out
}

// AreNeighbors reports whether every coordinate is adjacent to a.
func (a Axial) AreNeighbors(coords ...Axial) bool {
	for _, c := range coords {
		if Distance(a, c) != 1 {
			return false
		}
	}
	return true
}

// Round returns the tile containing the fractional axial point (qf, rf).
func Round(qf, rf float64) Axial {
	qg, rg := math.Round(qf), math.Round(rf)
	qrem, rrem := qf-qg, rf-rg
	if math.Abs(qrem) >= math.Abs(rrem) {
		return Axial{int(qg + math.Round(qrem+0.5*rrem)), int(rg)}
	}
	return Axial{int(qg), int(rg + math.Round(rrem+0.5*qrem))}
}

// Lerp interpolates toward b and rounds to the nearest tile.
func (a Axial) Lerp(b Axial, t float64) Axial {
	return Round(
		num.Lerp(float64(a.Q), float64(b.Q), t),
		num.Lerp(float64(a.R), float64(b.R), t),
	)
}

// Line returns the tiles from a to b inclusive.
func (a Axial) Line(b Axial) []Axial {
	lo, hi := a, b
	if Compare(hi, lo) < 0 {
		lo, hi = hi, lo
	}
	dist := Distance(lo, hi)
	if dist == 0 {
		return []Axial{a}
	}
	out := make([]Axial, 0, dist+1)
	step := 1.0 / float64(dist)
	for i := 0; i <= dist; i++ {
		out = append(out, lo.Lerp(hi, step*float64(i)))
	}
	if lo != a {
		slices.Reverse(out)
	}
	return out
}

// Range returns every tile within n of a; see Disk.
func (a Axial) Range(n int) []Axial { return Disk(a, n) }

// Rotate turns a clockwise about center by k sixths of a turn.
func (a Axial) Rotate(center Axial, k int) Axial {
	v := a.Sub(center)
	for i := num.RemEuclid(k, 6); i > 0; i-- {
		v = v.SwizzleL().Neg()
	}
	return v.Add(center)
}

// Reflect mirrors a across the given axis through center.
func (a Axial) Reflect(center Axial, axis Axis) Axial {
	v := a.Sub(center)
	switch axis {
	case AxisQ:
		v = Axial{v.Q, v.S()}
	case AxisR:
		v = Axial{v.S(), v.R}
	default:
		v = Axial{v.R, v.Q}
	}
	return v.Add(center)
}

// Bearing returns the angle from a to b in degrees, in [0, 360). Zero
// points Front and angles grow toward FrontRight.
func (a Axial) Bearing(b Axial) float64 {
	x, y := AxialToPixel(b.Sub(a), 1)
	deg := math.Atan2(y, x) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// AxialToPixel converts axial to pixel coordinates for pointy-top layout,
// y growing downward. size is the hex radius in pixels.
func AxialToPixel(a Axial, size float64) (x, y float64) {
	x = size * math.Sqrt(3) * (float64(a.Q) + float64(a.R)/2.0)
	y = size * 1.5 * float64(a.R)
	return
}

// ApplyTransform rotates a about the origin and then translates it.
func (a Axial) ApplyTransform(t Transform) Axial {
	return a.Rotate(Axial{}, t.Rotation).Add(t.Translation)
}

// Triangle returns the lattice point at the centre of the tile.
func (a Axial) Triangle() triangle.Coord {
	return triangle.Coord{X: a.Q, Y: a.R, Z: a.S()}
}

// Compare orders tiles by q, then r.
func Compare(a, b Axial) int {
	if d := cmp.Compare(a.Q, b.Q); d != 0 {
		return d
	}
	return cmp.Compare(a.R, b.R)
}

func (a Axial) String() string { return fmt.Sprintf("(%d, %d)", a.Q, a.R) }
