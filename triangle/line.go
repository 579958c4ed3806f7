package triangle

import (
	"slices"

	"github.com/gravitas-015/gridcore/internal/num"
)

// LineStep is the chord length Line uses when the endpoints share no axis.
const LineStep = 8

// Line returns the faces on a shortest walk from c to b, both included.
// Consecutive faces share an edge and c.Line(b) is b.Line(c) reversed.
func (c Coord) Line(b Coord) []Coord {
	if c == b {
		return []Coord{c}
	}
	if axis, ok := SharedAxis(c, b); ok {
		return lineAlongAxis(c, b, axis)
	}
	lo, hi := c, b
	if hi.X < lo.X {
		lo, hi = hi, lo
	}
	out := lo.SmoothLine(hi, LineStep)
	if lo != c {
		slices.Reverse(out)
	}
	return out
}

// SmoothLine splits the walk from c to b into chords of step faces that
// follow the straight line between the two centres, and joins each chord
// with an exact lane walk.
func (c Coord) SmoothLine(b Coord, step int) []Coord {
	dist := c.Distance(b)
	if dist == 0 {
		return []Coord{c}
	}
	if step < 1 {
		step = 1
	}
	out := make([]Coord, 1, dist+1)
	out[0] = c
	start := c
	for i := step; ; i += step {
		end := b
		if i < dist {
			end = c.Lerp(b, float64(i)/float64(dist))
		}
		out = append(out, segment(start, end)[1:]...)
		if end == b {
			return out
		}
		start = end
	}
}

// segment joins two faces without approximating.
func segment(a, b Coord) []Coord {
	if a == b {
		return []Coord{a}
	}
	if axis, ok := SharedAxis(a, b); ok {
		return lineAlongAxis(a, b, axis)
	}
	return subline(a, b)
}

// lineAlongAxis walks the lane of faces that keep axis fixed. Up faces step
// by decrementing a free axis, Down faces by incrementing one.
func lineAlongAxis(a, b Coord, axis Axis) []Coord {
	u, v := freeAxes(axis)
	du := b.Component(u) - a.Component(u)

	var steps [2]Coord
	if du < 0 {
		steps[Up] = unit(u).Neg()
	} else {
		steps[Up] = unit(v).Neg()
	}
	if du > 0 {
		steps[Down] = unit(u)
	} else {
		steps[Down] = unit(v)
	}

	dist := a.Distance(b)
	out := make([]Coord, 1, dist+1)
	out[0] = a
	cur := a
	for i := 0; i < dist; i++ {
		cur = cur.Add(steps[cur.Orientation()])
		out = append(out, cur)
	}
	return out
}

func freeAxes(a Axis) (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	}
	return AxisX, AxisY
}

// subline joins two faces that differ on every axis. One axis moves against
// the other two; of the pair, the first moves along the start's lane and the
// second along the end's lane. The lanes meet at two adjacent faces, and the
// corner they form is cut by stepping onto the bridge faces beside them.
func subline(a, b Coord) []Coord {
	lo, hi := a, b
	if hi.X < lo.X {
		lo, hi = hi, lo
	}
	d := hi.Sub(lo)
	first, second := pairAxes(d)
	near, far := crossings(lo, hi, first, second)

	bridge := signedUnit(second, d.Component(second)).Sub(signedUnit(first, d.Component(first)))

	out := lineAlongAxis(lo, near, second)
	out = append(out[:len(out)-1], near.Add(bridge), far.Add(bridge))
	tail := lineAlongAxis(hi, far, first)
	for i := len(tail) - 2; i >= 0; i-- {
		out = append(out, tail[i])
	}
	if lo != a {
		slices.Reverse(out)
	}
	return out
}

// pairAxes returns the two axes whose deltas share a sign, in x, y, z order.
func pairAxes(d Coord) (Axis, Axis) {
	sx, sy, sz := d.X > 0, d.Y > 0, d.Z > 0
	switch {
	case sy == sz:
		return AxisY, AxisZ
	case sx == sz:
		return AxisX, AxisZ
	}
	return AxisX, AxisY
}

// crossings returns the two faces where the lanes of lo and hi meet, the one
// nearer lo first.
func crossings(lo, hi Coord, first, second Axis) (Coord, Coord) {
	var base Coord
	base = base.Add(unit(first).scale(hi.Component(first)))
	base = base.Add(unit(second).scale(lo.Component(second)))
	lone := AxisX + AxisY + AxisZ - first - second
	f, s := base.Component(first), base.Component(second)
	up := base.Add(unit(lone).scale(Solve(f, s, Up)))
	down := base.Add(unit(lone).scale(Solve(f, s, Down)))
	if lo.Distance(down) < lo.Distance(up) {
		return down, up
	}
	return up, down
}

func signedUnit(a Axis, v int) Coord { return unit(a).scale(num.Sign(v)) }

func (c Coord) scale(k int) Coord { return Coord{c.X * k, c.Y * k, c.Z * k} }
