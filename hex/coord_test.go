package hex

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDistance(t *testing.T) {
	if d := Distance(Axial{0, 0}, Axial{2, 0}); d != 2 {
		t.Fatalf("expected distance 2, got %d", d)
	}
	if d := (Axial{-2, 3}).Distance(Axial{1, -1}); d != 4 {
		t.Fatalf("expected distance 4, got %d", d)
	}
	for _, n := range (Axial{5, -3}).Neighbors() {
		if d := n.Distance(Axial{5, -3}); d != 1 {
			t.Fatalf("neighbor %v at distance %d", n, d)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Axial{4, 3}
	diff(t, Axial{3, -7}, a.SwizzleL())
	diff(t, Axial{-7, 4}, a.SwizzleR())
	diff(t, Axial{6, 3}, Axial{41, 23}.Div(6))
	diff(t, Axial{-4, -3}, a.Neg())
	diff(t, Axial{5, 1}, a.Add(Axial{1, -2}))
	diff(t, Axial{3, 5}, a.Sub(Axial{1, -2}))
	diff(t, Axial{12, 9}, a.Mul(3))
	if a.S() != -7 {
		t.Fatalf("expected s=-7, got %d", a.S())
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on division by zero")
		}
	}()
	Axial{1, 1}.Div(0)
}

func TestMakeVector(t *testing.T) {
	start := Axial{6, 4}
	want := []Axial{{10, 4}, {6, 8}, {2, 8}, {2, 4}, {6, 0}, {10, 0}}
	for rot, w := range want {
		diff(t, w, start.MakeVector(4, rot))
		diff(t, w, start.MakeVector(4, rot-12))
	}
}

func TestAreNeighbors(t *testing.T) {
	a := Axial{0, 0}
	if !a.AreNeighbors(Axial{1, 0}, Axial{0, 1}, Axial{1, -1}) {
		t.Fatalf("expected neighbors")
	}
	if a.AreNeighbors(Axial{1, 0}, Axial{2, 0}) {
		t.Fatalf("(2, 0) is not a neighbor")
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		q, r float64
		want Axial
	}{
		{2.5, 1.5, Axial{2, 2}},
		{2.5, -1.5, Axial{3, -2}},
		{-2.5, -1.5, Axial{-2, -2}},
		{-2.5, 1.5, Axial{-3, 2}},
		{0.1, -0.2, Axial{0, 0}},
	}
	for _, c := range cases {
		diff(t, c.want, Round(c.q, c.r))
	}
}

func TestLerp(t *testing.T) {
	a, b := Axial{-1, -1}, Axial{9, 19}
	ts := []float64{-0.25, 0, 0.25, 0.5, 0.75, 1, 1.25}
	want := []Axial{{-3, -6}, {-1, -1}, {1, 4}, {4, 9}, {6, 14}, {9, 19}, {11, 24}}
	for i, tt := range ts {
		diff(t, want[i], a.Lerp(b, tt))
	}
}

func TestLine(t *testing.T) {
	diff(t, []Axial{{-1, -1}, {0, -1}, {0, 0}, {0, 1}, {1, 1}}, Axial{-1, -1}.Line(Axial{1, 1}))
	diff(t, []Axial{{0, 0}, {0, 1}, {1, 1}}, Axial{0, 0}.Line(Axial{1, 1}))
	diff(t, []Axial{{3, 3}}, Axial{3, 3}.Line(Axial{3, 3}))

	for _, a := range Disk(Axial{}, 3) {
		for _, b := range Disk(Axial{1, -1}, 3) {
			line := a.Line(b)
			if len(line) != a.Distance(b)+1 {
				t.Fatalf("line %v -> %v has %d tiles, want %d", a, b, len(line), a.Distance(b)+1)
			}
			if line[0] != a || line[len(line)-1] != b {
				t.Fatalf("line %v -> %v has wrong ends: %v", a, b, line)
			}
			back := b.Line(a)
			slices.Reverse(back)
			diff(t, line, back)
		}
	}
}

func TestRange(t *testing.T) {
	got := Axial{0, 0}.Range(1)
	if len(got) != 7 {
		t.Fatalf("expected 7 tiles, got %d", len(got))
	}
	diff(t, []Axial{{-1, 0}, {-1, 1}, {0, -1}, {0, 0}, {0, 1}, {1, -1}, {1, 0}}, got)

	for n := 0; n < 6; n++ {
		c := Axial{2, -5}
		tiles := c.Range(n)
		if len(tiles) != 3*n*n+3*n+1 {
			t.Fatalf("range %d: expected %d tiles, got %d", n, 3*n*n+3*n+1, len(tiles))
		}
		seen := map[Axial]bool{}
		for _, a := range tiles {
			if seen[a] || a.Distance(c) > n {
				t.Fatalf("range %d: unexpected tile %v", n, a)
			}
			seen[a] = true
		}
	}
	if got := (Axial{}).Range(-1); len(got) != 0 {
		t.Fatalf("negative range should be empty, got %v", got)
	}
}

func TestRotate(t *testing.T) {
	a := Axial{-1, 1}
	cases := map[int]Axial{
		0: {-1, 1}, 1: {-1, 0}, 2: {0, -1}, 3: {1, -1}, 6: {-1, 1}, 7: {-1, 0}, -1: {0, 1}, -2: {1, 0},
	}
	for k, want := range cases {
		diff(t, want, a.Rotate(Axial{}, k))
	}

	center := Axial{1, 1}
	diff(t, Axial{2, -1}, Axial{0, 0}.Rotate(center, 1))
	diff(t, Axial{3, 0}, Axial{0, 0}.Rotate(center, 2))
	diff(t, Axial{2, 2}, Axial{0, 0}.Rotate(center, 3))

	for _, p := range Disk(Axial{}, 3) {
		for k := -7; k <= 7; k++ {
			if got := p.Rotate(center, k).Rotate(center, -k); got != p {
				t.Fatalf("rotate %d and back moved %v to %v", k, p, got)
			}
		}
		if got := p.Rotate(center, 6); got != p {
			t.Fatalf("full turn moved %v to %v", p, got)
		}
	}
}

func TestReflect(t *testing.T) {
	a := Axial{-1, 1}
	diff(t, Axial{-1, 0}, a.Reflect(Axial{}, AxisQ))
	diff(t, Axial{0, 1}, a.Reflect(Axial{}, AxisR))
	diff(t, Axial{1, -1}, a.Reflect(Axial{}, AxisS))

	center, b := Axial{1, 2}, Axial{1, 3}
	diff(t, Axial{1, 1}, b.Reflect(center, AxisQ))
	diff(t, Axial{0, 3}, b.Reflect(center, AxisR))
	diff(t, Axial{2, 2}, b.Reflect(center, AxisS))

	for _, p := range Disk(center, 2) {
		for _, axis := range []Axis{AxisQ, AxisR, AxisS} {
			if got := p.Reflect(center, axis).Reflect(center, axis); got != p {
				t.Fatalf("double reflection moved %v to %v", p, got)
			}
		}
	}
}

func TestBearing(t *testing.T) {
	cases := []struct {
		to   Axial
		want float64
	}{
		{Axial{2, 0}, 0},
		{Axial{0, 2}, 60},
		{Axial{-1, 2}, 90},
		{Axial{-1, 1}, 120},
		{Axial{-1, 0}, 180},
		{Axial{2, -2}, 300},
		{Axial{2, -1}, 330},
		{Axial{0, 0}, 0},
	}
	for _, c := range cases {
		diff(t, c.want, Axial{}.Bearing(c.to), cmpopts.EquateApprox(0, 1e-9))
	}
	diff(t, 60.0, Axial{3, -4}.Bearing(Axial{3, -2}), cmpopts.EquateApprox(0, 1e-9))
}

func TestTransform(t *testing.T) {
	tr := Transform{Translation: Axial{1, 1}, Rotation: 1}
	diff(t, Axial{1, 1}, Axial{0, 0}.ApplyTransform(tr))
	diff(t, Axial{0, 3}, Axial{1, 1}.ApplyTransform(tr))

	other := Transform{Translation: Axial{-2, 3}, Rotation: 4}
	for _, p := range Disk(Axial{}, 2) {
		if got := p.ApplyTransform(tr).ApplyTransform(tr.Inverse()); got != p {
			t.Fatalf("inverse did not undo transform: %v -> %v", p, got)
		}
		diff(t, p.ApplyTransform(tr).ApplyTransform(other), p.ApplyTransform(tr.Add(other)))
	}
}

func TestCompare(t *testing.T) {
	tiles := []Axial{{1, 0}, {0, 2}, {0, -1}, {-3, 5}}
	slices.SortFunc(tiles, Compare)
	diff(t, []Axial{{-3, 5}, {0, -1}, {0, 2}, {1, 0}}, tiles)
}

func TestDirection(t *testing.T) {
	if DirectionFromInt(-1) != FrontLeft || DirectionFromInt(13) != FrontRight {
		t.Fatalf("direction normalisation failed")
	}
	if Front.Opposite() != Back || BackLeft.Opposite() != FrontRight {
		t.Fatalf("unexpected opposite direction")
	}
	for d := Front; d <= FrontLeft; d++ {
		if d.Vector().Add(d.Opposite().Vector()) != (Axial{}) {
			t.Fatalf("%v and its opposite do not cancel", d)
		}
		if got := d.Vector().Rotate(Axial{}, 1); got != d.Rotate(1).Vector() {
			t.Fatalf("rotating %v gave %v", d, got)
		}
	}
	if Front.String() != "front" || Direction(9).String() != "direction(9)" {
		t.Fatalf("unexpected direction names")
	}
}
