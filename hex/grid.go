package hex

// Ring returns the axial coordinates at exact distance k from center c,
// starting k tiles BackRight of c and walking Front first.
// If k==0, returns [c].
func Ring(c Axial, k int) []Axial {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	cur := c.Add(BackRight.Vector().Mul(k))
	for side := 0; side < 6; side++ {
		step := DirectionFromInt(-side).Vector()
		for i := 0; i < k; i++ {
			res = append(res, cur)
			cur = cur.Add(step)
		}
	}
	return res
}

// Disk returns all axial coordinates at distance <= r from center c,
// ordered by q offset and then r offset.
func Disk(c Axial, r int) []Axial {
	if r < 0 {
		return nil
	}
	size := 1 + 3*r*(r+1)
	res := make([]Axial, 0, size)
	for q := -r; q <= r; q++ {
		for r2 := max(-r, -q-r); r2 <= min(r, -q+r); r2++ {
			res = append(res, c.Add(Axial{q, r2}))
		}
	}
	return res
}

// Side returns the R coordinates of one side (0..5) of the ring at distance
// R, in ring order.
func Side(c Axial, R int, side int) []Axial {
	if R <= 0 {
		return []Axial{c}
	}
	ring := Ring(c, R)
	start := int(DirectionFromInt(side)) * R
	return ring[start : start+R]
}
