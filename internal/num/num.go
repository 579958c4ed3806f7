// Package num holds the small generic arithmetic helpers shared by the grid
// packages.
package num

import "golang.org/x/exp/constraints"

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed | constraints.Float](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// RemEuclid returns v modulo m in [0, m) for positive m.
func RemEuclid[T constraints.Signed](v, m T) T {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// Lerp interpolates between a and b; t outside [0, 1] extrapolates.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
