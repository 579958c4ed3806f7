package hex

import "github.com/gravitas-015/gridcore/internal/num"

// Transform is a rotation about the origin followed by a translation.
type Transform struct {
	Translation Axial `json:"translation" yaml:"translation"`
	Rotation    int   `json:"rotation" yaml:"rotation"`
}

// Add composes t and o: applying the result equals applying t, then o.
func (t Transform) Add(o Transform) Transform {
	return Transform{
		Translation: t.Translation.Rotate(Axial{}, o.Rotation).Add(o.Translation),
		Rotation:    num.RemEuclid(t.Rotation+o.Rotation, 6),
	}
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	return Transform{
		Translation: t.Translation.Neg().Rotate(Axial{}, -t.Rotation),
		Rotation:    num.RemEuclid(-t.Rotation, 6),
	}
}
