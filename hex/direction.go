package hex

import (
	"fmt"

	"github.com/gravitas-015/gridcore/internal/num"
)

// Direction is one of the six tile neighbours, numbered clockwise.
type Direction int

const (
	Front Direction = iota
	FrontRight
	BackRight
	Back
	BackLeft
	FrontLeft
)

// Directions for axial neighbors in pointy-top orientation, indexed by
// Direction.
var Directions = [6]Axial{
	{+1, 0}, {0, +1}, {-1, +1}, {-1, 0}, {0, -1}, {+1, -1},
}

var directionNames = [6]string{"front", "front_right", "back_right", "back", "back_left", "front_left"}

// DirectionFromInt wraps any integer onto the six directions.
func DirectionFromInt(i int) Direction { return Direction(num.RemEuclid(i, 6)) }

// Vector returns the unit offset for d.
func (d Direction) Vector() Axial { return Directions[num.RemEuclid(int(d), 6)] }

// Rotate turns d clockwise by k sixths.
func (d Direction) Rotate(k int) Direction { return DirectionFromInt(int(d) + k) }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return d.Rotate(3) }

func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", int(d))
}
