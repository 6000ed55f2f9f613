package sand

import (
	"fmt"
	"math"
)

// Angle bounds accepted from the UI shell, in degrees.
const (
	MinAngle = -360
	MaxAngle = 360
)

// Direction is the gravity vector for one tick. Each component is -1, 0 or 1.
type Direction struct {
	DX, DY int
}

// Radians converts whole degrees to radians.
func Radians(deg int) float64 {
	return float64(deg) * (math.Pi / 180)
}

// DirectionFromAngle derives the gravity vector as
// (sign(sin(angle)), sign(cos(angle))). Floating-point residue is not
// rounded away, so 180° yields DX = 1.
func DirectionFromAngle(deg int) Direction {
	rad := Radians(deg)
	return Direction{DX: sign(math.Sin(rad)), DY: sign(math.Cos(rad))}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (d Direction) validate() {
	if d.DX < -1 || d.DX > 1 || d.DY < -1 || d.DY > 1 || (d.DX == 0 && d.DY == 0) {
		panic(fmt.Sprintf("sand: malformed direction (%d,%d)", d.DX, d.DY))
	}
}

// ClampAngle bounds deg to [MinAngle, MaxAngle].
func ClampAngle(deg int) int {
	if deg < MinAngle {
		return MinAngle
	}
	if deg > MaxAngle {
		return MaxAngle
	}
	return deg
}
