package sand

import (
	"math"

	"sandtilt/internal/core"
)

// spawnRadius is the distance from the grid centre at which AddSand drops a
// grain, measured against gravity.
const spawnRadius = 3

// SpawnPoint returns where AddSand would place a grain for the current angle.
func (s *Sim) SpawnPoint() core.Point {
	rad := Radians(s.angle)
	c := s.grid.Size() / 2
	return core.Point{
		X: c + int(math.Round(math.Sin(rad)*spawnRadius)),
		Y: c - int(math.Round(math.Cos(rad)*spawnRadius)),
	}
}

// AddSand drops a grain a few cells "above" the centre relative to gravity.
// It reports whether the grid changed; an occupied or out-of-range spawn
// point is a no-op.
func (s *Sim) AddSand() bool {
	p := s.SpawnPoint()
	if !s.grid.InBounds(p.X, p.Y) || !s.grid.IsEmpty(p.X, p.Y) {
		return false
	}
	s.grid.Set(p.X, p.Y, core.Filled)
	s.Recount()
	return true
}

// RemoveSand clears the first grain found scanning rows top to bottom and
// columns left to right. It reports whether a grain was removed.
func (s *Sim) RemoveSand() bool {
	n := s.grid.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if s.grid.IsFilled(x, y) {
				s.grid.Set(x, y, core.Empty)
				s.Recount()
				return true
			}
		}
	}
	return false
}
