package sand

import "sandtilt/internal/core"

// Destination picks where the grain at (x, y) moves this tick. Candidates are
// tried in order: the full move (x+dx, y+dy), the horizontal-only move
// (x+dx, y), then the vertical-only move (x, y+dy). The first one that is in
// bounds, unmarked and empty wins.
//
// With a zero component the matching fallback is the source cell itself,
// which is filled and therefore never taken.
func Destination(g *core.Grid, occ *Occupancy, x, y int, dir Direction) (core.Point, bool) {
	candidates := [3]core.Point{
		{X: x + dir.DX, Y: y + dir.DY},
		{X: x + dir.DX, Y: y},
		{X: x, Y: y + dir.DY},
	}
	for _, c := range candidates {
		if !g.InBounds(c.X, c.Y) {
			continue
		}
		if occ.Marked(c.X, c.Y) {
			continue
		}
		if g.IsEmpty(c.X, c.Y) {
			return c, true
		}
	}
	return core.Point{}, false
}
