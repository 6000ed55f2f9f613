package sand

import "sandtilt/internal/core"

// Counts are the aggregate counters derived after each tick.
type Counts struct {
	Total  int
	Filled int
	Empty  int
	Moved  int
}

// Move records one migration performed during a tick.
type Move struct {
	From, To core.Point
}

// Sim owns the grid and all per-tick scratch state. It is not safe for
// concurrent use; ticks, edits and render reads must be serialized by the
// caller.
type Sim struct {
	cfg   Config
	grid  *core.Grid
	occ   *Occupancy
	angle int

	counts Counts
	moves  []Move
	ticks  int
}

// New returns a simulation of the given size using defaults for the rest.
func New(size int) *Sim {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.Scene = ""
	return NewWithConfig(cfg)
}

// NewWithConfig builds a simulation and loads its configured scene.
func NewWithConfig(cfg Config) *Sim {
	grid := core.NewGrid(cfg.Size)
	cfg.Size = grid.Size()
	s := &Sim{
		cfg:   cfg,
		grid:  grid,
		occ:   NewOccupancy(grid.Size()),
		angle: ClampAngle(cfg.Angle),
	}
	s.Reset()
	return s
}

// Name identifies the simulation.
func (s *Sim) Name() string { return "sand" }

// Scene returns the configured scene name.
func (s *Sim) Scene() string { return s.cfg.Scene }

// Grid exposes the owned grid. Callers may seed it between ticks.
func (s *Sim) Grid() *core.Grid { return s.grid }

// Angle returns the current gravity angle in degrees.
func (s *Sim) Angle() int { return s.angle }

// SetAngle updates the gravity angle, clamped to [MinAngle, MaxAngle].
func (s *Sim) SetAngle(deg int) { s.angle = ClampAngle(deg) }

// Counts returns the counters from the last tick, edit or reset.
func (s *Sim) Counts() Counts { return s.counts }

// Moves returns the migrations of the last tick. The slice is reused.
func (s *Sim) Moves() []Move { return s.moves }

// Ticks returns how many ticks ran since the last reset.
func (s *Sim) Ticks() int { return s.ticks }

// Reset clears the grid and reloads the configured scene.
func (s *Sim) Reset() {
	s.grid.Clear()
	if loader, ok := core.Scene(s.cfg.Scene); ok {
		loader(s.grid, s.cfg.sceneOptions())
	}
	s.ticks = 0
	s.moves = s.moves[:0]
	s.Recount()
}

// Recount derives the counters from the grid. Use it after seeding the grid
// directly.
func (s *Sim) Recount() {
	filled := s.grid.Count(core.Filled)
	s.counts = Counts{
		Total:  s.grid.Total(),
		Filled: filled,
		Empty:  s.grid.Total() - filled,
	}
}

// Step advances the grid by one tick. Cells are visited from the last row to
// the first and, within a row, from the last column to the first.
func (s *Sim) Step() {
	dir := DirectionFromAngle(s.angle)
	dir.validate()
	s.occ.Reset()
	s.moves = s.moves[:0]

	n := s.grid.Size()
	filled := 0
	for y := n - 1; y >= 0; y-- {
		for x := n - 1; x >= 0; x-- {
			if !s.grid.IsFilled(x, y) {
				continue
			}
			if s.occ.Marked(x, y) {
				continue
			}
			filled++
			if dst, ok := Destination(s.grid, s.occ, x, y, dir); ok {
				s.migrate(core.Point{X: x, Y: y}, dst)
			}
		}
	}

	total := s.grid.Total()
	s.counts = Counts{
		Total:  total,
		Filled: filled,
		Empty:  total - filled,
		Moved:  len(s.moves),
	}
	s.ticks++
}

func (s *Sim) migrate(from, to core.Point) {
	s.occ.Mark(to.X, to.Y)
	s.grid.Set(from.X, from.Y, core.Empty)
	s.grid.Set(to.X, to.Y, core.Filled)
	s.moves = append(s.moves, Move{From: from, To: to})
}
