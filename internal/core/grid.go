package core

import "fmt"

// Cell is the state of a single grid coordinate.
type Cell uint8

const (
	// Empty is the zero value; unset cells are empty.
	Empty Cell = iota
	// Filled holds one grain of sand.
	Filled
	// Wall is a static obstacle placed by scene loaders. It is neither
	// filled nor empty.
	Wall
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Wall:
		return "wall"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Point is a grid coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Grid stores a square N×N matrix of cells in row-major order.
type Grid struct {
	n    int
	data []Cell
}

// NewGrid allocates an empty n×n grid.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, data: make([]Cell, n*n)}
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.n }

// Total returns the number of cells, N².
func (g *Grid) Total() int { return len(g.data) }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.data }

// InBounds reports whether both coordinates lie in [0, N).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.n, g.n))
	}
	return y*g.n + x
}

// At returns the cell at (x, y). It panics when the coordinate is out of range.
func (g *Grid) At(x, y int) Cell { return g.data[g.index(x, y)] }

// IsFilled reports whether (x, y) holds a grain.
func (g *Grid) IsFilled(x, y int) bool { return g.At(x, y) == Filled }

// IsEmpty reports whether (x, y) is free.
func (g *Grid) IsEmpty(x, y int) bool { return g.At(x, y) == Empty }

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) { g.data[g.index(x, y)] = c }

// Count returns how many cells hold the given state.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.data {
		if v == c {
			n++
		}
	}
	return n
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{n: g.n, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

// CopyFrom overwrites g with the contents of src. Both grids must share a size.
func (g *Grid) CopyFrom(src *Grid) {
	if src.n != g.n {
		panic(fmt.Sprintf("core: copy from %dx%d into %dx%d grid", src.n, src.n, g.n, g.n))
	}
	copy(g.data, src.data)
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || other.n != g.n {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}
