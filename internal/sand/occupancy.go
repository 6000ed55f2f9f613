package sand

import "fmt"

// Occupancy marks the cells that already received a grain during the current
// tick. It is cleared at the start of every tick.
type Occupancy struct {
	n    int
	mark []bool
}

// NewOccupancy allocates an n×n occupancy matrix.
func NewOccupancy(n int) *Occupancy {
	return &Occupancy{n: n, mark: make([]bool, n*n)}
}

// Reset clears every mark.
func (o *Occupancy) Reset() {
	for i := range o.mark {
		o.mark[i] = false
	}
}

// Marked reports whether (x, y) received a grain this tick.
func (o *Occupancy) Marked(x, y int) bool {
	return o.mark[y*o.n+x]
}

// Mark records that (x, y) received a grain. A second mark of the same cell
// within one tick is an invariant violation.
func (o *Occupancy) Mark(x, y int) {
	idx := y*o.n + x
	if o.mark[idx] {
		panic(fmt.Sprintf("sand: cell (%d,%d) written twice in one tick", x, y))
	}
	o.mark[idx] = true
}
