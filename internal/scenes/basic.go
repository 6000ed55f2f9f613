package scenes

import "sandtilt/internal/core"

// Empty leaves the grid untouched.
func Empty(*core.Grid, map[string]string) {}

// Column drops a one-cell-wide column of sand down the top half of the
// centre column.
func Column(g *core.Grid, _ map[string]string) {
	n := g.Size()
	for y := 0; y < n/2; y++ {
		g.Set(n/2, y, core.Filled)
	}
}

func init() {
	core.RegisterScene("empty", Empty)
	core.RegisterScene("column", Column)
}
