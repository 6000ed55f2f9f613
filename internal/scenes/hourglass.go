package scenes

import "sandtilt/internal/core"

// Hourglass fills a ten-column block across the top half and closes it with
// two wall wedges that funnel toward the centre.
func Hourglass(g *core.Grid, _ map[string]string) {
	n := g.Size()
	cx, cy := n/2, n/2

	for x := cx - 5; x < cx+5; x++ {
		for y := 0; y < cy; y++ {
			if g.InBounds(x, y) {
				g.Set(x, y, core.Filled)
			}
		}
	}

	for x := 0; x < cx; x++ {
		for y := x - cx + n/2; y < cy; y++ {
			if g.InBounds(x, y) {
				g.Set(x, y, core.Wall)
			}
		}
	}
	for x := cx + n/2; x > cx; x-- {
		for y := cx + n/2 - x; y < cy; y++ {
			if g.InBounds(x, y) {
				g.Set(x, y, core.Wall)
			}
		}
	}
}

func init() {
	core.RegisterScene("hourglass", Hourglass)
}
