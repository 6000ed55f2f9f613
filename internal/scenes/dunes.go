package scenes

import (
	perlin "github.com/aquilax/go-perlin"

	"sandtilt/internal/core"
)

const (
	dunesAlpha   = 2.0
	dunesBeta    = 2.0
	dunesOctaves = 3
)

// Dunes piles sand along the floor with a Perlin-noise skyline. Heights stay
// within the lower half of the grid and every column holds at least one grain.
func Dunes(g *core.Grid, opts map[string]string) {
	n := g.Size()
	p := perlin.NewPerlin(dunesAlpha, dunesBeta, dunesOctaves, seedOption(opts))

	base := float64(n) / 4
	maxHeight := n / 2
	if maxHeight < 1 {
		maxHeight = 1
	}
	for x := 0; x < n; x++ {
		noise := p.Noise1D(float64(x) / float64(n) * 2)
		h := int(base + noise*base*2)
		if h < 1 {
			h = 1
		}
		if h > maxHeight {
			h = maxHeight
		}
		for y := n - h; y < n; y++ {
			g.Set(x, y, core.Filled)
		}
	}
}

func init() {
	core.RegisterScene("dunes", Dunes)
}
