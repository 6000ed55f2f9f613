package scenes

import (
	"strconv"

	"sandtilt/internal/core"
	pcore "sandtilt/pkg/core"
)

const defaultScatterDensity = 0.25

// Scatter fills each cell with probability "density" using the "seed" option.
func Scatter(g *core.Grid, opts map[string]string) {
	rng := pcore.NewRNG(seedOption(opts))
	density := defaultScatterDensity
	if v, ok := opts["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			density = parsed
		}
	}
	cells := g.Cells()
	for i := range cells {
		if rng.Chance(density) {
			cells[i] = core.Filled
		}
	}
}

func seedOption(opts map[string]string) int64 {
	if v, ok := opts["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return 1
}

func init() {
	core.RegisterScene("scatter", Scatter)
}
