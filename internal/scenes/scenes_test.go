package scenes

import (
	"slices"
	"testing"

	"sandtilt/internal/core"
)

func load(t *testing.T, name string, n int, opts map[string]string) *core.Grid {
	t.Helper()
	loader, ok := core.Scene(name)
	if !ok {
		t.Fatalf("scene %q not registered", name)
	}
	g := core.NewGrid(n)
	loader(g, opts)
	return g
}

func TestRegistry(t *testing.T) {
	names := core.SceneNames()
	for _, want := range []string{"column", "dunes", "empty", "hourglass", "scatter"} {
		if !slices.Contains(names, want) {
			t.Fatalf("scene %q missing from %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("scene names not sorted: %v", names)
	}
}

func TestHourglassLayout(t *testing.T) {
	g := load(t, "hourglass", 32, nil)

	checks := []struct {
		x, y int
		want core.Cell
	}{
		{16, 0, core.Filled},
		{16, 15, core.Filled},
		{11, 10, core.Filled},
		{11, 11, core.Wall},
		{15, 15, core.Wall},
		{0, 0, core.Wall},
		{31, 1, core.Wall},
		{31, 0, core.Empty},
		{20, 11, core.Filled},
		{20, 12, core.Wall},
		{16, 16, core.Empty},
		{5, 20, core.Empty},
	}
	for _, c := range checks {
		if got := g.At(c.x, c.y); got != c.want {
			t.Errorf("(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
	if got := g.Count(core.Filled); got != 135 {
		t.Fatalf("filled = %d, want 135", got)
	}
}

func TestColumnAndEmpty(t *testing.T) {
	if got := load(t, "empty", 8, nil).Count(core.Empty); got != 64 {
		t.Fatalf("empty scene has %d empty cells, want 64", got)
	}
	g := load(t, "column", 8, nil)
	if got := g.Count(core.Filled); got != 4 {
		t.Fatalf("column has %d grains, want 4", got)
	}
	for y := 0; y < 4; y++ {
		if !g.IsFilled(4, y) {
			t.Fatalf("(4,%d) should be filled", y)
		}
	}
}

func TestScatterDeterministic(t *testing.T) {
	opts := map[string]string{"seed": "11"}
	a := load(t, "scatter", 16, opts)
	b := load(t, "scatter", 16, opts)
	if !a.Equal(b) {
		t.Fatal("same seed should give the same scatter")
	}
	c := load(t, "scatter", 16, map[string]string{"seed": "12"})
	if a.Equal(c) {
		t.Fatal("different seeds should differ")
	}

	if got := load(t, "scatter", 8, map[string]string{"density": "0"}).Count(core.Filled); got != 0 {
		t.Fatalf("density 0 filled %d cells", got)
	}
	if got := load(t, "scatter", 8, map[string]string{"density": "1"}).Count(core.Filled); got != 64 {
		t.Fatalf("density 1 filled %d cells, want 64", got)
	}
}

func TestDunesStayInLowerHalf(t *testing.T) {
	const n = 32
	opts := map[string]string{"seed": "3"}
	g := load(t, "dunes", n, opts)

	for y := 0; y < n/2; y++ {
		for x := 0; x < n; x++ {
			if g.IsFilled(x, y) {
				t.Fatalf("(%d,%d) filled above the lower half", x, y)
			}
		}
	}
	for x := 0; x < n; x++ {
		if !g.IsFilled(x, n-1) {
			t.Fatalf("column %d has no floor grain", x)
		}
		// Piles are solid from the floor up.
		top := n - 1
		for top > 0 && g.IsFilled(x, top-1) {
			top--
		}
		for y := top; y < n; y++ {
			if !g.IsFilled(x, y) {
				t.Fatalf("column %d has a gap at row %d", x, y)
			}
		}
	}

	if !g.Equal(load(t, "dunes", n, opts)) {
		t.Fatal("dunes should be deterministic per seed")
	}
}
