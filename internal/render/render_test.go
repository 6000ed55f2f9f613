package render

import (
	"image/color"
	"math"
	"testing"

	"sandtilt/internal/core"
)

func near(a, b Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// closeTo tolerates rounding in the rasterizer's coverage accumulation.
func closeTo(a, b color.RGBA) bool {
	d := func(x, y uint8) bool {
		if x > y {
			return x-y <= 2
		}
		return y-x <= 2
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestCommandsUnrotatedLayout(t *testing.T) {
	g := core.NewGrid(2)
	g.Set(1, 0, core.Filled)
	g.Set(0, 1, core.Wall)
	pal := DefaultPalette()

	dl := Commands(g, 0, Viewport{W: 100, H: 100, CellSize: 10}, pal)
	if len(dl.Cells) != 4 {
		t.Fatalf("expected 4 quads, got %d", len(dl.Cells))
	}
	if !near(dl.Center, Vec{X: 47, Y: 47}) {
		t.Fatalf("center = %+v, want (47,47)", dl.Center)
	}
	if !near(dl.FrameMin, Vec{X: 5, Y: 5}) || !near(dl.FrameMax, Vec{X: 90, Y: 90}) {
		t.Fatalf("frame = %+v..%+v", dl.FrameMin, dl.FrameMax)
	}

	first := dl.Cells[0]
	want := [4]Vec{{37, 37}, {47, 37}, {47, 47}, {37, 47}}
	for i := range want {
		if !near(first.Corners[i], want[i]) {
			t.Fatalf("corner %d = %+v, want %+v", i, first.Corners[i], want[i])
		}
	}

	for _, q := range dl.Cells {
		if q.State != g.At(q.Col, q.Row) {
			t.Fatalf("quad (%d,%d) state %v, grid %v", q.Col, q.Row, q.State, g.At(q.Col, q.Row))
		}
		if q.Fill != pal.Color(q.State) {
			t.Fatalf("quad (%d,%d) fill %v", q.Col, q.Row, q.Fill)
		}
		if q.Outline != pal.Outline {
			t.Fatalf("quad outline %v, want %v", q.Outline, pal.Outline)
		}
	}
}

func TestCommandsRotateAboutCenter(t *testing.T) {
	g := core.NewGrid(2)
	dl := Commands(g, 90, Viewport{W: 100, H: 100, CellSize: 10}, DefaultPalette())

	got := dl.Cells[0].Centroid()
	want := Vec{X: 52, Y: 42}
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
		t.Fatalf("rotated centroid = %+v, want %+v", got, want)
	}
}

func TestRasterizeFillsCells(t *testing.T) {
	g := core.NewGrid(4)
	g.Set(1, 1, core.Filled)
	g.Set(3, 3, core.Wall)
	pal := DefaultPalette()
	view := Viewport{W: 100, H: 100, CellSize: 10}

	dl := Commands(g, 0, view, pal)
	img := Rasterize(dl, view.W, view.H, pal)

	sample := func(q Quad) color.RGBA {
		c := q.Centroid()
		return img.RGBAAt(int(c.X), int(c.Y))
	}
	for _, q := range dl.Cells {
		if got := sample(q); !closeTo(got, q.Fill) {
			t.Fatalf("quad (%d,%d) pixel %v, want %v", q.Col, q.Row, got, q.Fill)
		}
	}
	if got := img.RGBAAt(0, 0); got != pal.Background {
		t.Fatalf("corner pixel %v, want background", got)
	}
}

func TestRasterizeRotatedBoardFits(t *testing.T) {
	g := core.NewGrid(8)
	g.Set(2, 5, core.Filled)
	pal := DefaultPalette()
	view := FitViewport(8, 6)

	dl := Commands(g, 45, view, pal)
	img := Rasterize(dl, view.W, view.H, pal)

	for _, q := range dl.Cells {
		if !quadBounds(q).In(img.Bounds()) {
			t.Fatalf("quad (%d,%d) outside fitted viewport", q.Col, q.Row)
		}
		if q.Col == 2 && q.Row == 5 {
			c := q.Centroid()
			if got := img.RGBAAt(int(c.X), int(c.Y)); !closeTo(got, pal.Filled) {
				t.Fatalf("rotated grain pixel %v, want %v", got, pal.Filled)
			}
		}
	}
}

func TestGridImageScales(t *testing.T) {
	g := core.NewGrid(3)
	g.Set(1, 1, core.Filled)
	pal := DefaultPalette()

	img := GridImage(g, pal, 2)
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 6 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for _, p := range [][2]int{{2, 2}, {3, 3}, {2, 3}} {
		if got := img.RGBAAt(p[0], p[1]); got != pal.Filled {
			t.Fatalf("pixel %v = %v, want filled", p, got)
		}
	}
	if got := img.RGBAAt(0, 5); got != pal.Empty {
		t.Fatalf("pixel (0,5) = %v, want empty", got)
	}
}

func TestTransformCellCenterMatchesQuad(t *testing.T) {
	g := core.NewGrid(5)
	view := FitViewport(5, 10)
	for _, angle := range []int{0, 30, -135, 270} {
		tr := NewTransform(5, angle, view)
		dl := Commands(g, angle, view, DefaultPalette())
		for _, q := range dl.Cells {
			c := tr.CellCenter(q.Col, q.Row)
			if want := q.Centroid(); math.Abs(c.X-want.X) > 1e-6 || math.Abs(c.Y-want.Y) > 1e-6 {
				t.Fatalf("angle %d cell (%d,%d): centre %+v, centroid %+v", angle, q.Col, q.Row, c, want)
			}
		}
	}
}

func TestTransformGravityPointsDownOnScreen(t *testing.T) {
	view := FitViewport(8, 4)
	for _, angle := range []int{0, 45, 90, -120, 300} {
		rad := float64(angle) * math.Pi / 180
		d := NewTransform(8, angle, view).Rotate(math.Sin(rad), math.Cos(rad))
		if math.Abs(d.X) > 1e-9 || math.Abs(d.Y-1) > 1e-9 {
			t.Fatalf("angle %d: gravity maps to %+v, want straight down", angle, d)
		}
	}
}
