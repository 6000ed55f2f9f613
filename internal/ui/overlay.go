//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"sandtilt/internal/render"
	"sandtilt/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the board: the gravity
// vector and the cell AddSand would drop into.
type Overlay struct {
	sim  *sand.Sim
	view render.Viewport
	show bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim *sand.Sim, view render.Viewport) *Overlay {
	return &Overlay{sim: sim, view: view}
}

// Update toggles the overlay with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	n := o.sim.Grid().Size()
	angle := o.sim.Angle()
	t := render.NewTransform(n, angle, o.view)

	const (
		headAngle = math.Pi / 6
		thickness = 2
	)
	arrow := color.RGBA{R: 40, G: 120, B: 220, A: 200}
	rad := sand.Radians(angle)
	dir := t.Rotate(math.Sin(rad), math.Cos(rad))
	length := float64(n*o.view.CellSize) * 0.3
	headLength := length * 0.25
	tail := t.Center
	tip := render.Vec{X: tail.X + dir.X*length, Y: tail.Y + dir.Y*length}
	o.line(screen, tail, tip, thickness, arrow)

	heading := math.Atan2(dir.Y, dir.X)
	for _, side := range []float64{headAngle, -headAngle} {
		end := render.Vec{
			X: tip.X - math.Cos(heading+side)*headLength,
			Y: tip.Y - math.Sin(heading+side)*headLength,
		}
		o.line(screen, tip, end, thickness, arrow)
	}

	p := o.sim.SpawnPoint()
	if !o.sim.Grid().InBounds(p.X, p.Y) {
		return
	}
	c := t.CellCenter(p.X, p.Y)
	radius := float32(o.view.CellSize) * 0.75
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), radius, 1.5, color.RGBA{R: 220, G: 40, B: 120, A: 220}, true)
}

func (o *Overlay) line(screen *ebiten.Image, a, b render.Vec, width float32, col color.RGBA) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, col, true)
}
