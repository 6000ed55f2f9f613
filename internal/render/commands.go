package render

import (
	"image/color"
	"math"

	"sandtilt/internal/core"
)

const (
	frameInset   = 5
	frameTrim    = 10
	centerRadius = 2
)

// Vec is a point in screen space.
type Vec struct {
	X, Y float64
}

// Viewport is the drawable area and the on-screen size of one cell.
type Viewport struct {
	W, H     int
	CellSize int
}

// Quad is one rotated cell. Corners are in winding order: top-left,
// top-right, bottom-right, bottom-left of the unrotated cell.
type Quad struct {
	Col, Row int
	Corners  [4]Vec
	State    core.Cell
	Fill     color.RGBA
	Outline  color.RGBA
}

// DrawList is everything needed to paint one frame.
type DrawList struct {
	FrameMin, FrameMax Vec
	FrameColor         color.RGBA
	Center             Vec
	CenterRadius       float64
	Cells              []Quad
}

// Transform maps board-local cell coordinates to screen space for one
// viewport and angle.
type Transform struct {
	Center   Vec
	origin   Vec
	cs       float64
	sin, cos float64
}

// NewTransform centres an n×n board in view and rotates it about the
// viewport centre by angle degrees.
func NewTransform(n, angle int, view Viewport) Transform {
	if view.CellSize <= 0 {
		view.CellSize = 1
	}
	center := Vec{
		X: float64((frameInset + view.W - frameTrim) / 2),
		Y: float64((frameInset + view.H - frameTrim) / 2),
	}
	span := float64(n * view.CellSize)
	rad := float64(angle) * (math.Pi / 180)
	return Transform{
		Center: center,
		origin: Vec{X: center.X - span/2, Y: center.Y - span/2},
		cs:     float64(view.CellSize),
		sin:    math.Sin(rad),
		cos:    math.Cos(rad),
	}
}

// Point maps a position measured in cells from the board's top-left corner.
func (t Transform) Point(x, y float64) Vec {
	dx := t.origin.X + x*t.cs - t.Center.X
	dy := t.origin.Y + y*t.cs - t.Center.Y
	return Vec{
		X: dx*t.cos - dy*t.sin + t.Center.X,
		Y: dx*t.sin + dy*t.cos + t.Center.Y,
	}
}

// CellCenter returns the screen position of the middle of cell (col, row).
func (t Transform) CellCenter(col, row int) Vec {
	return t.Point(float64(col)+0.5, float64(row)+0.5)
}

// Rotate turns a board-local direction into a screen direction.
func (t Transform) Rotate(dx, dy float64) Vec {
	return Vec{X: dx*t.cos - dy*t.sin, Y: dx*t.sin + dy*t.cos}
}

// Commands lays out the grid centred in the viewport and rotated about the
// viewport centre by angle degrees. It does not retain g.
func Commands(g *core.Grid, angle int, view Viewport, pal Palette) DrawList {
	n := g.Size()
	t := NewTransform(n, angle, view)
	quads := make([]Quad, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x, y := float64(col), float64(row)
			state := g.At(col, row)
			quads = append(quads, Quad{
				Col: col,
				Row: row,
				Corners: [4]Vec{
					t.Point(x, y),
					t.Point(x+1, y),
					t.Point(x+1, y+1),
					t.Point(x, y+1),
				},
				State:   state,
				Fill:    pal.Color(state),
				Outline: pal.Outline,
			})
		}
	}

	return DrawList{
		FrameMin:     Vec{X: frameInset, Y: frameInset},
		FrameMax:     Vec{X: float64(view.W - frameTrim), Y: float64(view.H - frameTrim)},
		FrameColor:   pal.Frame,
		Center:       t.Center,
		CenterRadius: centerRadius,
		Cells:        quads,
	}
}

// Centroid returns the average of the quad's corners.
func (q Quad) Centroid() Vec {
	var c Vec
	for _, p := range q.Corners {
		c.X += p.X
		c.Y += p.Y
	}
	return Vec{X: c.X / 4, Y: c.Y / 4}
}

// FitViewport returns a square viewport large enough to hold an n×n board of
// cellSize pixels at any rotation.
func FitViewport(n, cellSize int) Viewport {
	if cellSize <= 0 {
		cellSize = 1
	}
	diag := int(math.Ceil(float64(n*cellSize) * math.Sqrt2))
	side := diag + frameInset + frameTrim + 1
	return Viewport{W: side, H: side, CellSize: cellSize}
}
