package render

import (
	"image/color"

	"sandtilt/internal/core"
)

// Palette maps cell states and decorations to colours.
type Palette struct {
	Background color.RGBA
	Empty      color.RGBA
	Filled     color.RGBA
	Wall       color.RGBA
	Outline    color.RGBA
	Frame      color.RGBA
}

// DefaultPalette is orange sand on white cells with red walls.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 238, G: 238, B: 238, A: 255},
		Empty:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Filled:     color.RGBA{R: 255, G: 200, B: 0, A: 255},
		Wall:       color.RGBA{R: 255, G: 0, B: 0, A: 255},
		Outline:    color.RGBA{R: 0, G: 0, B: 0, A: 50},
		Frame:      color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}
}

// Color returns the fill for a cell state. Unknown states render as empty.
func (p Palette) Color(c core.Cell) color.RGBA {
	switch c {
	case core.Filled:
		return p.Filled
	case core.Wall:
		return p.Wall
	default:
		return p.Empty
	}
}
