package render

import (
	"image"

	"sandtilt/internal/core"
)

// fillCellsRGBA converts cell states into RGBA pixels in buf, one pixel per cell.
func fillCellsRGBA(buf []byte, cells []core.Cell, pal Palette) {
	for i, c := range cells {
		base := i * 4
		col := pal.Color(c)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// GridImage renders the grid unrotated with each cell scaled to a
// scale×scale block.
func GridImage(g *core.Grid, pal Palette, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	n := g.Size()
	small := image.NewRGBA(image.Rect(0, 0, n, n))
	fillCellsRGBA(small.Pix, g.Cells(), pal)
	if scale == 1 {
		return small
	}

	out := image.NewRGBA(image.Rect(0, 0, n*scale, n*scale))
	for y := 0; y < n*scale; y++ {
		src := small.Pix[(y/scale)*small.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < n*scale; x++ {
			copy(dst[x*4:x*4+4], src[(x/scale)*4:(x/scale)*4+4])
		}
	}
	return out
}
